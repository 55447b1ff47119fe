package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/genesys-dice/internal/config"
	"github.com/KirkDiggler/genesys-dice/internal/dice"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/orchestrators/roll"
	"github.com/KirkDiggler/genesys-dice/internal/pkg/clock"
	"github.com/KirkDiggler/genesys-dice/internal/pkg/idgen"
)

// serviceFactory builds the roll service once configuration is loaded
type serviceFactory func(cfg *config.Config) (roll.Service, error)

// cli carries state shared by every command
type cli struct {
	root       *cobra.Command
	newService serviceFactory
	envFile    string
	output     string

	cfg     *config.Config
	service roll.Service
}

// newService wires the production roll service
func newService(_ *config.Config) (roll.Service, error) {
	return roll.NewOrchestrator(&roll.Config{
		Source:      dice.NewCryptoSource(nil),
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clock.New(),
	})
}

func newCLI(factory serviceFactory) *cli {
	c := &cli{newService: factory}

	rootCmd := &cobra.Command{
		Use:   "genesys-dice",
		Short: "Roll Genesys narrative dice",
		Long: `genesys-dice rolls the narrative dice of the Genesys system and reports
the net result of each set. Examples:

  genesys-dice roll 2g1y2p
  genesys-dice roll "2 ability + 1 proficiency, 3 force" --seed 1977
  genesys-dice faces purple`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	rootCmd.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Env file to load before reading the environment")
	rootCmd.PersistentFlags().StringVarP(&c.output, "output", "o", "", "Output format: text or json (default from GENESYS_DICE_OUTPUT)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flag")
	})

	rootCmd.AddCommand(newRollCmd(c))
	rootCmd.AddCommand(newFacesCmd(c))

	c.root = rootCmd
	return c
}

// writeError reports err on w. JSON output gets a google.rpc.Status document.
func (c *cli) writeError(w io.Writer, err error) {
	if c.jsonOutput() {
		if data, jsonErr := errors.StatusJSON(err); jsonErr == nil {
			_, _ = fmt.Fprintln(w, string(data))
			return
		}
	}
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
}

// jsonOutput falls back to the flag when configuration never loaded
func (c *cli) jsonOutput() bool {
	if c.cfg != nil {
		return c.cfg.Output == config.FormatJSON
	}
	return c.output == config.FormatJSON
}

// setup loads configuration, installs the logger and builds the service
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return err
	}

	if c.output != "" {
		cfg.Output = c.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	slog.SetDefault(cfg.Logger(cmd.ErrOrStderr()))

	service, err := c.newService(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create roll service")
	}

	c.cfg = cfg
	c.service = service

	slog.DebugContext(cmd.Context(), "Configuration loaded",
		"log_level", cfg.LogLevel,
		"output", cfg.Output,
		"seeded", cfg.Seed != nil,
	)

	return nil
}
