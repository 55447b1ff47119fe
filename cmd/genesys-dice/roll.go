package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/genesys-dice/internal/config"
	"github.com/KirkDiggler/genesys-dice/internal/dice"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/orchestrators/roll"
)

func newRollCmd(c *cli) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "roll [expression...]",
		Short: "Roll one or more dice sets",
		Long: `Roll dice sets written in narrative notation. Separate sets with commas;
each set is reported on its own. Examples:

  roll 2g1y2p1b
  roll 2p2g1y, 2p2g1y, 2p2g1y
  roll "2 ability + 1 red" --seed 42`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.InvalidArgument("roll expression is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &roll.RollInput{
				Expression: strings.Join(args, " "),
				Seed:       c.cfg.Seed,
			}
			if cmd.Flags().Changed("seed") {
				input.Seed = &seed
			}

			output, err := c.service.Roll(cmd.Context(), input)
			if err != nil {
				return err
			}

			if c.cfg.Output == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), output)
			}
			return writeRollText(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible roll (default from GENESYS_DICE_SEED)")

	return cmd
}

// writeRollText prints one block per set:
//
//	Set 1: 3 success, 1 advantage
//	  2 ability      success, double_success
func writeRollText(w io.Writer, output *roll.RollOutput) error {
	p := &printer{w: w}

	p.printf("Roll %s: %s", output.RollID, output.Expression)
	if output.Seed != nil {
		p.printf(" (seed %d)", *output.Seed)
	}
	p.printf("\n")

	for i, result := range output.Results {
		p.printf("Set %d: %s\n", i+1, result.Summary())
		for _, group := range result.Groups {
			p.printf("  %-16s %s\n", dice.DieGroup{Count: len(group.Faces), Variant: group.Variant}, joinFaces(group.Faces))
		}
	}

	return p.err
}

func joinFaces(faces []dice.Face) string {
	if len(faces) == 0 {
		return "-"
	}
	names := make([]string, len(faces))
	for i, f := range faces {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

// printer keeps the first write error so callers check once
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = errors.Wrap(err, "failed to write output")
	}
}
