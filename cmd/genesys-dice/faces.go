package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/genesys-dice/internal/config"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/orchestrators/roll"
)

func newFacesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "faces [variant]",
		Short: "Show die face tables",
		Long: `Show the faces of every die variant, or of one variant given by name or
colour. Examples:

  faces
  faces proficiency
  faces purple`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.InvalidArgumentf("faces accepts at most one variant, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &roll.FacesInput{}
			if len(args) == 1 {
				input.Variant = args[0]
			}

			output, err := c.service.Faces(cmd.Context(), input)
			if err != nil {
				return err
			}

			if c.cfg.Output == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), output)
			}
			return writeFacesText(cmd.OutOrStdout(), output)
		},
	}
}

func writeFacesText(w io.Writer, output *roll.FacesOutput) error {
	p := &printer{w: w}

	for i, table := range output.Tables {
		if i > 0 {
			p.printf("\n")
		}
		p.printf("%s (%s, d%d)\n", table.Variant, table.Colour, len(table.Faces))
		for idx, face := range table.Faces {
			p.printf("  %2d  %s\n", idx+1, face)
		}
	}

	return p.err
}
