package main

import (
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Differentiate an expression",
		Example: `  goexpr diff -f cube.yaml
  goexpr diff --var x -e '{"type":"pow","left":{"type":"sym","name":"x"},"right":{"type":"num","value":"3"}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			doc, err := readInput(cmd)
			if err != nil {
				return err
			}
			d, err := doc.Derive()
			if err != nil {
				logger.Debug("differentiation failed", "var", doc.Variable, "order", doc.Order, "error", err)
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return writeExpr(cmd.OutOrStdout(), format, d)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().String("var", "", "Differentiation variable (overrides the document)")
	cmd.Flags().Int("order", 1, "Derivative order (overrides the document)")
	return cmd
}
