package main

import (
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an expression without differentiating it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readInput(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return writeExpr(cmd.OutOrStdout(), format, doc.Expr)
		},
	}
	addInputFlags(cmd)
	return cmd
}
