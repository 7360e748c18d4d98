package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/njchilds90/goexpr"
	"github.com/njchilds90/goexpr/internal/exprfile"
	"github.com/njchilds90/goexpr/internal/logging"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "goexpr",
		Short:         "Symbolic differentiation of arithmetic expressions",
		Long:          `goexpr differentiates expression graphs given as YAML or JSON documents, renders them as text or LaTeX, and serves the same tools over HTTP and MCP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newDiffCmd(), newRenderCmd(), newServeCmd(), newMCPCmd(), newVersionCmd())
	return root
}

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	s, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(s)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// addInputFlags registers the flags every expression-consuming command shares.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Expression document (YAML or JSON)")
	cmd.Flags().StringP("expr", "e", "", "Expression as a JSON object")
	cmd.Flags().String("format", "text", "Output format: text, latex, json, yaml")
}

// readInput builds a document from --file or --expr. Explicit --var and
// --order override the document's values.
func readInput(cmd *cobra.Command) (*exprfile.Document, error) {
	file, _ := cmd.Flags().GetString("file")
	raw, _ := cmd.Flags().GetString("expr")

	var doc *exprfile.Document
	switch {
	case file != "" && raw != "":
		return nil, fmt.Errorf("use either --file or --expr, not both")
	case file != "":
		d, err := exprfile.Load(file)
		if err != nil {
			return nil, err
		}
		doc = d
	case raw != "":
		e, err := goexpr.ParseJSON([]byte(raw))
		if err != nil {
			return nil, err
		}
		doc = &exprfile.Document{Order: 1, Expr: e}
	default:
		return nil, fmt.Errorf("an expression is required: pass --file or --expr")
	}

	if f := cmd.Flags().Lookup("var"); f != nil && f.Changed {
		doc.Variable = f.Value.String()
	}
	if f := cmd.Flags().Lookup("order"); f != nil && f.Changed {
		n, _ := cmd.Flags().GetInt("order")
		doc.Order = n
	}
	return doc, nil
}

func writeExpr(w io.Writer, format string, e goexpr.Expr) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, e.String())
		return err
	case "latex":
		_, err := fmt.Fprintln(w, goexpr.LaTeX(e))
		return err
	case "json":
		s, err := goexpr.ToJSON(e)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	case "yaml":
		b, err := exprfile.Marshal(e)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unknown format %q (want text, latex, json or yaml)", format)
}
