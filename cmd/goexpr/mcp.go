package main

import (
	"github.com/spf13/cobra"

	"github.com/njchilds90/goexpr/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server on stdio",
		Long: `Starts goexpr as an MCP server over Standard Input/Output so AI agents
can call the differentiate, render, free_symbols and size tools.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			// Logs go to stderr; stdout carries JSON-RPC.
			logger.Info("starting goexpr MCP server (stdio)")
			if err := mcpserver.New(logger, Version).ServeStdio(); err != nil {
				logger.Error("MCP server execution failed", "error", err)
				return err
			}
			return nil
		},
	}
}
