package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/njchilds90/goexpr/internal/httpapi"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP tool server",
		Long: `Starts an HTTP server exposing the goexpr tools.

  POST /tool    — execute a tool call
  GET  /schema  — tool schema for agent registration
  GET  /health  — health check
  GET  /metrics — Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("addr")

			srv, err := httpapi.New(logger, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Run(ctx, addr); err != nil {
				logger.Error("tool server failed", "error", err)
				return err
			}
			logger.Info("tool server stopped gracefully")
			return nil
		},
	}
	cmd.Flags().String("addr", ":8080", "Address to listen on")
	return cmd
}
