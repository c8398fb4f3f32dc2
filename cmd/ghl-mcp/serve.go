package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/ghl-mcp/internal/config"
	"github.com/bobmcallan/ghl-mcp/internal/server"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over HTTP + SSE",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApp(func(cfg *config.Config) {
				config.ApplyFlagOverrides(cfg, port, host)
			})
			if err != nil {
				return err
			}
			defer application.Close()

			logger := application.Logger
			srv := server.New(application)

			ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(srv.Start)
			g.Go(func() error {
				<-gctx.Done()
				logger.Info().Msg("shutdown signal received")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			if err := g.Wait(); err != nil {
				logger.Error().Err(err).Msg("server stopped with error")
				return err
			}

			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Server host (overrides config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Server port (overrides config)")
	return cmd
}
