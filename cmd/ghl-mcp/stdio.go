package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func stdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP over stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApp(nil)
			if err != nil {
				return err
			}
			defer application.Close()

			ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = application.Engine.ServeStdio(ctx, os.Stdin, os.Stdout)
			if err != nil && ctx.Err() == nil {
				application.Logger.Error().Err(err).Msg("stdio transport failed")
				return err
			}
			application.Logger.Info().Msg("stdio transport stopped")
			return nil
		},
	}
}

// contextOrBackground guards against commands executed without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
