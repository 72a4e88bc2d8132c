package commands

import (
	"context"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/domainversion/internal/adapters/http"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve domain versions over HTTP",
		Long: `Start a read-only HTTP API answering version queries for build agents.
The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, opts, func(ctx context.Context, c *container) error {
				// Resolving the server eagerly wires the full graph.
				server, err := do.Invoke[*adapthttp.Server](c.injector)
				if err != nil {
					return err
				}

				if err := server.Run(ctx); err != nil {
					return err
				}
				c.logger.Info("shutdown complete", slog.String("addr", server.Addr()))
				return nil
			})
		},
	}
}
