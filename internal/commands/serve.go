package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/blog-api/internal/config"
	"github.com/beesaferoot/blog-api/internal/db"
	"github.com/beesaferoot/blog-api/internal/migration"
	"github.com/beesaferoot/blog-api/internal/server"
)

// ServeCmd runs the schema migrations and starts the HTTP server.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the blog API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			gdb, err := db.Connect(cfg.Database)
			if err != nil {
				return err
			}

			if err := migration.RunAll(gdb); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, gdb).Serve(ctx)
		},
	}
}
