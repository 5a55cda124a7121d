package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lazharichir/showdown/config"
	"github.com/lazharichir/showdown/logger"
	"github.com/lazharichir/showdown/server"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the duel server",
		Long: `Serve starts the HTTP and WebSocket duel server.

Configuration is read from defaults, then an optional YAML file named by
SHOWDOWN_CONFIG (or --config), then SHOWDOWN_-prefixed environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := os.Setenv("SHOWDOWN_CONFIG", configPath); err != nil {
					return err
				}
			}

			// Root context with cancel on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}

			logger.InitLogger(cfg.LogMode)
			defer func() { _ = logger.Log.Sync() }()

			return server.New(cfg, logger.Log).Start(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file (overrides SHOWDOWN_CONFIG)")

	return cmd
}
