package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nfrund/orderdesk/internal/config"
	"github.com/nfrund/orderdesk/internal/logging"
	"github.com/nfrund/orderdesk/internal/server"
)

var addr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the console HTTP server",
	Long: `Loads configuration from the environment (and an optional .env file),
restores the saved session and serves the console until interrupted.

Examples:
  orderdesk serve
  orderdesk serve --addr :9090
  SESSION_BACKEND=redis REDIS_ADDR=cache:6379 orderdesk serve`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logging.New(cfg.LogFormat, cfg.LogLevel)

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		return err
	}
	s.RegisterRoutes()

	slog.Info("Starting console", "addr", cfg.Addr)
	return s.Start()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address, overrides APP_ADDR")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
}
