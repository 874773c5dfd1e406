package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/bridge"
	sbotel "github.com/shotbridge/shotbridge/internal/otel"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bridge until interrupted",
	Long: `Detects a screenshot backend, connects to the session bus, claims the
org.gnome.Shell.Screenshot and org.gnome.Mutter.IdleMonitor names and
serves until SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// Signals cancel the context; the bridge observes it and stops
		// itself rather than stop logic running inside signal delivery.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sbotel.Version = Version
		tel, err := sbotel.Init(ctx, sbotel.OTELConfig{
			Endpoint: cfg.OTELEndpoint,
			Headers:  cfg.OTELHeaders,
		})
		if err != nil {
			return err
		}
		defer tel.Shutdown(context.Background())

		br := bridge.New(cfg, tel)
		if err := br.Start(ctx); err != nil {
			return err
		}
		br.Run(ctx)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
