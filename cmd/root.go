package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/config"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	// Global flags.
	flagBackend string
	flagWarn    bool
	flagNoIdle  bool
	flagVerbose bool
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "shotbridge",
	Short: "GNOME screenshot and idle-monitor D-Bus bridge for Plasma and wlroots",
	Long: `shotbridge implements the org.gnome.Shell.Screenshot and
org.gnome.Mutter.IdleMonitor D-Bus interfaces on desktops that don't
provide them, translating calls into whichever screenshot tool is
installed (spectacle, grim or gnome-screenshot).

This lets applications that hardcode GNOME's screenshot API — Upwork and
various time trackers — work on KDE Plasma, Sway, Hyprland and other
Wayland compositors.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagVerbose, flagDebug)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", envOrDefault("SHOTBRIDGE_BACKEND", ""), "screenshot backend: spectacle, grim, gnome-screenshot (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&flagWarn, "warn", "w", false, "show a notification before screenshots")
	rootCmd.PersistentFlags().BoolVar(&flagNoIdle, "no-idle", false, "disable idle monitoring")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "D", false, "debug output")
}

// setupLogging configures the process-wide slog handler. Verbosity only
// changes diagnostic volume, never behavior.
func setupLogging(verbose, debug bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig loads file + env configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("backend") || cfg.Backend == "" {
		cfg.Backend = flagBackend
	}
	if flagWarn {
		cfg.WarnBeforeCapture = true
	}
	if flagNoIdle {
		cfg.DisableIdle = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
