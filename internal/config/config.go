// Package config loads shotbridge configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the cmd package)
//  2. Environment variables (SHOTBRIDGE_*)
//  3. Config file
//  4. Built-in defaults
//
// Config file search order:
//  1. .shotbridge.yaml in current directory
//  2. ~/.config/shotbridge/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Known backend names, in detection priority order.
var KnownBackends = []string{"spectacle", "grim", "gnome-screenshot"}

// Config holds all shotbridge configuration.
type Config struct {
	// Backend forces a specific screenshot backend. Empty means auto-detect.
	Backend string `yaml:"backend"`

	// WarnBeforeCapture shows a desktop notification before every capture.
	WarnBeforeCapture bool `yaml:"warn_before_capture"`

	// DisableIdle turns off idle tracking; the IdleMonitor interface is
	// then not exported at all.
	DisableIdle bool `yaml:"disable_idle"`

	// Capture history retention
	HistoryTTL string `yaml:"history_ttl"` // Go duration string, e.g. "1h"
	HistoryMax int    `yaml:"history_max"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs

	// Parsed durations (not from YAML, set after loading)
	HistoryTTLDuration time.Duration `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		HistoryTTL: "1h",
		HistoryMax: 50,
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	// Try to load config file
	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	// Environment variables override everything
	mergeEnv(cfg)

	// Parse durations
	var err error
	cfg.HistoryTTLDuration, err = time.ParseDuration(cfg.HistoryTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid history TTL %q: %w", cfg.HistoryTTL, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Backend != "" && !IsKnownBackend(c.Backend) {
		return fmt.Errorf("unknown backend %q (known: %v)", c.Backend, KnownBackends)
	}
	if c.HistoryMax < 1 {
		return fmt.Errorf("history_max must be at least 1, got %d", c.HistoryMax)
	}
	return nil
}

// IsKnownBackend reports whether name is one of the supported backends.
func IsKnownBackend(name string) bool {
	for _, b := range KnownBackends {
		if b == name {
			return true
		}
	}
	return false
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	// 1. Current directory
	if data, err := os.ReadFile(".shotbridge.yaml"); err == nil {
		return ".shotbridge.yaml", data, nil
	}

	// 2. XDG config dir / ~/.config
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "shotbridge", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Backend != "" {
		cfg.Backend = file.Backend
	}
	if file.WarnBeforeCapture {
		cfg.WarnBeforeCapture = true
	}
	if file.DisableIdle {
		cfg.DisableIdle = true
	}
	if file.HistoryTTL != "" {
		cfg.HistoryTTL = file.HistoryTTL
	}
	if file.HistoryMax > 0 {
		cfg.HistoryMax = file.HistoryMax
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("SHOTBRIDGE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("SHOTBRIDGE_WARN"); v == "true" || v == "1" {
		cfg.WarnBeforeCapture = true
	}
	if v := os.Getenv("SHOTBRIDGE_NO_IDLE"); v == "true" || v == "1" {
		cfg.DisableIdle = true
	}
	if v := os.Getenv("SHOTBRIDGE_HISTORY_TTL"); v != "" {
		cfg.HistoryTTL = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}
