package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Backend != "" {
		t.Errorf("Backend: got %q, want auto-detect", cfg.Backend)
	}
	if cfg.WarnBeforeCapture {
		t.Error("WarnBeforeCapture: got true, want false")
	}
	if cfg.DisableIdle {
		t.Error("DisableIdle: got true, want false")
	}
	if cfg.HistoryTTL != "1h" {
		t.Errorf("HistoryTTL: got %q, want %q", cfg.HistoryTTL, "1h")
	}
	if cfg.HistoryMax != 50 {
		t.Errorf("HistoryMax: got %d, want %d", cfg.HistoryMax, 50)
	}
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := Defaults()
	cfg.Backend = "flameshot"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate: expected error for unknown backend")
	}
}

func TestValidateAcceptsKnownBackends(t *testing.T) {
	for _, name := range KnownBackends {
		cfg := Defaults()
		cfg.Backend = name
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(%q): unexpected error: %v", name, err)
		}
	}
}

func TestMergeEnvOverrides(t *testing.T) {
	t.Setenv("SHOTBRIDGE_BACKEND", "grim")
	t.Setenv("SHOTBRIDGE_WARN", "1")
	t.Setenv("SHOTBRIDGE_NO_IDLE", "true")

	cfg := Defaults()
	mergeEnv(cfg)

	if cfg.Backend != "grim" {
		t.Errorf("Backend: got %q, want %q", cfg.Backend, "grim")
	}
	if !cfg.WarnBeforeCapture {
		t.Error("WarnBeforeCapture: env override not applied")
	}
	if !cfg.DisableIdle {
		t.Error("DisableIdle: env override not applied")
	}
}

func TestMergeFile(t *testing.T) {
	cfg := Defaults()
	mergeFile(cfg, &Config{Backend: "spectacle", HistoryTTL: "30m", HistoryMax: 10})

	if cfg.Backend != "spectacle" {
		t.Errorf("Backend: got %q, want %q", cfg.Backend, "spectacle")
	}
	if cfg.HistoryTTL != "30m" {
		t.Errorf("HistoryTTL: got %q, want %q", cfg.HistoryTTL, "30m")
	}
	if cfg.HistoryMax != 10 {
		t.Errorf("HistoryMax: got %d, want %d", cfg.HistoryMax, 10)
	}

	// Zero values in the file must not clobber defaults.
	cfg2 := Defaults()
	mergeFile(cfg2, &Config{})
	if cfg2.HistoryTTL != "1h" || cfg2.HistoryMax != 50 {
		t.Errorf("zero-value file clobbered defaults: %+v", cfg2)
	}
}

func TestHistoryTTLParses(t *testing.T) {
	d, err := time.ParseDuration(Defaults().HistoryTTL)
	if err != nil {
		t.Fatalf("default HistoryTTL does not parse: %v", err)
	}
	if d != time.Hour {
		t.Errorf("default HistoryTTL: got %v, want %v", d, time.Hour)
	}
}
