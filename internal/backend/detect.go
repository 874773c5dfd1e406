package backend

import (
	"log/slog"
)

// Detect selects the screenshot backend to use for the lifetime of the
// process.
//
// If preferred names a known backend and that backend's tool is on PATH,
// it wins regardless of priority order. A preferred backend that is not
// installed logs a warning and falls through to auto-detection; an
// unrecognized name falls through silently.
//
// Auto-detection returns the first available backend in the order given
// by All. Returns nil when no capture tool is installed.
func Detect(preferred string, r Runner) Backend {
	backends := All(r)

	if preferred != "" {
		for _, b := range backends {
			if b.Name() != preferred {
				continue
			}
			if b.Available() {
				slog.Info("using preferred backend", "backend", b.Name())
				return b
			}
			slog.Warn("preferred backend not available, falling back to auto-detection",
				"backend", preferred)
			break
		}
	}

	for _, b := range backends {
		if b.Available() {
			slog.Info("auto-detected backend", "backend", b.Name())
			return b
		}
	}

	return nil
}
