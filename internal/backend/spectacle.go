package backend

import (
	"context"
	"log/slog"
)

// Spectacle implements the Backend interface for KDE's spectacle.
// It has native window capture but no coordinate-based area capture.
type Spectacle struct {
	run Runner
}

// NewSpectacle creates a spectacle backend using the given runner.
func NewSpectacle(r Runner) *Spectacle {
	return &Spectacle{run: r}
}

func (s *Spectacle) Name() string {
	return "spectacle"
}

func (s *Spectacle) Available() bool {
	_, err := s.run.LookPath("spectacle")
	return err == nil
}

// CaptureFull runs spectacle in background mode (-b -n) with fullscreen
// capture (-f) writing to path (-o).
func (s *Spectacle) CaptureFull(ctx context.Context, path string, cursor bool) error {
	args := []string{"-b", "-n", "-f", "-o", path}
	if cursor {
		args = append(args, "-p")
	}
	return s.run.Run(ctx, "spectacle", args...)
}

// CaptureArea degrades to a full-screen capture: spectacle only supports
// interactive region selection, not a caller-supplied rectangle.
func (s *Spectacle) CaptureArea(ctx context.Context, path string, x, y, w, h int) error {
	slog.Warn("spectacle does not support coordinate-based area capture, capturing full screen instead",
		"path", path)
	return s.CaptureFull(ctx, path, false)
}

// CaptureWindow captures the active window (-a). Decorations are included
// by default; -e excludes them.
func (s *Spectacle) CaptureWindow(ctx context.Context, path string, cursor, decorations bool) error {
	args := []string{"-b", "-n", "-a", "-o", path}
	if cursor {
		args = append(args, "-p")
	}
	if !decorations {
		args = append(args, "-e")
	}
	return s.run.Run(ctx, "spectacle", args...)
}
