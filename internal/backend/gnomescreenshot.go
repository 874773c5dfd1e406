package backend

import (
	"context"
	"log/slog"
)

// GnomeScreenshot implements the Backend interface for gnome-screenshot,
// the fallback when neither spectacle nor grim is installed.
type GnomeScreenshot struct {
	run Runner
}

// NewGnomeScreenshot creates a gnome-screenshot backend using the given runner.
func NewGnomeScreenshot(r Runner) *GnomeScreenshot {
	return &GnomeScreenshot{run: r}
}

func (g *GnomeScreenshot) Name() string {
	return "gnome-screenshot"
}

func (g *GnomeScreenshot) Available() bool {
	_, err := g.run.LookPath("gnome-screenshot")
	return err == nil
}

func (g *GnomeScreenshot) CaptureFull(ctx context.Context, path string, cursor bool) error {
	args := []string{"-f", path}
	if cursor {
		args = append(args, "-p")
	}
	return g.run.Run(ctx, "gnome-screenshot", args...)
}

// CaptureArea degrades to a full-screen capture. gnome-screenshot's -a
// flag only supports interactive selection.
func (g *GnomeScreenshot) CaptureArea(ctx context.Context, path string, x, y, w, h int) error {
	slog.Warn("gnome-screenshot does not support coordinate-based area capture, capturing full screen instead",
		"path", path)
	return g.CaptureFull(ctx, path, false)
}

// CaptureWindow captures the active window (-w). The -B flag removes the
// window border, so it is passed when decorations are excluded.
func (g *GnomeScreenshot) CaptureWindow(ctx context.Context, path string, cursor, decorations bool) error {
	args := []string{"-w", "-f", path}
	if cursor {
		args = append(args, "-p")
	}
	if !decorations {
		args = append(args, "-B")
	}
	return g.run.Run(ctx, "gnome-screenshot", args...)
}
