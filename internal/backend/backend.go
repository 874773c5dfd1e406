// Package backend abstracts over external screenshot tools (spectacle,
// grim, gnome-screenshot).
//
// Each backend translates uniform capture requests into the argument
// convention of one concrete tool. Capability gaps are papered over by
// degrading to a full-screen capture rather than failing: callers always
// get an image or an error from the tool itself, never an "unsupported
// operation" error.
package backend

import (
	"context"
)

// Capture kinds, used for logging, metrics and the capture history.
const (
	KindFull   = "full"
	KindArea   = "area"
	KindWindow = "window"
)

// Backend abstracts one external screenshot tool.
// Implementations are stateless; one is selected at startup via Detect
// and never swapped afterwards.
type Backend interface {
	// Name returns the backend name (also the tool's executable name).
	Name() string

	// Available reports whether the tool is resolvable on PATH.
	Available() bool

	// CaptureFull captures the entire visible output to path.
	// A nil error means the tool exited 0 and the file was written.
	CaptureFull(ctx context.Context, path string, cursor bool) error

	// CaptureArea captures the pixel rectangle (x, y, w, h) to path.
	// Backends without a rectangle primitive degrade to CaptureFull
	// and log a warning.
	CaptureArea(ctx context.Context, path string, x, y, w, h int) error

	// CaptureWindow captures the focused window to path. Backends
	// without a window primitive degrade to CaptureFull, preserving
	// the cursor flag, and log a warning.
	CaptureWindow(ctx context.Context, path string, cursor, decorations bool) error
}

// SupportsNatively reports whether the named backend has a native
// primitive for the capture kind, i.e. whether the call will be served
// directly rather than by a full-screen fallback.
func SupportsNatively(name, kind string) bool {
	switch kind {
	case KindArea:
		return name == "grim"
	case KindWindow:
		return name != "grim"
	default:
		return true
	}
}

// All returns the known backends in fixed priority order: native desktop
// integration first, the GNOME tool as the last resort.
func All(r Runner) []Backend {
	return []Backend{
		NewSpectacle(r),
		NewGrim(r),
		NewGnomeScreenshot(r),
	}
}
