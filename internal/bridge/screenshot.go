package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/godbus/dbus/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shotbridge/shotbridge/internal/backend"
	"github.com/shotbridge/shotbridge/internal/history"
	"github.com/shotbridge/shotbridge/internal/notify"
	sbotel "github.com/shotbridge/shotbridge/internal/otel"
)

var tracer = otel.Tracer("shotbridge")

// ScreenshotService implements org.gnome.Shell.Screenshot.
//
// The wire contract is a bare success boolean plus the filename echoed
// back; whatever goes wrong internally is logged here and collapsed to
// (false, filename). A *dbus.Error is never returned: GNOME clients do
// not expect one.
type ScreenshotService struct {
	backend  backend.Backend
	notifier *notify.Notifier
	warn     bool
	hist     *history.Store
	metrics  *sbotel.Metrics
}

func NewScreenshotService(b backend.Backend, n *notify.Notifier, warn bool, hist *history.Store, metrics *sbotel.Metrics) *ScreenshotService {
	return &ScreenshotService{backend: b, notifier: n, warn: warn, hist: hist, metrics: metrics}
}

// Screenshot captures the full screen. flash is accepted for
// compatibility and unused.
func (s *ScreenshotService) Screenshot(includeCursor, flash bool, filename string) (bool, string, *dbus.Error) {
	ok := s.capture(backend.KindFull, filename,
		[]attribute.KeyValue{attribute.Bool("capture.cursor", includeCursor)},
		func(ctx context.Context) error {
			return s.backend.CaptureFull(ctx, filename, includeCursor)
		})
	return ok, filename, nil
}

// ScreenshotWindow captures the focused window. include_frame maps to the
// backend's decorations flag.
func (s *ScreenshotService) ScreenshotWindow(includeFrame, includeCursor, flash bool, filename string) (bool, string, *dbus.Error) {
	ok := s.capture(backend.KindWindow, filename,
		[]attribute.KeyValue{
			attribute.Bool("capture.cursor", includeCursor),
			attribute.Bool("capture.frame", includeFrame),
		},
		func(ctx context.Context) error {
			return s.backend.CaptureWindow(ctx, filename, includeCursor, includeFrame)
		})
	return ok, filename, nil
}

// ScreenshotArea captures the given pixel rectangle.
func (s *ScreenshotService) ScreenshotArea(x, y, width, height int32, flash bool, filename string) (bool, string, *dbus.Error) {
	if width <= 0 || height <= 0 {
		slog.Warn("area capture with non-positive dimensions", "width", width, "height", height)
	}
	ok := s.capture(backend.KindArea, filename,
		[]attribute.KeyValue{
			attribute.Int("capture.x", int(x)),
			attribute.Int("capture.y", int(y)),
			attribute.Int("capture.width", int(width)),
			attribute.Int("capture.height", int(height)),
		},
		func(ctx context.Context) error {
			return s.backend.CaptureArea(ctx, filename, int(x), int(y), int(width), int(height))
		})
	return ok, filename, nil
}

// capture runs one capture operation: optional pre-capture notification,
// delegation to the backend, then history and metrics. A panic in the
// backend is caught and reported as a failed capture — nothing may
// propagate to the bus transport.
func (s *ScreenshotService) capture(kind, filename string, attrs []attribute.KeyValue, invoke func(context.Context) error) (ok bool) {
	ctx, span := tracer.Start(context.Background(), "capture",
		trace.WithAttributes(append(attrs,
			attribute.String("capture.kind", kind),
			attribute.String("capture.backend", s.backend.Name()),
			attribute.String("capture.path", filename),
		)...))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("capture panicked", "kind", kind, "path", filename, "panic", r)
			ok = false
		}
	}()

	slog.Info("capture requested", "kind", kind, "path", filename, "backend", s.backend.Name())

	if s.warn {
		s.notifier.Warn(ctx)
	}

	degraded := !backend.SupportsNatively(s.backend.Name(), kind)

	start := time.Now()
	err := invoke(ctx)
	elapsed := time.Since(start)

	ok = err == nil
	if ok {
		slog.Info("capture saved", "kind", kind, "path", filename, "elapsed", elapsed)
	} else {
		slog.Error("capture failed", "kind", kind, "path", filename, "error", err)
	}

	s.metrics.RecordCapture(ctx, s.backend.Name(), kind, ok, degraded, elapsed)
	s.hist.Add(history.Record{
		TS:       start,
		Kind:     kind,
		Path:     filename,
		Backend:  s.backend.Name(),
		Success:  ok,
		Degraded: degraded,
	})
	return ok
}

func exportScreenshot(conn *dbus.Conn, svc *ScreenshotService) error {
	if err := conn.Export(svc, ScreenshotPath, ScreenshotInterface); err != nil {
		return fmt.Errorf("exporting screenshot service: %w", err)
	}
	if err := exportIntrospection(conn, ScreenshotPath, screenshotNode()); err != nil {
		return err
	}
	return requestName(conn, ScreenshotBusName)
}
