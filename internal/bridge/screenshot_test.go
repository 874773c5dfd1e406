package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shotbridge/shotbridge/internal/backend"
	"github.com/shotbridge/shotbridge/internal/history"
	"github.com/shotbridge/shotbridge/internal/notify"
)

// fakeBackend lets tests script capture outcomes.
type fakeBackend struct {
	name    string
	err     error
	panics  bool
	calls   []string
}

func (f *fakeBackend) Name() string    { return f.name }
func (f *fakeBackend) Available() bool { return true }

func (f *fakeBackend) CaptureFull(ctx context.Context, path string, cursor bool) error {
	f.calls = append(f.calls, "full")
	if f.panics {
		panic("backend exploded")
	}
	return f.err
}

func (f *fakeBackend) CaptureArea(ctx context.Context, path string, x, y, w, h int) error {
	f.calls = append(f.calls, "area")
	return f.err
}

func (f *fakeBackend) CaptureWindow(ctx context.Context, path string, cursor, decorations bool) error {
	f.calls = append(f.calls, "window")
	return f.err
}

// countingRunner counts notify-send invocations.
type countingRunner struct {
	runs int
}

func (c *countingRunner) LookPath(name string) (string, error) { return "/usr/bin/" + name, nil }

func (c *countingRunner) Run(ctx context.Context, name string, args ...string) error {
	c.runs++
	return nil
}

func newTestService(b backend.Backend, warn bool) (*ScreenshotService, *history.Store, *countingRunner) {
	hist := history.NewStore(time.Hour, 50)
	runner := &countingRunner{}
	return NewScreenshotService(b, notify.New(runner), warn, hist, nil), hist, runner
}

func TestScreenshotSuccess(t *testing.T) {
	svc, hist, _ := newTestService(&fakeBackend{name: "grim"}, false)

	ok, path, derr := svc.Screenshot(true, false, "/tmp/s.png")
	if derr != nil {
		t.Fatalf("unexpected dbus error: %v", derr)
	}
	if !ok || path != "/tmp/s.png" {
		t.Errorf("got (%v, %q), want (true, %q)", ok, path, "/tmp/s.png")
	}

	records := hist.Snapshot(time.Now())
	if len(records) != 1 {
		t.Fatalf("history: got %d records, want 1", len(records))
	}
	if !records[0].Success || records[0].Kind != backend.KindFull {
		t.Errorf("history record: %+v", records[0])
	}
}

func TestScreenshotToolFailureCollapsesToFalse(t *testing.T) {
	svc, _, _ := newTestService(&fakeBackend{name: "grim", err: errors.New("exit status 1")}, false)

	ok, path, derr := svc.Screenshot(false, false, "/tmp/s.png")
	if derr != nil {
		t.Fatalf("unexpected dbus error: %v", derr)
	}
	if ok {
		t.Error("got success for failing tool, want false")
	}
	if path != "/tmp/s.png" {
		t.Errorf("filename not echoed back: got %q", path)
	}
}

func TestScreenshotPanicNeverCrossesTheBus(t *testing.T) {
	svc, _, _ := newTestService(&fakeBackend{name: "grim", panics: true}, false)

	ok, path, derr := svc.Screenshot(false, false, "/tmp/s.png")
	if derr != nil {
		t.Fatalf("unexpected dbus error: %v", derr)
	}
	if ok {
		t.Error("got success after backend panic, want false")
	}
	if path != "/tmp/s.png" {
		t.Errorf("filename not echoed back: got %q", path)
	}
}

func TestWarnBeforeCapture(t *testing.T) {
	b := &fakeBackend{name: "grim"}
	svc, _, runner := newTestService(b, true)

	svc.Screenshot(false, false, "/tmp/s.png")
	if runner.runs != 1 {
		t.Errorf("notify-send invocations: got %d, want 1", runner.runs)
	}

	svcNoWarn, _, runner2 := newTestService(b, false)
	svcNoWarn.Screenshot(false, false, "/tmp/s.png")
	if runner2.runs != 0 {
		t.Errorf("notify-send invocations without warn: got %d, want 0", runner2.runs)
	}
}

func TestScreenshotAreaMarksDegradation(t *testing.T) {
	// spectacle has no native area capture; grim does.
	tests := []struct {
		backendName  string
		wantDegraded bool
	}{
		{"spectacle", true},
		{"grim", false},
		{"gnome-screenshot", true},
	}

	for _, tt := range tests {
		t.Run(tt.backendName, func(t *testing.T) {
			svc, hist, _ := newTestService(&fakeBackend{name: tt.backendName}, false)

			ok, _, _ := svc.ScreenshotArea(10, 20, 300, 200, false, "/tmp/a.png")
			if !ok {
				t.Fatal("expected success")
			}
			records := hist.Snapshot(time.Now())
			if len(records) != 1 {
				t.Fatalf("history: got %d records, want 1", len(records))
			}
			if records[0].Degraded != tt.wantDegraded {
				t.Errorf("degraded: got %v, want %v", records[0].Degraded, tt.wantDegraded)
			}
		})
	}
}

func TestScreenshotWindowPassesFrameAsDecorations(t *testing.T) {
	b := &fakeBackend{name: "spectacle"}
	svc, _, _ := newTestService(b, false)

	ok, _, _ := svc.ScreenshotWindow(true, false, false, "/tmp/w.png")
	if !ok {
		t.Fatal("expected success")
	}
	if len(b.calls) != 1 || b.calls[0] != "window" {
		t.Errorf("backend calls: got %v, want [window]", b.calls)
	}
}
