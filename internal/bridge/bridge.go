// Package bridge exports the GNOME Shell screenshot and Mutter idle
// monitor D-Bus interfaces on the session bus, backed by whatever capture
// tool internal/backend selects.
//
// Clients written against GNOME (time trackers, Upwork and friends) call
// these interfaces by well-known name; on Plasma or wlroots compositors
// nothing answers. The bridge claims those names and translates.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/shotbridge/shotbridge/internal/backend"
	"github.com/shotbridge/shotbridge/internal/config"
	"github.com/shotbridge/shotbridge/internal/history"
	"github.com/shotbridge/shotbridge/internal/idle"
	"github.com/shotbridge/shotbridge/internal/notify"
	sbotel "github.com/shotbridge/shotbridge/internal/otel"
)

// Wire contract. These must match GNOME byte-for-byte; clients hardcode them.
const (
	ScreenshotPath      = "/org/gnome/Shell/Screenshot"
	ScreenshotInterface = "org.gnome.Shell.Screenshot"
	ScreenshotBusName   = "org.gnome.Shell.Screenshot"

	IdleMonitorPath      = "/org/gnome/Mutter/IdleMonitor/Core"
	IdleMonitorInterface = "org.gnome.Mutter.IdleMonitor"
	IdleMonitorBusName   = "org.gnome.Mutter.IdleMonitor"
)

// Own status surface for shotbridge tooling (doctor, monitor). Not part
// of the GNOME contract.
const (
	StatusPath      = "/com/github/shotbridge/Bridge"
	StatusInterface = "com.github.shotbridge.Bridge"
)

// Bridge owns the process-wide resources: the bus connection and the
// optional idle monitor subprocess. Teardown order is monitor first, bus
// second.
type Bridge struct {
	cfg    *config.Config
	tel    *sbotel.Telemetry
	runner backend.Runner

	backend backend.Backend
	conn    *dbus.Conn
	monitor *idle.Monitor
	hist    *history.Store
	started time.Time

	stopOnce sync.Once
	stopped  chan struct{}
}

// New creates a bridge. tel may be nil (telemetry disabled).
func New(cfg *config.Config, tel *sbotel.Telemetry) *Bridge {
	return &Bridge{
		cfg:     cfg,
		tel:     tel,
		runner:  backend.ExecRunner{},
		hist:    history.NewStore(cfg.HistoryTTLDuration, cfg.HistoryMax),
		stopped: make(chan struct{}),
	}
}

// Start detects the backend, connects to the session bus and exports both
// interfaces. An error from Start is fatal: either no capture tool is
// installed or the bus rejected us.
func (b *Bridge) Start(ctx context.Context) error {
	b.backend = backend.Detect(b.cfg.Backend, b.runner)
	if b.backend == nil {
		return fmt.Errorf("no screenshot backend available (install spectacle, grim or gnome-screenshot)")
	}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	b.conn = conn
	slog.Info("connected to session bus")

	var metrics *sbotel.Metrics
	if b.tel != nil {
		metrics = b.tel.Metrics
	}

	shot := NewScreenshotService(b.backend, notify.New(b.runner), b.cfg.WarnBeforeCapture, b.hist, metrics)
	if err := exportScreenshot(conn, shot); err != nil {
		b.teardown()
		return err
	}
	slog.Info("registered screenshot service", "name", ScreenshotBusName)

	// The idle monitor interface is exported even when the helper fails
	// to spawn: the query then reports time since startup, which is
	// better for clients than an absent service.
	if !b.cfg.DisableIdle {
		b.monitor = idle.NewMonitor()
		if err := b.monitor.Start(ctx); err != nil {
			slog.Warn("idle monitoring degraded to time-since-start", "error", err)
		}
		idleSvc := NewIdleTimeService(b.monitor, metrics)
		if err := exportIdleMonitor(conn, idleSvc); err != nil {
			b.teardown()
			return err
		}
		slog.Info("registered idle monitor service", "name", IdleMonitorBusName)
	}

	b.started = time.Now()
	status := &StatusService{
		Backend: b.backend.Name(),
		Started: b.started,
		Monitor: b.monitor,
		History: b.hist,
	}
	if err := exportStatus(conn, status); err != nil {
		b.teardown()
		return err
	}

	slog.Info("bridge started", "backend", b.backend.Name())
	return nil
}

// Run blocks until the context is cancelled or Stop is called.
func (b *Bridge) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		b.Stop()
	case <-b.stopped:
	}
}

// Stop tears down the idle monitor, then the bus connection. Idempotent
// and safe to call from a signal-driven goroutine or before Start.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		b.teardown()
		close(b.stopped)
		slog.Info("bridge stopped")
	})
}

func (b *Bridge) teardown() {
	if b.monitor != nil {
		b.monitor.Stop()
	}
	if b.conn != nil {
		_ = b.conn.Close()
	}
}

// requestName claims a well-known bus name, refusing to queue behind an
// existing owner.
func requestName(conn *dbus.Conn, name string) error {
	reply, err := conn.RequestName(name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("requesting bus name %s: %w", name, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("bus name %s is already owned (is the real desktop service running?)", name)
	}
	return nil
}
