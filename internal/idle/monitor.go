// Package idle tracks time since the last user activity by supervising a
// swayidle subprocess and consuming its event stream.
//
// When swayidle is not installed the monitor simply never starts; the
// idle query still works and reports time since the monitor was
// constructed, which is what the bridge wants on desktops without an
// idle helper.
package idle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// helperArgv is the fixed swayidle invocation: minimal timeout threshold,
// textual events on stdout. -w makes swayidle wait for its event commands,
// keeping the stream ordered.
var helperArgv = []string{"swayidle", "-w", "timeout", "1", "echo timeout", "resume", "echo resume"}

// Monitor owns the idle helper subprocess and the last-activity timestamp.
// The timestamp has a single writer (the read loop) and any number of
// readers; it is stored as unix nanoseconds in an atomic.
type Monitor struct {
	lastActive atomic.Int64

	mu     sync.Mutex
	cancel context.CancelFunc
	stdout io.Closer
	done   chan struct{}

	// argv of the helper process; tests override it.
	helper []string
}

// NewMonitor creates a monitor with the last-activity timestamp seeded to
// now, so Idletime works before (or without) Start.
func NewMonitor() *Monitor {
	m := &Monitor{helper: helperArgv}
	m.lastActive.Store(time.Now().UnixNano())
	return m
}

// Start spawns the idle helper and begins consuming its event stream.
// Returns an error when the helper is missing or fails to spawn; the
// caller treats that as a degradation, not a fatal condition. Calling
// Start while already monitoring is a no-op.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return nil
	}

	if _, err := exec.LookPath(m.helper[0]); err != nil {
		return fmt.Errorf("idle helper %s not found: %w", m.helper[0], err)
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, m.helper[0], m.helper[1:]...)
	// Ask the helper to exit cleanly on cancellation; SIGKILL after the
	// delay if it ignores us.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = 3 * time.Second

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return fmt.Errorf("idle helper stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("spawning %s: %w", m.helper[0], err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		m.consume(stdout)
		_ = cmd.Wait()
	}()

	m.cancel = cancel
	m.stdout = stdout
	m.done = done
	slog.Info("started idle monitor", "helper", m.helper[0])
	return nil
}

// consume reads newline-delimited events until the stream closes. Only
// resume events move the last-activity timestamp; timeout events (and
// anything else) are ignored.
func (m *Monitor) consume(r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "resume" {
			m.lastActive.Store(time.Now().UnixNano())
			slog.Debug("user activity resumed")
		}
	}
}

// Stop terminates the helper and waits for the read loop and the child to
// be reaped. Safe to call more than once, and before Start.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel, stdout, done := m.cancel, m.stdout, m.done
	m.cancel, m.stdout, m.done = nil, nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	// Unblock the read loop even if something inherited the helper's
	// stdout and keeps the pipe open past the helper's death.
	_ = stdout.Close()
	<-done
	slog.Info("stopped idle monitor")
}

// Monitoring reports whether the helper subprocess is running.
func (m *Monitor) Monitoring() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

// LastActivity returns the instant of the last observed resume event (or
// construction time if none was seen).
func (m *Monitor) LastActivity() time.Time {
	return time.Unix(0, m.lastActive.Load())
}

// Idletime returns milliseconds since the last activity, rounded to the
// nearest millisecond. Never negative: the timestamp is never in the
// future.
func (m *Monitor) Idletime() uint64 {
	elapsed := time.Since(m.LastActivity()).Round(time.Millisecond)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed.Milliseconds())
}
