package bridge

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/shotbridge/shotbridge/internal/history"
	"github.com/shotbridge/shotbridge/internal/idle"
)

// StatusService implements com.github.shotbridge.Bridge, a small
// introspection surface for shotbridge's own tooling (doctor, monitor).
// It rides on the already-claimed connection and does not touch the GNOME
// contract.
type StatusService struct {
	Backend string
	Started time.Time
	Monitor *idle.Monitor // nil when idle tracking is disabled
	History *history.Store
}

// CaptureRecord is the wire shape of one history entry: (tssbb).
type CaptureRecord struct {
	UnixMs   uint64
	Kind     string
	Path     string
	Success  bool
	Degraded bool
}

// Status returns the active backend, uptime in milliseconds and whether
// the idle helper subprocess is running.
func (s *StatusService) Status() (string, uint64, bool, *dbus.Error) {
	uptime := uint64(time.Since(s.Started).Milliseconds())
	monitoring := s.Monitor != nil && s.Monitor.Monitoring()
	return s.Backend, uptime, monitoring, nil
}

// RecentCaptures returns the retained capture history, newest first.
func (s *StatusService) RecentCaptures() ([]CaptureRecord, *dbus.Error) {
	records := s.History.Snapshot(time.Now())
	out := make([]CaptureRecord, 0, len(records))
	for _, r := range records {
		out = append(out, CaptureRecord{
			UnixMs:   uint64(r.TS.UnixMilli()),
			Kind:     r.Kind,
			Path:     r.Path,
			Success:  r.Success,
			Degraded: r.Degraded,
		})
	}
	return out, nil
}

func exportStatus(conn *dbus.Conn, svc *StatusService) error {
	if err := conn.Export(svc, StatusPath, StatusInterface); err != nil {
		return fmt.Errorf("exporting status service: %w", err)
	}
	return exportIntrospection(conn, StatusPath, statusNode())
}
