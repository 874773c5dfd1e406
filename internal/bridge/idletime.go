package bridge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"

	"github.com/shotbridge/shotbridge/internal/idle"
	sbotel "github.com/shotbridge/shotbridge/internal/otel"
)

// IdleTimeService implements org.gnome.Mutter.IdleMonitor. Only the
// GetIdletime query is served; watches are not part of the contract the
// bridged clients use.
type IdleTimeService struct {
	monitor *idle.Monitor
	metrics *sbotel.Metrics
}

func NewIdleTimeService(m *idle.Monitor, metrics *sbotel.Metrics) *IdleTimeService {
	return &IdleTimeService{monitor: m, metrics: metrics}
}

// GetIdletime returns milliseconds since the last user activity.
func (s *IdleTimeService) GetIdletime() (uint64, *dbus.Error) {
	ms := s.monitor.Idletime()
	s.metrics.RecordIdleQuery(context.Background())
	slog.Debug("idle time queried", "idle_ms", ms)
	return ms, nil
}

func exportIdleMonitor(conn *dbus.Conn, svc *IdleTimeService) error {
	if err := conn.Export(svc, IdleMonitorPath, IdleMonitorInterface); err != nil {
		return fmt.Errorf("exporting idle monitor service: %w", err)
	}
	if err := exportIntrospection(conn, IdleMonitorPath, idleMonitorNode()); err != nil {
		return err
	}
	return requestName(conn, IdleMonitorBusName)
}
