package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "shotbridge"

// Metrics holds all OTEL metric instruments for shotbridge.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// Capture counters (partitioned by backend + kind + success via attributes)
	Captures         metric.Int64Counter
	DegradedCaptures metric.Int64Counter
	CaptureDuration  metric.Float64Histogram

	// Idle query counter
	IdleQueries metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Captures, err = meter.Int64Counter("captures.total",
		metric.WithDescription("Total capture operations partitioned by backend, kind and success"))
	if err != nil {
		return nil, err
	}

	m.DegradedCaptures, err = meter.Int64Counter("captures.degraded.total",
		metric.WithDescription("Capture operations served by a full-screen fallback because the backend lacks the requested mode"))
	if err != nil {
		return nil, err
	}

	m.CaptureDuration, err = meter.Float64Histogram("capture.duration",
		metric.WithDescription("Wall-clock duration of capture tool invocations"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	m.IdleQueries, err = meter.Int64Counter("idle.queries.total",
		metric.WithDescription("Total GetIdletime queries served"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordCapture records one completed capture operation.
func (m *Metrics) RecordCapture(ctx context.Context, backend, kind string, success, degraded bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("capture.backend", backend),
		attribute.String("capture.kind", kind),
		attribute.Bool("capture.success", success),
	)
	m.Captures.Add(ctx, 1, attrs)
	m.CaptureDuration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	if degraded {
		m.DegradedCaptures.Add(ctx, 1, metric.WithAttributes(
			attribute.String("capture.backend", backend),
			attribute.String("capture.kind", kind),
		))
	}
}

// RecordIdleQuery records one served idle-time query.
func (m *Metrics) RecordIdleQuery(ctx context.Context) {
	if m == nil {
		return
	}
	m.IdleQueries.Add(ctx, 1)
}
