package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Session is an in-process meter provider read once at exit for the session summary
type Session struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
}

// NewSession creates a provider backed by a manual reader
// With global set, it also becomes the otel global provider
func NewSession(global bool) *Session {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	if global {
		otel.SetMeterProvider(provider)
	}
	return &Session{reader: reader, provider: provider}
}

// Meter returns this session's meter for the recorder
func (s *Session) Meter() metric.Meter {
	return s.provider.Meter(instrumentationName)
}

// Totals sums every int64 counter across its attribute sets, keyed by instrument name
func (s *Session) Totals(ctx context.Context) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := s.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collecting metrics: %w", err)
	}

	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals, nil
}

// Shutdown flushes and stops the provider
func (s *Session) Shutdown(ctx context.Context) error {
	return s.provider.Shutdown(ctx)
}
