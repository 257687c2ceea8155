package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/events"
)

func newTestRecorder(t *testing.T) (*Recorder, *Session) {
	t.Helper()
	s := NewSession(false)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	r, err := NewRecorder(s.Meter())
	require.NoError(t, err)
	return r, s
}

func collect(t *testing.T, s *Session) map[string]metricdata.Sum[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, s.reader.Collect(context.Background(), &rm))
	out := make(map[string]metricdata.Sum[int64])
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				out[m.Name] = sum
			}
		}
	}
	return out
}

func valueFor(sum metricdata.Sum[int64], key, value string) int64 {
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			return dp.Value
		}
	}
	return 0
}

func TestRecorderCountsEvents(t *testing.T) {
	r, s := newTestRecorder(t)

	queue := events.NewEventQueue()
	router := events.NewRouter(queue)
	router.Register(r)

	queue.Push(events.GameEvent{Type: events.EventCollision, Payload: &events.CollisionPayload{Kind: component.KindAI}})
	queue.Push(events.GameEvent{Type: events.EventCollision, Payload: &events.CollisionPayload{Kind: component.KindAI}})
	queue.Push(events.GameEvent{Type: events.EventCollision, Payload: &events.CollisionPayload{Kind: component.KindPlayer}})
	queue.Push(events.GameEvent{Type: events.EventOncomingSpawned, Payload: &events.VehiclePayload{}})
	queue.Push(events.GameEvent{Type: events.EventOncomingSpawned, Payload: &events.VehiclePayload{}})
	queue.Push(events.GameEvent{Type: events.EventOncomingRetired, Payload: &events.VehiclePayload{}})
	queue.Push(events.GameEvent{Type: events.EventLaneChange, Payload: &events.LaneChangePayload{Kind: component.KindPlayer}})
	queue.Push(events.GameEvent{Type: events.EventRaceFinished, Payload: &events.RaceFinishedPayload{FinalPosition: 2}})
	queue.Push(events.GameEvent{Type: events.EventCarUnlocked, Payload: &events.CarUnlockedPayload{Class: component.ClassSports}})
	queue.Push(events.GameEvent{Type: events.EventGreenLight})
	assert.Equal(t, 10, router.DispatchAll())

	sums := collect(t, s)
	assert.Equal(t, int64(2), valueFor(sums[MetricCollisions], "kind", "AI"))
	assert.Equal(t, int64(1), valueFor(sums[MetricCollisions], "kind", "Player"))
	assert.Equal(t, int64(1), valueFor(sums[MetricLaneChanges], "kind", "Player"))
	assert.Equal(t, int64(1), valueFor(sums[MetricRacesFinished], "position", "2"))
	assert.Equal(t, int64(1), valueFor(sums[MetricUnlocks], "class", "Sports"))

	totals, err := s.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), totals[MetricCollisions])
	assert.Equal(t, int64(2), totals[MetricOncomingSpawned])
	assert.Equal(t, int64(1), totals[MetricOncomingRetired])
}

func TestRecorderIgnoresMalformedPayload(t *testing.T) {
	r, s := newTestRecorder(t)
	r.HandleEvent(events.GameEvent{Type: events.EventCollision, Payload: "bogus"})

	totals, err := s.Totals(context.Background())
	require.NoError(t, err)
	assert.Zero(t, totals[MetricCollisions])
}

func TestNewRecorderGlobalMeter(t *testing.T) {
	r, err := NewRecorder(nil)
	require.NoError(t, err)
	r.HandleEvent(events.GameEvent{Type: events.EventOncomingSpawned})
}
