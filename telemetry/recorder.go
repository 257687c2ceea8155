// Package telemetry counts race activity with OpenTelemetry instruments
package telemetry

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/vi-racer/events"
)

// Instrument names
const (
	MetricCollisions      = "race.collisions"
	MetricOncomingSpawned = "traffic.oncoming.spawned"
	MetricOncomingRetired = "traffic.oncoming.retired"
	MetricLaneChanges     = "traffic.lane_changes"
	MetricRacesFinished   = "race.finished"
	MetricUnlocks         = "progression.unlocks"
)

// Recorder turns race events into counter increments
type Recorder struct {
	collisions  metric.Int64Counter
	spawned     metric.Int64Counter
	retired     metric.Int64Counter
	laneChanges metric.Int64Counter
	finished    metric.Int64Counter
	unlocks     metric.Int64Counter
}

// NewRecorder creates the instruments on m, nil uses the global meter provider
func NewRecorder(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = meter()
	}

	r := &Recorder{}
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&r.collisions, MetricCollisions, "Collisions that took effect, by vehicle kind"},
		{&r.spawned, MetricOncomingSpawned, "Oncoming vehicles spawned"},
		{&r.retired, MetricOncomingRetired, "Oncoming vehicles retired out of range"},
		{&r.laneChanges, MetricLaneChanges, "Lane changes, by vehicle kind"},
		{&r.finished, MetricRacesFinished, "Races finished, by final position"},
		{&r.unlocks, MetricUnlocks, "Car classes unlocked"},
	}
	for _, c := range counters {
		counter, err := m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
		*c.dst = counter
	}
	return r, nil
}

func (r *Recorder) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCollision,
		events.EventOncomingSpawned,
		events.EventOncomingRetired,
		events.EventLaneChange,
		events.EventRaceFinished,
		events.EventCarUnlocked,
	}
}

func (r *Recorder) HandleEvent(ev events.GameEvent) {
	ctx := context.Background()
	switch ev.Type {
	case events.EventCollision:
		if p, ok := ev.Payload.(*events.CollisionPayload); ok {
			r.collisions.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", p.Kind.String())))
		}
	case events.EventOncomingSpawned:
		r.spawned.Add(ctx, 1)
	case events.EventOncomingRetired:
		r.retired.Add(ctx, 1)
	case events.EventLaneChange:
		if p, ok := ev.Payload.(*events.LaneChangePayload); ok {
			r.laneChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", p.Kind.String())))
		}
	case events.EventRaceFinished:
		if p, ok := ev.Payload.(*events.RaceFinishedPayload); ok {
			r.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("position", strconv.Itoa(p.FinalPosition))))
		}
	case events.EventCarUnlocked:
		if p, ok := ev.Payload.(*events.CarUnlockedPayload); ok {
			r.unlocks.Add(ctx, 1, metric.WithAttributes(attribute.String("class", p.Class.String())))
		}
	}
}
