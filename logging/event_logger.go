package logging

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/events"
)

// EventLogger records race events in the debug log
type EventLogger struct {
	log zerolog.Logger
}

func NewEventLogger(log zerolog.Logger) *EventLogger {
	return &EventLogger{log: log.With().Str("component", "race").Logger()}
}

func (l *EventLogger) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventRaceStarted,
		events.EventCountdown,
		events.EventGreenLight,
		events.EventCollision,
		events.EventLaneChange,
		events.EventOncomingSpawned,
		events.EventOncomingRetired,
		events.EventRaceFinished,
		events.EventCarUnlocked,
		events.EventRaceAborted,
	}
}

func (l *EventLogger) HandleEvent(ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.RaceStartedPayload:
		l.log.Info().
			Stringer("class", p.Class).
			Str("track", p.TrackID).
			Float64("length", p.Length).
			Msg("Race started")

	case *events.CountdownPayload:
		l.log.Debug().Int("remaining", p.Remaining).Msg("Countdown")

	case *events.CollisionPayload:
		msg := "Player collision"
		if p.Kind != component.KindPlayer {
			msg = p.Kind.String() + " car collision"
		}
		l.log.Info().
			Int("vehicle", p.VehicleID).
			Stringer("kind", p.Kind).
			Float64("speed", p.Speed).
			Int("lane", p.Lane).
			Msg(msg)

	case *events.LaneChangePayload:
		l.log.Debug().
			Int("vehicle", p.VehicleID).
			Stringer("kind", p.Kind).
			Int("from", p.From).
			Int("to", p.To).
			Msg("Lane change")

	case *events.VehiclePayload:
		verb := "Oncoming spawned"
		if ev.Type == events.EventOncomingRetired {
			verb = "Oncoming retired"
		}
		l.log.Debug().
			Int("vehicle", p.VehicleID).
			Stringer("class", p.Class).
			Int("lane", p.Lane).
			Float64("speed", p.Speed).
			Msg(verb)

	case *events.RaceFinishedPayload:
		l.log.Info().
			Int("position", p.FinalPosition).
			Dur("elapsed", p.Elapsed).
			Int("collisions", p.Collisions).
			Msg("Race finished")

	case *events.CarUnlockedPayload:
		l.log.Info().
			Stringer("class", p.Class).
			Int("gamesPlayed", p.GamesPlayed).
			Msg("Car unlocked")

	default:
		l.log.Info().Stringer("event", ev.Type).Msg("Race event")
	}
}
