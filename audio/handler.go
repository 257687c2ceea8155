package audio

import (
	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/events"
)

// CuePlayer is the subset of SoundManager the race handler drives
type CuePlayer interface {
	Play(sound SoundType)
}

// RaceCues maps race events to sound cues
type RaceCues struct {
	player CuePlayer
}

func NewRaceCues(player CuePlayer) *RaceCues {
	return &RaceCues{player: player}
}

func (h *RaceCues) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCountdown,
		events.EventGreenLight,
		events.EventCollision,
		events.EventRaceFinished,
	}
}

func (h *RaceCues) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventCountdown:
		h.player.Play(SoundCountdown)
	case events.EventGreenLight:
		h.player.Play(SoundGo)
	case events.EventCollision:
		// Only the player's own hits are audible
		if p, ok := ev.Payload.(*events.CollisionPayload); ok && p.Kind == component.KindPlayer {
			h.player.Play(SoundCrash)
		}
	case events.EventRaceFinished:
		h.player.Play(SoundFinish)
	}
}
