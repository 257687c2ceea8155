package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/events"
)

// TestSoundManagerGracefulDegradation verifies cues are no-ops without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)
	played := 0
	sm.play = func(beep.Streamer) { played++ }

	assert.NotPanics(t, func() {
		sm.PlayCrash()
		sm.PlayCountdown()
		sm.PlayGo()
		sm.PlayFinish()
		sm.Cleanup()
	})
	assert.Zero(t, played)
}

// TestSoundManagerInitialization may fail in CI without audio devices; the game runs muted then
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5)
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	assert.NoError(t, sm.Initialize(), "second initialization is a no-op")
	sm.Cleanup()
	assert.NotPanics(t, sm.PlayCrash)
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(0.5)
	var played []beep.Streamer
	sm.play = func(s beep.Streamer) { played = append(played, s) }
	sm.initialized = true

	sm.PlayGo()
	assert.Len(t, played, 1)

	sm.SetMuted(true)
	assert.True(t, sm.Muted())
	sm.PlayGo()
	sm.Play(SoundType(42))
	assert.Len(t, played, 1)

	sm.SetMuted(false)
	sm.Play(SoundType(42))
	assert.Len(t, played, 1, "unknown cue")
	sm.PlayFinish()
	assert.Len(t, played, 2)
}

type recordingPlayer struct {
	sounds []SoundType
}

func (p *recordingPlayer) Play(s SoundType) { p.sounds = append(p.sounds, s) }

func TestRaceCues(t *testing.T) {
	rec := &recordingPlayer{}
	queue := events.NewEventQueue()
	router := events.NewRouter(queue)
	router.Register(NewRaceCues(rec))

	queue.Push(events.GameEvent{Type: events.EventCountdown, Payload: &events.CountdownPayload{Remaining: 2}})
	queue.Push(events.GameEvent{Type: events.EventGreenLight})
	queue.Push(events.GameEvent{Type: events.EventCollision, Payload: &events.CollisionPayload{Kind: component.KindAI}})
	queue.Push(events.GameEvent{Type: events.EventCollision, Payload: &events.CollisionPayload{Kind: component.KindPlayer}})
	queue.Push(events.GameEvent{Type: events.EventOncomingSpawned})
	queue.Push(events.GameEvent{Type: events.EventRaceFinished, Payload: &events.RaceFinishedPayload{}})
	router.DispatchAll()

	assert.Equal(t, []SoundType{SoundCountdown, SoundGo, SoundCrash, SoundFinish}, rec.sounds)
}
