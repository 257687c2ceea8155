package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/events"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/progression"
	"github.com/lixenwraith/vi-racer/track"
	"github.com/lixenwraith/vi-racer/vmath"
)

// PlayerID is the vehicle ID reserved for the player; traffic IDs start after it
const PlayerID = 0

// Config sizes a race
type Config struct {
	TrackLength float64
	AICars      int
}

// DefaultConfig returns the standard race: full length, four opponents
func DefaultConfig() Config {
	return Config{
		TrackLength: constants.DefaultTrackLength,
		AICars:      constants.DefaultAICars,
	}
}

// Engine owns the race lifecycle: selections, countdown, per-tick simulation and ranking
// Not safe for concurrent use; every call happens on the frame loop goroutine
type Engine struct {
	cfg     Config
	tracker *progression.Tracker
	rng     vmath.Rand
	queue   *events.EventQueue

	state   GameState
	class   component.ClassID
	trackID string

	// Active race, nil in the menu
	player *component.Vehicle
	track  *track.Track

	position      int
	countdown     int
	nextCountdown time.Time
	greenAt       time.Time
	collisions    int
	result        *Result

	// Pending intents for the next tick, at most one of each kind
	throttle Intent
	steer    Intent
}

// New creates an engine in the menu state
func New(cfg Config, tracker *progression.Tracker, rng vmath.Rand) *Engine {
	if cfg.TrackLength <= 0 {
		cfg.TrackLength = constants.DefaultTrackLength
	}
	if cfg.AICars < 0 {
		cfg.AICars = 0
	}
	if tracker == nil {
		tracker = progression.NewTracker()
	}
	return &Engine{
		cfg:     cfg,
		tracker: tracker,
		rng:     rng,
		queue:   events.NewEventQueue(),
		state:   StateMenu,
	}
}

// Events returns the queue the engine and its traffic push to; drained by the frame loop
func (e *Engine) Events() *events.EventQueue {
	return e.queue
}

// Tracker returns the unlock tracker backing car selection
func (e *Engine) Tracker() *progression.Tracker {
	return e.tracker
}

// State returns the current lifecycle state
func (e *Engine) State() GameState {
	return e.state
}

// Track returns the active track, nil in the menu
func (e *Engine) Track() *track.Track {
	return e.track
}

// Player returns the player vehicle, nil in the menu
func (e *Engine) Player() *component.Vehicle {
	return e.player
}

// SelectCarClass chooses the player's car for the next race
func (e *Engine) SelectCarClass(class component.ClassID) error {
	if e.state != StateMenu {
		return ErrNotInMenu
	}
	if !e.tracker.IsUnlocked(class) {
		if n := e.tracker.RacesUntil(class); n > 0 {
			return fmt.Errorf("%w: %s needs %d more races", ErrCarLocked, class, n)
		}
		return ErrCarLocked
	}
	e.class = class
	return nil
}

// SelectTrack chooses the city for the next race; unknown cities race on the default profile
func (e *Engine) SelectTrack(id string) error {
	if e.state != StateMenu {
		return ErrNotInMenu
	}
	if id == "" {
		return ErrUnknownTrack
	}
	e.trackID = id
	return nil
}

// StartRace builds a fresh player and track and begins the countdown
func (e *Engine) StartRace(now time.Time) error {
	if e.state != StateMenu {
		return ErrNotInMenu
	}
	if e.class == 0 || e.trackID == "" {
		return ErrSelectionIncomplete
	}

	e.track = track.New(e.trackID, e.cfg.TrackLength, e.cfg.AICars, PlayerID+1, e.rng, e.queue)
	e.player = component.NewVehicle(PlayerID, e.class, true, e.track.LaneCount)
	e.player.Lane = constants.PlayerStartLane
	e.player.Position = e.track.Length

	e.position = 1
	e.countdown = constants.CountdownStart
	e.nextCountdown = now.Add(constants.CountdownStepInterval)
	e.greenAt = time.Time{}
	e.collisions = 0
	e.result = nil
	e.clearIntents()
	e.transition(StatePlaying)

	e.emit(now, events.EventRaceStarted, &events.RaceStartedPayload{
		Class:   e.class,
		TrackID: e.track.ID,
		Length:  e.track.Length,
	})
	e.emit(now, events.EventCountdown, &events.CountdownPayload{Remaining: e.countdown})
	return nil
}

// Command records a driving intent for the next tick
// Returns false when control is not live (menu, finished or counting down)
func (e *Engine) Command(intent Intent) bool {
	if e.state != StatePlaying || e.countdown > 0 {
		return false
	}
	switch {
	case intent.IsThrottle():
		e.throttle = intent
	case intent.IsSteer():
		e.steer = intent
	default:
		return false
	}
	return true
}

// Tick advances the race by one frame at now and returns the resulting snapshot
func (e *Engine) Tick(now time.Time) Snapshot {
	if e.state == StatePlaying {
		if e.countdown > 0 {
			e.stepCountdown(now)
		} else {
			e.simulate(now)
		}
	}
	e.clearIntents()
	return e.Snapshot(now)
}

// Abort drops the race and returns to the menu; selections are kept
func (e *Engine) Abort(now time.Time) {
	if e.state == StateMenu {
		return
	}
	if e.state == StatePlaying {
		e.emit(now, events.EventRaceAborted, nil)
	}
	e.player = nil
	e.track = nil
	e.position = 0
	e.countdown = 0
	e.result = nil
	e.clearIntents()
	e.transition(StateMenu)
}

// RankPosition returns 1 + the number of AI cars strictly ahead of the player
func RankPosition(player float64, ai []float64) int {
	pos := 1
	for _, p := range ai {
		if p > player {
			pos++
		}
	}
	return pos
}

func (e *Engine) stepCountdown(now time.Time) {
	for e.countdown > 0 && !now.Before(e.nextCountdown) {
		e.countdown--
		e.nextCountdown = e.nextCountdown.Add(constants.CountdownStepInterval)
		if e.countdown > 0 {
			e.emit(now, events.EventCountdown, &events.CountdownPayload{Remaining: e.countdown})
			continue
		}
		e.greenAt = now
		e.emit(now, events.EventGreenLight, nil)
	}
}

func (e *Engine) simulate(now time.Time) {
	p := e.player

	switch e.throttle {
	case IntentAccelerate:
		p.Accelerate()
	case IntentBrake:
		p.Brake()
	}

	if e.steer != IntentNone {
		dir := 1
		if e.steer == IntentLaneLeft {
			dir = -1
		}
		from := p.Lane
		if p.ChangeLane(dir) {
			e.emit(now, events.EventLaneChange, &events.LaneChangePayload{
				VehicleID: p.ID,
				Kind:      component.KindPlayer,
				From:      from,
				To:        p.Lane,
			})
		}
	}

	p.Tick()
	e.track.Traffic.Update(now, p.Position)
	e.checkPlayerCollisions(now)

	ai := e.track.Traffic.AICars()
	progress := make([]float64, len(ai))
	for i, car := range ai {
		progress[i] = car.Progress(e.track.Length)
	}
	e.position = RankPosition(p.Progress(e.track.Length), progress)

	if p.Position <= 0 {
		e.finish(now)
	}
}

func (e *Engine) checkPlayerCollisions(now time.Time) {
	p := e.player
	for _, group := range [][]*component.Vehicle{e.track.Traffic.AICars(), e.track.Traffic.OncomingCars()} {
		for _, car := range group {
			if !physics.Overlaps(p, car) || !p.RegisterCollision(now) {
				continue
			}
			e.collisions++
			e.emit(now, events.EventCollision, &events.CollisionPayload{
				VehicleID: p.ID,
				Kind:      component.KindPlayer,
				Speed:     p.Speed,
				Lane:      p.Lane,
			})
		}
	}
}

func (e *Engine) finish(now time.Time) {
	e.result = &Result{
		FinalPosition: e.position,
		Elapsed:       now.Sub(e.greenAt),
		Collisions:    e.collisions,
	}
	e.transition(StateFinished)

	unlocked := e.tracker.RecordRaceCompleted()
	e.emit(now, events.EventRaceFinished, &events.RaceFinishedPayload{
		FinalPosition: e.result.FinalPosition,
		Elapsed:       e.result.Elapsed,
		Collisions:    e.result.Collisions,
	})
	for _, class := range unlocked {
		e.emit(now, events.EventCarUnlocked, &events.CarUnlockedPayload{
			Class:       class,
			GamesPlayed: e.tracker.GamesPlayed(),
		})
	}
}

func (e *Engine) transition(to GameState) {
	if !CanTransition(e.state, to) {
		panic(fmt.Sprintf("invalid race state transition %s -> %s", e.state, to))
	}
	e.state = to
}

func (e *Engine) clearIntents() {
	e.throttle = IntentNone
	e.steer = IntentNone
}

func (e *Engine) emit(now time.Time, t events.EventType, payload any) {
	e.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: now})
}
