package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/track"
)

// Result is the outcome of a finished race
type Result struct {
	FinalPosition int
	Elapsed       time.Duration // Green light to finish
	Collisions    int           // Player collisions that took effect
}

// VehicleView is the render-facing copy of a vehicle
type VehicleView struct {
	ID       int
	Kind     component.VehicleKind
	Class    component.ClassID
	Lane     int
	Position float64
	Speed    float64
	Damaged  bool
}

// Snapshot is a read-only view of the engine after a tick
// Slices are fresh copies, safe to keep across ticks
type Snapshot struct {
	State     GameState
	Countdown int

	// Menu selections, zero until chosen
	Class   component.ClassID
	TrackID string

	// Race view, zero in the menu
	TrackLength   float64
	Profile       track.Profile
	Speed         int     // Rounded player speed
	Distance      float64 // Covered distance in display units
	Position      int
	Racers        int
	PlayerLane    int
	PlayerPos     float64
	Damaged       bool
	Flash         bool    // Damage flash window active
	FinishVisible bool
	AI            []VehicleView
	Oncoming      []VehicleView

	Result *Result // Set once Finished
}

// PositionLabel renders the race position as "n/total"
func (s Snapshot) PositionLabel() string {
	return fmt.Sprintf("%d/%d", s.Position, s.Racers)
}

// Snapshot builds the current view without advancing the race
func (e *Engine) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		State:     e.state,
		Countdown: e.countdown,
		Class:     e.class,
		TrackID:   e.trackID,
		Position:  e.position,
		Result:    e.result,
	}
	if e.player == nil || e.track == nil {
		return snap
	}

	p := e.player
	snap.TrackLength = e.track.Length
	snap.Profile = e.track.Profile
	snap.Speed = int(math.Round(p.Speed))
	snap.Distance = p.Progress(e.track.Length) / constants.DistanceDisplayDivisor
	snap.PlayerLane = p.Lane
	snap.PlayerPos = p.Position
	snap.Damaged = p.Damaged
	snap.Flash = p.Recovering(now)
	snap.FinishVisible = e.track.FinishVisible(p.Position)

	ai := e.track.Traffic.AICars()
	snap.Racers = 1 + len(ai)
	snap.AI = viewsOf(ai)
	snap.Oncoming = viewsOf(e.track.Traffic.OncomingCars())
	return snap
}

func viewsOf(cars []*component.Vehicle) []VehicleView {
	out := make([]VehicleView, 0, len(cars))
	for _, c := range cars {
		out = append(out, VehicleView{
			ID:       c.ID,
			Kind:     c.Kind(),
			Class:    c.Class,
			Lane:     c.Lane,
			Position: c.Position,
			Speed:    c.Speed,
			Damaged:  c.Damaged,
		})
	}
	return out
}
