package events

import (
	"time"

	"github.com/lixenwraith/vi-racer/component"
)

// RaceStartedPayload describes the race that just left the menu
type RaceStartedPayload struct {
	Class   component.ClassID
	TrackID string
	Length  float64
}

// CountdownPayload carries the number now displayed (0 is never sent, see EventGreenLight)
type CountdownPayload struct {
	Remaining int
}

// CollisionPayload describes one vehicle's collision response
type CollisionPayload struct {
	VehicleID int
	Kind      component.VehicleKind
	Speed     float64 // Speed after the collision penalty
	Lane      int
}

// LaneChangePayload describes a completed lane change
type LaneChangePayload struct {
	VehicleID int
	Kind      component.VehicleKind
	From      int
	To        int
}

// VehiclePayload identifies a traffic vehicle
type VehiclePayload struct {
	VehicleID int
	Class     component.ClassID
	Lane      int
	Speed     float64
}

// RaceFinishedPayload is the final result handed to presentation
type RaceFinishedPayload struct {
	FinalPosition int
	Elapsed       time.Duration
	Collisions    int
}

// CarUnlockedPayload names a newly unlocked class
type CarUnlockedPayload struct {
	Class       component.ClassID
	GamesPlayed int
}
