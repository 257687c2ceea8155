package track

import (
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/events"
	"github.com/lixenwraith/vi-racer/systems"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Profile describes a city's driving conditions, shown in the menu and HUD only
type Profile struct {
	Traffic    string
	Turns      string
	Weather    string
	Difficulty float64
}

// City IDs with a dedicated profile, anything else races on DefaultProfile
const (
	NewYork   = "newyork"
	Bangalore = "bangalore"
	Paris     = "paris"
)

var profiles = map[string]Profile{
	NewYork:   {Traffic: "heavy", Turns: "moderate", Weather: "clear", Difficulty: 0.8},
	Bangalore: {Traffic: "very heavy", Turns: "many", Weather: "clear", Difficulty: 1.0},
}

// DefaultProfile applies to every city without its own entry
var DefaultProfile = Profile{Traffic: "moderate", Turns: "few", Weather: "clear", Difficulty: 0.7}

// ProfileFor returns the city's profile, falling back to DefaultProfile
func ProfileFor(id string) Profile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return DefaultProfile
}

// Cities lists the selectable city IDs in menu order
func Cities() []string {
	return []string{NewYork, Bangalore, Paris}
}

// Track is one race course: geometry, city profile and its traffic
type Track struct {
	ID         string
	Length     float64
	LaneCount  int
	Profile    Profile
	Background string // Asset ID handed to presentation

	Traffic *systems.TrafficSystem
}

// New builds a track with aiCars opponents on the start line
// Vehicle IDs below firstID are left for the caller (the player)
func New(id string, length float64, aiCars int, firstID int, rng vmath.Rand, queue *events.EventQueue) *Track {
	if length <= 0 {
		length = constants.DefaultTrackLength
	}
	if aiCars < 0 {
		aiCars = 0
	}

	traffic := systems.NewTrafficSystem(systems.TrafficConfig{
		TrackLength: length,
		LaneCount:   constants.LaneCount,
		FirstID:     firstID,
	}, rng, queue)
	traffic.SpawnAICars(aiCars)

	return &Track{
		ID:         id,
		Length:     length,
		LaneCount:  constants.LaneCount,
		Profile:    ProfileFor(id),
		Background: "assets/" + id + ".svg",
		Traffic:    traffic,
	}
}

// FinishVisible reports whether the finish line falls inside the viewport around playerPos
func (t *Track) FinishVisible(playerPos float64) bool {
	return playerPos-constants.ViewportHeight+constants.PlayerScreenOffset <= 0
}
