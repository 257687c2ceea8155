// Package progression gates car classes behind completed races
package progression

import (
	"sort"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/constants"
)

// threshold is the completed race count at which a class unlocks
type threshold struct {
	class component.ClassID
	races int
}

var thresholds = []threshold{
	{component.ClassSports, constants.SportsUnlockRaces},
	{component.ClassSuper, constants.SuperUnlockRaces},
}

// Tracker counts completed races and derives unlocked classes
// State lives for the process only
type Tracker struct {
	gamesPlayed int
	unlocked    map[component.ClassID]bool
}

// NewTracker starts with only the basic class unlocked
func NewTracker() *Tracker {
	return &Tracker{
		unlocked: map[component.ClassID]bool{component.ClassBasic: true},
	}
}

// RecordRaceCompleted counts a finished race and returns classes unlocked by it
func (t *Tracker) RecordRaceCompleted() []component.ClassID {
	t.gamesPlayed++

	var fresh []component.ClassID
	for _, th := range thresholds {
		if t.gamesPlayed >= th.races && !t.unlocked[th.class] {
			t.unlocked[th.class] = true
			fresh = append(fresh, th.class)
		}
	}
	return fresh
}

// IsUnlocked reports whether class may be selected
func (t *Tracker) IsUnlocked(class component.ClassID) bool {
	return t.unlocked[class]
}

// GamesPlayed returns the number of completed races
func (t *Tracker) GamesPlayed() int {
	return t.gamesPlayed
}

// Unlocked returns unlocked classes in ascending order
func (t *Tracker) Unlocked() []component.ClassID {
	out := make([]component.ClassID, 0, len(t.unlocked))
	for c := range t.unlocked {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RacesUntil returns how many more races unlock class, 0 when already unlocked or never unlockable
func (t *Tracker) RacesUntil(class component.ClassID) int {
	if t.unlocked[class] {
		return 0
	}
	for _, th := range thresholds {
		if th.class == class {
			return th.races - t.gamesPlayed
		}
	}
	return 0
}
