package component

import "github.com/lixenwraith/vi-racer/constants"

// ClassID selects a tuning preset
type ClassID int

const (
	ClassBasic  ClassID = 1
	ClassSports ClassID = 2
	ClassSuper  ClassID = 3
)

// Tuning returns the preset for the class, unknown IDs get the fallback preset
func (c ClassID) Tuning() constants.ClassTuning {
	if t, ok := constants.ClassTunings[int(c)]; ok {
		return t
	}
	return constants.FallbackTuning
}

func (c ClassID) String() string {
	return c.Tuning().Name
}

// MaxSpeedFor returns the speed cap of a class for player or AI control
func MaxSpeedFor(c ClassID, player bool) float64 {
	t := c.Tuning()
	if player {
		return t.PlayerMaxSpeed
	}
	return t.AIMaxSpeed
}

// HandlingFor returns the acceleration multiplier of a class for player or AI control
func HandlingFor(c ClassID, player bool) float64 {
	t := c.Tuning()
	if player {
		return t.PlayerHandling
	}
	return t.AIHandling
}

// VehicleKind is the role of a vehicle in the race
type VehicleKind uint8

const (
	KindPlayer VehicleKind = iota
	KindAI
	KindOncoming
)

func (k VehicleKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindAI:
		return "AI"
	case KindOncoming:
		return "Oncoming"
	default:
		return "Unknown"
	}
}
