package events

import (
	"time"
)

// EventType represents the type of race event
type EventType int

const (
	// EventRaceStarted signals Menu → Playing
	// Trigger: Engine.StartRace | Payload: *RaceStartedPayload
	EventRaceStarted EventType = iota

	// EventCountdown signals a countdown step
	// Trigger: Engine.Tick while counting down | Payload: *CountdownPayload
	EventCountdown

	// EventGreenLight signals the countdown reached zero and control is live
	// Trigger: Engine.Tick | Payload: nil
	EventGreenLight

	// EventCollision signals a collision that took effect on one vehicle
	// Trigger: TrafficSystem (AI pairs), Engine (player) | Payload: *CollisionPayload
	EventCollision

	// EventLaneChange signals a vehicle switched lanes
	// Trigger: TrafficSystem (AI avoidance), Engine (player steer) | Payload: *LaneChangePayload
	EventLaneChange

	// EventOncomingSpawned signals a new oncoming vehicle
	// Trigger: TrafficSystem.MaybeSpawnOncoming | Payload: *VehiclePayload
	EventOncomingSpawned

	// EventOncomingRetired signals an oncoming vehicle left the relevant range
	// Trigger: TrafficSystem.RetireOffRange | Payload: *VehiclePayload
	EventOncomingRetired

	// EventRaceFinished signals Playing → Finished
	// Trigger: Engine.Tick on crossing the finish | Payload: *RaceFinishedPayload
	EventRaceFinished

	// EventCarUnlocked signals a car class became selectable
	// Trigger: Engine on finish, after the unlock tracker records the race | Payload: *CarUnlockedPayload
	EventCarUnlocked

	// EventRaceAborted signals the race was dropped back to the menu
	// Trigger: Engine.Abort | Payload: nil
	EventRaceAborted
)

var eventNames = map[EventType]string{
	EventRaceStarted:     "RaceStarted",
	EventCountdown:       "Countdown",
	EventGreenLight:      "GreenLight",
	EventCollision:       "Collision",
	EventLaneChange:      "LaneChange",
	EventOncomingSpawned: "OncomingSpawned",
	EventOncomingRetired: "OncomingRetired",
	EventRaceFinished:    "RaceFinished",
	EventCarUnlocked:     "CarUnlocked",
	EventRaceAborted:     "RaceAborted",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single race event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
