package constants

import "time"

// Kinematics
const (
	// TimeScale converts speed into track units advanced per tick
	TimeScale = 0.1

	// PlayerAccelRate is the player's base speed increment per tick before handling
	PlayerAccelRate = 2.5

	// AIAccelRate is the AI base speed increment per tick before handling (player rate / 5)
	AIAccelRate = 0.5

	// LaunchBonusSpeed is the speed below which the player gets the launch bonus
	LaunchBonusSpeed = 100.0

	// LaunchBonusFactor multiplies the player's increment as an extra push while launching
	LaunchBonusFactor = 1.5

	// PlayerBrakeRate is the player's speed decrement per tick
	PlayerBrakeRate = 4.0

	// AIBrakeRate is the AI speed decrement per tick
	AIBrakeRate = 1.0

	// AIBrakes makes AI cars brake while damaged instead of accelerating
	// Off: AI cars run full throttle and never brake on their own
	AIBrakes = false
)

// Collision Response
const (
	// CollisionSpeedFactor is the speed multiplier applied on a fresh collision
	CollisionSpeedFactor = 0.3

	// CollisionCooldownTicks is the number of ticks a vehicle ignores further collisions
	// and, for the player, refuses lane changes
	CollisionCooldownTicks = 30

	// DamageFlashDuration is how long after a collision the damage flash is shown
	DamageFlashDuration = 500 * time.Millisecond
)

// Vehicle Footprint
const (
	// VehicleWidth is the lateral size of every vehicle's bounding box
	VehicleWidth = 50.0

	// VehicleHeight is the longitudinal size of every vehicle's bounding box
	VehicleHeight = 30.0

	// CollisionBuffer shrinks each box side inward to forgive near misses
	CollisionBuffer = 5.0
)

// Lane Geometry
const (
	// LaneCount is the number of parallel lanes on every track
	LaneCount = 4

	// LaneOriginX is the lateral position of lane 0
	LaneOriginX = 150.0

	// LaneWidth is the lateral distance between adjacent lanes
	LaneWidth = 150.0

	// PlayerStartLane is the lane the player car starts in
	PlayerStartLane = 2
)

// ClassTuning holds the speed cap and handling multiplier of one car class
type ClassTuning struct {
	Name           string
	AIMaxSpeed     float64
	PlayerMaxSpeed float64
	AIHandling     float64
	PlayerHandling float64
}

// ClassTunings maps car class IDs to their tuning presets
var ClassTunings = map[int]ClassTuning{
	1: {Name: "Basic", AIMaxSpeed: 150, PlayerMaxSpeed: 300, AIHandling: 0.85, PlayerHandling: 1.0},
	2: {Name: "Sports", AIMaxSpeed: 180, PlayerMaxSpeed: 350, AIHandling: 0.92, PlayerHandling: 1.1},
	3: {Name: "Super", AIMaxSpeed: 200, PlayerMaxSpeed: 400, AIHandling: 1.0, PlayerHandling: 1.2},
}

// FallbackTuning applies to any class ID missing from ClassTunings
var FallbackTuning = ClassTuning{Name: "Unknown", AIMaxSpeed: 150, PlayerMaxSpeed: 300, AIHandling: 0.85, PlayerHandling: 1.0}

// CarClassCount is the number of selectable car classes (IDs 1..CarClassCount)
const CarClassCount = 3
