package component

import (
	"time"

	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/vmath"
)

// Vehicle is the kinematic and damage state of any car in the race
// Forward cars travel toward Position 0 (the finish), oncoming cars travel toward the start
type Vehicle struct {
	ID       int
	Class    ClassID
	Player   bool
	Oncoming bool

	// Kinematics
	Lane         int
	LaneCount    int
	Position     float64 // Along-track coordinate, start line = track length
	Speed        float64 // 0 <= Speed <= MaxSpeed
	Acceleration float64 // Last per-tick increment

	// Tuning, fixed at construction
	MaxSpeed float64
	Handling float64

	// Damage
	Damaged           bool
	CollisionCooldown int       // Ticks until eligible for a new collision
	LastCollision     time.Time // For the damage flash
}

// NewVehicle creates a stationary vehicle in lane 0 with tuning derived from class and control
func NewVehicle(id int, class ClassID, player bool, laneCount int) *Vehicle {
	if laneCount < 1 {
		laneCount = 1
	}
	return &Vehicle{
		ID:        id,
		Class:     class,
		Player:    player,
		LaneCount: laneCount,
		MaxSpeed:  MaxSpeedFor(class, player),
		Handling:  HandlingFor(class, player),
	}
}

// Kind returns the vehicle's race role
func (v *Vehicle) Kind() VehicleKind {
	switch {
	case v.Player:
		return KindPlayer
	case v.Oncoming:
		return KindOncoming
	default:
		return KindAI
	}
}

// Lateral returns the lateral coordinate of the vehicle's lane
func (v *Vehicle) Lateral() float64 {
	return constants.LaneOriginX + float64(v.Lane)*constants.LaneWidth
}

// Bounds implements physics.Body, anchoring the footprint at (lateral, position)
func (v *Vehicle) Bounds() (x, y float64) {
	return v.Lateral(), v.Position
}

// Progress returns the distance covered from the start line
func (v *Vehicle) Progress(trackLength float64) float64 {
	return trackLength - v.Position
}

// Accelerate raises speed toward MaxSpeed by the control-dependent rate scaled by handling
func (v *Vehicle) Accelerate() {
	if v.Speed >= v.MaxSpeed {
		return
	}

	rate := constants.AIAccelRate
	if v.Player {
		rate = constants.PlayerAccelRate
	}
	v.Acceleration = rate * v.Handling
	v.Speed = min(v.Speed+v.Acceleration, v.MaxSpeed)

	// Launch bonus keeps the player's start from feeling sluggish
	if v.Player && v.Speed < constants.LaunchBonusSpeed {
		v.Speed = min(v.Speed+v.Acceleration*constants.LaunchBonusFactor, v.MaxSpeed)
	}
}

// Brake lowers speed toward zero
func (v *Vehicle) Brake() {
	if v.Speed <= 0 {
		return
	}

	rate := constants.AIBrakeRate
	if v.Player {
		rate = constants.PlayerBrakeRate
	}
	v.Speed = vmath.ClampF(v.Speed-rate, 0, v.MaxSpeed)
}

// ChangeLane moves the player one lane in dir (-1 left, +1 right)
// Ignored for AI cars, during collision cooldown and at the road edge
func (v *Vehicle) ChangeLane(dir int) bool {
	if !v.Player || v.CollisionCooldown > 0 {
		return false
	}
	if dir < -1 || dir > 1 || dir == 0 {
		return false
	}
	return v.MoveToLane(v.Lane + dir)
}

// MoveToLane places the vehicle in lane if it exists, used by traffic for AI avoidance
func (v *Vehicle) MoveToLane(lane int) bool {
	if lane < 0 || lane >= v.LaneCount || lane == v.Lane {
		return false
	}
	v.Lane = lane
	return true
}

// RegisterCollision applies the collision penalty once per cooldown window
// Returns false when the vehicle is still recovering from a previous hit
func (v *Vehicle) RegisterCollision(now time.Time) bool {
	if v.CollisionCooldown > 0 {
		return false
	}
	v.Speed *= constants.CollisionSpeedFactor
	v.Damaged = true
	v.CollisionCooldown = constants.CollisionCooldownTicks
	v.LastCollision = now
	return true
}

// Recovering reports whether the damage flash is still showing at now
func (v *Vehicle) Recovering(now time.Time) bool {
	if v.LastCollision.IsZero() {
		return false
	}
	return now.Sub(v.LastCollision) < constants.DamageFlashDuration
}

// Tick advances the vehicle one simulation step
func (v *Vehicle) Tick() {
	step := v.Speed * constants.TimeScale
	if v.Oncoming {
		v.Position += step
	} else {
		v.Position -= step
	}

	if v.CollisionCooldown > 0 {
		v.CollisionCooldown--
		if v.CollisionCooldown == 0 {
			v.Damaged = false
		}
	}

	// AI policy: full throttle; with AIBrakes set, brake while recovering from a hit
	if !v.Player && !v.Oncoming {
		if constants.AIBrakes && v.Damaged {
			v.Brake()
			return
		}
		v.Accelerate()
	}
}

// SetCruise fixes the speed of an oncoming car
// The oncoming band may exceed the class cap, so the cap is raised to the cruise speed
func (v *Vehicle) SetCruise(speed float64) {
	v.Speed = max(speed, 0)
	v.MaxSpeed = max(v.MaxSpeed, v.Speed)
}
