package constants

import "time"

// Race Defaults
const (
	// DefaultTrackLength is the race distance in track units
	DefaultTrackLength = 100000.0

	// DefaultAICars is the number of AI opponents per race
	DefaultAICars = 4

	// DistanceDisplayDivisor converts track units into displayed distance
	DistanceDisplayDivisor = 100.0
)

// Oncoming Traffic
const (
	// OncomingSpawnInterval is the minimum time between oncoming spawns
	OncomingSpawnInterval = 3000 * time.Millisecond

	// OncomingMinSpeed is the lower bound of the oncoming speed band
	OncomingMinSpeed = 150.0

	// OncomingSpeedBand is the width of the oncoming speed band (150..200)
	OncomingSpeedBand = 50.0

	// OncomingSpawnAhead is how far ahead of the player oncoming cars appear (above the viewport)
	OncomingSpawnAhead = 800.0

	// OncomingRetireBehind is how far behind the player an oncoming car is dropped
	OncomingRetireBehind = 300.0
)

// AI Lane Policy
const (
	// OncomingThreatDistance is the longitudinal distance at which an AI car reacts to oncoming traffic in its lane
	OncomingThreatDistance = 300.0

	// LaneOccupiedDistance is the longitudinal distance at which a lane counts as occupied
	LaneOccupiedDistance = 200.0
)

// Viewport
const (
	// ViewportHeight is the longitudinal span of track visible around the player
	ViewportHeight = 800.0

	// PlayerScreenOffset is the distance of the player from the bottom of the viewport
	PlayerScreenOffset = 100.0
)
