package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// CountdownStepInterval is the real time between countdown numbers
	CountdownStepInterval = 1 * time.Second

	// CountdownStart is the first number shown before the green light
	CountdownStart = 3
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Input
const (
	// ThrottleHoldWindow keeps a throttle key applied between terminal key repeats,
	// terminals report presses only
	ThrottleHoldWindow = 150 * time.Millisecond
)
