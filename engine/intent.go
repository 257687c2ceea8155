package engine

// Intent is a discrete driving command from the presentation layer
type Intent uint8

const (
	IntentNone Intent = iota
	IntentAccelerate
	IntentBrake
	IntentLaneLeft
	IntentLaneRight
)

func (i Intent) String() string {
	switch i {
	case IntentAccelerate:
		return "Accelerate"
	case IntentBrake:
		return "Brake"
	case IntentLaneLeft:
		return "LaneLeft"
	case IntentLaneRight:
		return "LaneRight"
	default:
		return "None"
	}
}

// IsThrottle reports accelerate or brake
func (i Intent) IsThrottle() bool {
	return i == IntentAccelerate || i == IntentBrake
}

// IsSteer reports a lane change request
func (i Intent) IsSteer() bool {
	return i == IntentLaneLeft || i == IntentLaneRight
}
