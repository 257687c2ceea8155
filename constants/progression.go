package constants

// Unlock Thresholds
const (
	// SportsUnlockRaces is the completed race count that unlocks class 2
	SportsUnlockRaces = 3

	// SuperUnlockRaces is the completed race count that unlocks class 3
	SuperUnlockRaces = 6
)
