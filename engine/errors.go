package engine

import "errors"

// Menu refusals, shown to the player as a status line
var (
	ErrCarLocked           = errors.New("car class is locked")
	ErrSelectionIncomplete = errors.New("select a car and a city first")
	ErrUnknownTrack        = errors.New("unknown track")
	ErrNotInMenu           = errors.New("selection is only possible in the menu")
)
