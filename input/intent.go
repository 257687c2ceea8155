package input

import (
	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/engine"
)

// IntentType discriminates front end actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentEscape     // ESC: abort race, back to menu
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Menu
	IntentSelectClass // 1, 2, 3
	IntentSelectCity  // n, b, p
	IntentStart       // Enter

	// Race
	IntentDrive // arrows, h/j/k/l
)

// Intent is a decoded key press
type Intent struct {
	Type  IntentType
	Drive engine.Intent     // For IntentDrive
	Class component.ClassID // For IntentSelectClass
	City  string            // For IntentSelectCity
}
