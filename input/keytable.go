package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/track"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

func drive(i engine.Intent) Intent { return Intent{Type: IntentDrive, Drive: i} }

func class(c component.ClassID) Intent { return Intent{Type: IntentSelectClass, Class: c} }

func city(id string) Intent { return Intent{Type: IntentSelectCity, City: id} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentEscape},
			tcell.KeyEnter:  {Type: IntentStart},
			tcell.KeyUp:     drive(engine.IntentAccelerate),
			tcell.KeyDown:   drive(engine.IntentBrake),
			tcell.KeyLeft:   drive(engine.IntentLaneLeft),
			tcell.KeyRight:  drive(engine.IntentLaneRight),
		},

		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'm': {Type: IntentToggleMute},

			'1': class(component.ClassBasic),
			'2': class(component.ClassSports),
			'3': class(component.ClassSuper),

			'n': city(track.NewYork),
			'b': city(track.Bangalore),
			'p': city(track.Paris),

			'k': drive(engine.IntentAccelerate),
			'j': drive(engine.IntentBrake),
			'h': drive(engine.IntentLaneLeft),
			'l': drive(engine.IntentLaneRight),
		},
	}
}

var defaultTable = DefaultKeyTable()

// Map decodes a key with the default bindings
func Map(ev *tcell.EventKey) Intent {
	return defaultTable.Map(ev)
}

// Map decodes a key; unbound keys give IntentNone
func (kt *KeyTable) Map(ev *tcell.EventKey) Intent {
	if ev == nil {
		return Intent{}
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Translate decodes any terminal event
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Map(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	default:
		return Intent{}
	}
}
