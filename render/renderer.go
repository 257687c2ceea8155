// Package render draws engine snapshots on a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/engine"
)

// Renderer owns drawing to one screen; call only from the frame loop
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, theme: DefaultTheme()}
}

// Render draws a full frame for the snapshot and shows it
func (r *Renderer) Render(snap engine.Snapshot, mv MenuView) {
	r.screen.SetStyle(r.theme.Base)
	r.screen.Clear()

	switch snap.State {
	case engine.StateMenu:
		r.drawMenu(snap, mv)
	case engine.StatePlaying:
		r.drawRace(snap, mv)
	case engine.StateFinished:
		r.drawRace(snap, mv)
		r.drawResults(snap)
	}

	r.screen.Show()
}

// Sync redraws the whole screen after a resize
func (r *Renderer) Sync() {
	r.screen.Sync()
}
