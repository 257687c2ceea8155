package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/engine"
)

// LaneColumns is the terminal width of one lane
const LaneColumns = 7

// hudRows is the number of rows reserved above the road
const hudRows = 1

// viewport maps track positions around the player to screen rows
type viewport struct {
	top  float64 // Position shown at the first road row (furthest ahead)
	rows int
}

func newViewport(playerPos float64, rows int) viewport {
	return viewport{
		top:  playerPos - (constants.ViewportHeight - constants.PlayerScreenOffset),
		rows: rows,
	}
}

// row returns the screen row for pos and whether it is on screen
func (v viewport) row(pos float64) (int, bool) {
	rel := pos - v.top
	if rel < 0 || rel >= constants.ViewportHeight || v.rows <= 0 {
		return 0, false
	}
	return hudRows + int(rel/constants.ViewportHeight*float64(v.rows)), true
}

func roadOrigin(width int) int {
	return max((width-constants.LaneCount*LaneColumns)/2, 0)
}

func laneColumn(roadX, lane int) int {
	return roadX + lane*LaneColumns + (LaneColumns-3)/2
}

func (r *Renderer) drawRace(snap engine.Snapshot, mv MenuView) {
	s := r.screen
	w, h := s.Size()
	t := r.theme

	roadX := roadOrigin(w)
	roadW := constants.LaneCount * LaneColumns
	rows := h - hudRows
	vp := newViewport(snap.PlayerPos, rows)

	fillRect(s, 0, hudRows, w, rows, t.Shoulder)
	fillRect(s, roadX, hudRows, roadW, rows, t.Road)

	// Dashed lane marks scroll with the player
	scroll := int(snap.PlayerPos / (constants.ViewportHeight / float64(max(rows, 1))))
	for lane := 1; lane < constants.LaneCount; lane++ {
		col := roadX + lane*LaneColumns
		for row := hudRows; row < h; row++ {
			if (row+scroll)%2 == 0 {
				s.SetContent(col, row, '¦', nil, t.LaneMark)
			}
		}
	}

	if row, ok := vp.row(0); snap.FinishVisible && ok {
		for col := roadX; col < roadX+roadW; col++ {
			ch := '▀'
			if col%2 == 0 {
				ch = '▄'
			}
			s.SetContent(col, row, ch, nil, t.Finish)
		}
	}

	for _, v := range snap.Oncoming {
		r.drawVehicle(vp, roadX, v.Lane, v.Position, "\\V/", t.Oncoming)
	}
	for _, v := range snap.AI {
		st := t.AI
		if v.Damaged {
			st = t.Damaged
		}
		r.drawVehicle(vp, roadX, v.Lane, v.Position, "[#]", st)
	}

	playerStyle := t.Player
	if snap.Flash || snap.Damaged {
		playerStyle = t.Damaged
	}
	r.drawVehicle(vp, roadX, snap.PlayerLane, snap.PlayerPos, "/^\\", playerStyle)

	r.drawHUD(snap, mv)

	if snap.State == engine.StatePlaying && snap.Countdown > 0 {
		text := fmt.Sprintf("  %d  ", snap.Countdown)
		drawCentered(s, w/2, h/2, text, t.Countdown.Reverse(true))
	}
}

func (r *Renderer) drawVehicle(vp viewport, roadX, lane int, pos float64, glyph string, st tcell.Style) {
	row, ok := vp.row(pos)
	if !ok || lane < 0 || lane >= constants.LaneCount {
		return
	}
	drawText(r.screen, laneColumn(roadX, lane), row, glyph, st)
}

func (r *Renderer) drawHUD(snap engine.Snapshot, mv MenuView) {
	s := r.screen
	w, _ := s.Size()
	fillRect(s, 0, 0, w, hudRows, r.theme.HUD)

	hud := fmt.Sprintf(" Speed %3d  Dist %6.1f km  Pos %s  %s  %s",
		snap.Speed, snap.Distance, snap.PositionLabel(), CityName(snap.TrackID), snap.Class)
	if mv.Muted {
		hud += "  [muted]"
	}
	drawText(s, 0, 0, hud, r.theme.HUD)
}
