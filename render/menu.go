package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/component"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/progression"
	"github.com/lixenwraith/vi-racer/track"
)

// ClassEntry is one car in the menu
type ClassEntry struct {
	Class      component.ClassID
	Unlocked   bool
	RacesUntil int
}

// CityEntry is one selectable city
type CityEntry struct {
	ID      string
	Key     rune
	Profile track.Profile
}

// MenuView is everything the menu shows beyond the engine snapshot
type MenuView struct {
	Classes     []ClassEntry
	Cities      []CityEntry
	GamesPlayed int
	Status      string // Last refusal or hint
	Muted       bool
}

// NewMenuView reads lock state from the tracker
func NewMenuView(tracker *progression.Tracker, status string, muted bool) MenuView {
	mv := MenuView{
		GamesPlayed: tracker.GamesPlayed(),
		Status:      status,
		Muted:       muted,
	}
	for c := 1; c <= constants.CarClassCount; c++ {
		class := component.ClassID(c)
		mv.Classes = append(mv.Classes, ClassEntry{
			Class:      class,
			Unlocked:   tracker.IsUnlocked(class),
			RacesUntil: tracker.RacesUntil(class),
		})
	}
	for _, id := range track.Cities() {
		mv.Cities = append(mv.Cities, CityEntry{ID: id, Key: rune(id[0]), Profile: track.ProfileFor(id)})
	}
	return mv
}

// CityName is the display name of a city id
func CityName(id string) string {
	switch id {
	case track.NewYork:
		return "New York"
	case track.Bangalore:
		return "Bangalore"
	case "":
		return ""
	default:
		return strings.ToUpper(id[:1]) + id[1:]
	}
}

func (r *Renderer) drawMenu(snap engine.Snapshot, mv MenuView) {
	s := r.screen
	w, _ := s.Size()
	t := r.theme

	drawCentered(s, w/2, 1, "V I - R A C E R", t.Title)
	drawCentered(s, w/2, 2, fmt.Sprintf("Races completed: %d", mv.GamesPlayed), t.Dim)

	x, y := 4, 4
	drawText(s, x, y, "Car (1-3)", t.Title)
	y++
	for _, c := range mv.Classes {
		tune := c.Class.Tuning()
		line := fmt.Sprintf(" %d  %-7s max %3.0f  handling %.1f ", c.Class, tune.Name, tune.PlayerMaxSpeed, tune.PlayerHandling)
		st := t.Base
		switch {
		case !c.Unlocked:
			line += fmt.Sprintf("locked, %d more races", c.RacesUntil)
			st = t.Locked
		case snap.Class == c.Class:
			st = t.Selected
		}
		drawText(s, x, y, line, st)
		y++
	}

	y++
	drawText(s, x, y, "City (n/b/p)", t.Title)
	y++
	for _, c := range mv.Cities {
		line := fmt.Sprintf(" %c  %-10s traffic %-10s turns %-8s difficulty %.1f ",
			c.Key, CityName(c.ID), c.Profile.Traffic, c.Profile.Turns, c.Profile.Difficulty)
		st := t.Base
		if snap.TrackID == c.ID {
			st = t.Selected
		}
		drawText(s, x, y, line, st)
		y++
	}

	y++
	help := "Enter start   arrows/hjkl drive   Esc menu   m mute   q quit"
	if mv.Muted {
		help += "   [muted]"
	}
	drawText(s, x, y, help, t.Dim)
	if mv.Status != "" {
		drawText(s, x, y+2, mv.Status, t.Status)
	}
}

// drawResults is the finish overlay
func (r *Renderer) drawResults(snap engine.Snapshot) {
	if snap.Result == nil {
		return
	}
	s := r.screen
	w, h := s.Size()
	bw, bh := 34, 8
	x, y := drawBox(s, (w-bw)/2, (h-bh)/2, bw, bh, r.theme.Overlay)

	res := snap.Result
	drawText(s, x, y, "FINISHED", r.theme.Overlay.Bold(true))
	drawText(s, x, y+2, fmt.Sprintf("Position   %d/%d", res.FinalPosition, snap.Racers), r.theme.Overlay)
	drawText(s, x, y+3, fmt.Sprintf("Time       %.1fs", res.Elapsed.Seconds()), r.theme.Overlay)
	drawText(s, x, y+4, fmt.Sprintf("Collisions %d", res.Collisions), r.theme.Overlay)
	drawText(s, x, y+5, "Esc: back to menu", r.theme.Overlay.Foreground(tcell.ColorGray))
}
