package render

import "github.com/gdamore/tcell/v2"

// Theme holds every style the renderer draws with
type Theme struct {
	Base      tcell.Style
	Title     tcell.Style
	Dim       tcell.Style
	Selected  tcell.Style
	Locked    tcell.Style
	Status    tcell.Style
	HUD       tcell.Style
	Road      tcell.Style
	LaneMark  tcell.Style
	Shoulder  tcell.Style
	Player    tcell.Style
	Damaged   tcell.Style
	AI        tcell.Style
	Oncoming  tcell.Style
	Finish    tcell.Style
	Countdown tcell.Style
	Overlay   tcell.Style
}

// DefaultTheme is a dark asphalt palette
func DefaultTheme() Theme {
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	road := base.Background(tcell.ColorDarkSlateGray)
	return Theme{
		Base:      base,
		Title:     base.Foreground(tcell.ColorYellow).Bold(true),
		Dim:       base.Foreground(tcell.ColorGray),
		Selected:  base.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
		Locked:    base.Foreground(tcell.ColorDarkGray),
		Status:    base.Foreground(tcell.ColorOrangeRed),
		HUD:       base.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		Road:      road,
		LaneMark:  road.Foreground(tcell.ColorWhite),
		Shoulder:  base.Background(tcell.ColorDarkGreen),
		Player:    road.Foreground(tcell.ColorAqua).Bold(true),
		Damaged:   road.Foreground(tcell.ColorRed).Bold(true),
		AI:        road.Foreground(tcell.ColorYellow),
		Oncoming:  road.Foreground(tcell.ColorOrange),
		Finish:    road.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		Countdown: base.Foreground(tcell.ColorRed).Bold(true),
		Overlay:   base.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue),
	}
}
