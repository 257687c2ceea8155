package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) int {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, st)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func drawCentered(s tcell.Screen, cx, y int, text string, st tcell.Style) {
	drawText(s, cx-runewidth.StringWidth(text)/2, y, text, st)
}

func fillRect(s tcell.Screen, x, y, w, h int, st tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, st)
		}
	}
}

// drawBox fills a bordered panel and returns its inner origin
func drawBox(s tcell.Screen, x, y, w, h int, st tcell.Style) (int, int) {
	fillRect(s, x, y, w, h, st)
	for col := x; col < x+w; col++ {
		s.SetContent(col, y, tcell.RuneHLine, nil, st)
		s.SetContent(col, y+h-1, tcell.RuneHLine, nil, st)
	}
	for row := y; row < y+h; row++ {
		s.SetContent(x, row, tcell.RuneVLine, nil, st)
		s.SetContent(x+w-1, row, tcell.RuneVLine, nil, st)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, st)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, st)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, st)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, st)
	return x + 2, y + 1
}
