package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ x, y float64 }

func (p point) Bounds() (float64, float64) { return p.x, p.y }

func TestBoxOfShrinksFootprint(t *testing.T) {
	b := BoxOf(150, 1000)
	assert.Equal(t, Box{Left: 155, Right: 195, Top: 1005, Bottom: 1025}, b)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b point
		want bool
	}{
		{"identical", point{150, 500}, point{150, 500}, true},
		{"slight longitudinal offset", point{150, 500}, point{150, 515}, true},
		{"touching shrunk edges", point{150, 500}, point{150, 520}, true},
		{"near miss forgiven by buffer", point{150, 500}, point{150, 521}, false},
		{"adjacent lanes", point{150, 500}, point{300, 500}, false},
		{"lateral graze inside buffer", point{150, 500}, point{191, 500}, false},
		{"lateral overlap", point{150, 500}, point{185, 500}, true},
		{"far apart", point{150, 0}, point{450, 9000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
		})
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	points := []point{
		{150, 0}, {150, 19}, {150, 21}, {155, 10}, {190, 10}, {300, 5}, {450, -20}, {450, 0},
	}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%v b=%v", a, b)
		}
	}
}
