package physics

import "github.com/lixenwraith/vi-racer/constants"

// Body is anything with a vehicle footprint anchored at its top-left corner
type Body interface {
	Bounds() (x, y float64)
}

// Box is an axis-aligned rectangle in track units
type Box struct {
	Left, Right float64
	Top, Bottom float64
}

// BoxOf returns the collision box of a footprint anchored at (x, y), shrunk by CollisionBuffer on every side
func BoxOf(x, y float64) Box {
	return Box{
		Left:   x + constants.CollisionBuffer,
		Right:  x + constants.VehicleWidth - constants.CollisionBuffer,
		Top:    y + constants.CollisionBuffer,
		Bottom: y + constants.VehicleHeight - constants.CollisionBuffer,
	}
}

// Intersects reports overlap; touching edges count as overlap
func (b Box) Intersects(o Box) bool {
	return !(b.Right < o.Left ||
		b.Left > o.Right ||
		b.Bottom < o.Top ||
		b.Top > o.Bottom)
}

// Overlaps is the vehicle collision test. Pure, symmetric, no mutation
func Overlaps(a, b Body) bool {
	ax, ay := a.Bounds()
	bx, by := b.Bounds()
	return BoxOf(ax, ay).Intersects(BoxOf(bx, by))
}
