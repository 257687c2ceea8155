package vmath

// ClampF restricts v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AbsF returns |v|
func AbsF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
