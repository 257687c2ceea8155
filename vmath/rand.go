package vmath

// Rand is the random source used for every gameplay choice (car classes, lanes, speeds)
// Injected so tests can script outcomes
type Rand interface {
	// Intn returns a value in [0, n), 0 when n <= 0
	Intn(n int) int
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, zero seed is replaced by 1 (xorshift fixed point)
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RangeF returns a value in [lo, lo+span)
func RangeF(r Rand, lo, span float64) float64 {
	return lo + r.Float64()*span
}
