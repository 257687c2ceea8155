package vmath

// ScriptedRand replays fixed outcomes for deterministic tests
// Exhausted scripts return 0; Intn results are reduced modulo n
type ScriptedRand struct {
	Ints   []int
	Floats []float64
}

func (r *ScriptedRand) Intn(n int) int {
	if n <= 0 || len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	return ((v % n) + n) % n
}

func (r *ScriptedRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}
