package solar

import (
	gomath "math"
	"math/rand/v2"
)

const twoPi = float32(2 * gomath.Pi)

// PhaseFunc returns the next orbital phase in [0, 2π).
type PhaseFunc func() float32

// RandomPhases draws phases uniformly from r.
func RandomPhases(r *rand.Rand) PhaseFunc {
	return func() float32 {
		p := float32(r.Float64() * 2 * gomath.Pi)
		if p >= twoPi {
			// float32 rounding can land exactly on 2π.
			p = 0
		}
		return p
	}
}

// SeededPhases returns a reproducible phase source.
// A zero seed draws from process entropy instead.
func SeededPhases(seed uint64) PhaseFunc {
	if seed == 0 {
		return RandomPhases(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	return RandomPhases(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// FixedPhases returns the given phases in order, cycling when exhausted.
// With no arguments every phase is zero.
func FixedPhases(phases ...float32) PhaseFunc {
	i := 0
	return func() float32 {
		if len(phases) == 0 {
			return 0
		}
		p := phases[i%len(phases)]
		i++
		return p
	}
}
