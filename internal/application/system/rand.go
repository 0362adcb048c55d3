package system

import "github.com/younwookim/cave/internal/infrastructure/config"

// Rand is the random source used by generation and enemy spawning.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// randRange returns an int in [r.Min, r.Max]
func randRange(rng Rand, r config.IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// randUniform returns a float in [r.Min, r.Max)
func randUniform(rng Rand, r config.FloatRange) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// chance returns true with probability p
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// choose picks one element of values uniformly
func choose(rng Rand, values []float64) float64 {
	return values[rng.Intn(len(values))]
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
