package firework

// Rand is the source of randomness used by entities. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// uniform returns a float uniformly distributed in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandInt returns an integer uniformly distributed in [lo, hi], both ends inclusive.
func RandInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
