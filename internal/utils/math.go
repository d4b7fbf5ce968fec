package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// RandomIndex maps a uniform draw in [0,1) onto an index in [0, n).
// Used to pick from pools with an injected random source.
func RandomIndex(draw float64, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(draw * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Clamp01 clamps v into [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
