package engine

import "math"

// absf returns the absolute value of x.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// unsetScore is the AdjustedScore of a node search has not scored yet.
func unsetScore() float32 {
	return float32(math.NaN())
}

func isUnset(score float32) bool {
	return math.IsNaN(float64(score))
}
