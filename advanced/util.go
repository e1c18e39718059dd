package advanced

import "math"

// CircularIndex wraps i into [0, n). Negative i counts back from the end, so
// vertex walks can step past either end of a ring.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
