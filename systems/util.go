package systems

import "math"

func abs(x float64) float64 {
	return math.Abs(x)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// signum returns -1, 0 or 1.
func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
