package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SnapToZero returns 0 when |v| is below eps.
func SnapToZero(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}
	return v
}

// Approach moves v toward zero by step without crossing it.
func Approach(v, step float64) float64 {
	switch {
	case v > 0:
		return math.Max(v-step, 0)
	case v < 0:
		return math.Min(v+step, 0)
	}
	return 0
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
