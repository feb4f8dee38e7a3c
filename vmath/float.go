package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates from a to b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves from toward to by at most step, never overshooting
func Approach(from, to, step float64) float64 {
	d := to - from
	dist := math.Abs(d)
	if dist <= step {
		return to
	}
	return from + d/dist*step
}
