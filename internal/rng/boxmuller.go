package rng

import "math"

// OpenUniform yields values strictly inside (0, 1).
type OpenUniform interface {
	NextOpen() float64
}

// SampleNormal2D draws two independent N(0, 1) variates with the polar
// Box-Muller method. Points are drawn in the square (-1, 1)^2 until one
// falls inside the unit disk, excluding the origin; about 78.5% of draws
// are accepted.
func SampleNormal2D(src OpenUniform) (float64, float64) {
	var x, y, s float64
	for {
		x = 2*src.NextOpen() - 1
		y = 2*src.NextOpen() - 1
		s = x*x + y*y
		if s < 1 && s != 0 {
			break
		}
	}
	t := math.Sqrt(-2 * math.Log(s) / s)
	return x * t, y * t
}
