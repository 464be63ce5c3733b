package rng

import (
	"math"
	"math/rand"
)

// RandMax is the largest value the platform generator returns.
const RandMax = 1<<31 - 1

// Source is the platform pseudo-random generator: a seeded stream of
// integers in [0, RandMax] plus the two rescalings the samplers need.
type Source struct {
	r *rand.Rand
}

// NewSource creates a deterministic source for seed.
func NewSource(seed int64) *Source {
	//nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Int returns the next raw value in [0, RandMax].
func (s *Source) Int() int32 {
	return s.r.Int31()
}

// Next returns a value in [0, 1): rand()/(RandMax+1).
func (s *Source) Next() float64 {
	return float64(s.Int()) / (RandMax + 1.0)
}

// NextOpen returns a value in (0, 1): (rand()+1)/(RandMax+2).
func (s *Source) NextOpen() float64 {
	return (float64(s.Int()) + 1.0) / (RandMax + 2.0)
}

// Uniform32 returns Next() rescaled into [low, high) as float32.
func (s *Source) Uniform32(low, high float32) float32 {
	return narrow(s.Next()*(float64(high)-float64(low))+float64(low), low, high)
}

// narrow converts v to float32 without letting rounding reach high.
func narrow(v float64, low, high float32) float32 {
	out := float32(v)
	if low < high && out >= high {
		out = math.Nextafter32(high, low)
	}
	return out
}
