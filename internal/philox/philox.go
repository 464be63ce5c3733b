// Package philox implements the Philox4x32-10 counter-based generator.
//
// The same block function is compiled into the WebGPU kernels, so a host
// Generator and a device generator seeded alike walk the same counter space.
package philox

import (
	"math"
	"math/bits"
)

// Round and key-schedule constants (Salmon et al., SC'11).
const (
	M0 uint32 = 0xD2511F53
	M1 uint32 = 0xCD9E8D57
	W0 uint32 = 0x9E3779B9
	W1 uint32 = 0xBB67AE85
)

// Rounds is the number of Philox rounds applied per block.
const Rounds = 10

// Counter is a 128-bit block counter.
type Counter [4]uint32

// Key is the 64-bit Philox key derived from the seed.
type Key [2]uint32

// KeyFromSeed splits a 64-bit seed into a Philox key.
func KeyFromSeed(seed uint64) Key {
	return Key{uint32(seed), uint32(seed >> 32)}
}

// CounterAt returns the counter for block index n.
func CounterAt(n uint64) Counter {
	return Counter{uint32(n), uint32(n >> 32), 0, 0}
}

func round(c Counter, k Key) Counter {
	hi0, lo0 := bits.Mul32(M0, c[0])
	hi1, lo1 := bits.Mul32(M1, c[2])
	return Counter{hi1 ^ c[1] ^ k[0], lo1, hi0 ^ c[3] ^ k[1], lo0}
}

// Block applies Philox4x32-10 to a counter under key.
func Block(c Counter, k Key) Counter {
	for r := 0; r < Rounds; r++ {
		if r > 0 {
			k[0] += W0
			k[1] += W1
		}
		c = round(c, k)
	}
	return c
}

// Uniform maps a 32-bit word onto [0, 1) using its top 24 bits, so the
// result is exact in float32.
func Uniform(x uint32) float32 {
	return float32(x>>8) * (1.0 / (1 << 24))
}

// uniformOpen maps a 32-bit word onto (0, 1].
func uniformOpen(x uint32) float32 {
	return (float32(x>>8) + 1) * (1.0 / (1 << 24))
}

// BoxMuller turns two words into two independent standard normals using
// the trigonometric form, matching the device kernel.
func BoxMuller(a, b uint32) (float32, float32) {
	u1 := float64(uniformOpen(a))
	u2 := float64(Uniform(b))
	r := math.Sqrt(-2 * math.Log(u1))
	s, c := math.Sincos(2 * math.Pi * u2)
	return float32(r * c), float32(r * s)
}
