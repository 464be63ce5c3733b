package philox

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Known-answer vectors from the Random123 distribution.
func TestBlock_KnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		ctr  Counter
		key  Key
		want Counter
	}{
		{
			name: "zero",
			want: Counter{0x6627e8d5, 0xe169c58d, 0xbc57ac4c, 0x9b00dbd8},
		},
		{
			name: "ones",
			ctr:  Counter{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff},
			key:  Key{0xffffffff, 0xffffffff},
			want: Counter{0x408f276d, 0x41c83b0e, 0xa20bc7c6, 0x6d5451fd},
		},
		{
			name: "pi",
			ctr:  Counter{0x243f6a88, 0x85a308d3, 0x13198a2e, 0x03707344},
			key:  Key{0xa4093822, 0x299f31d0},
			want: Counter{0xd16cfe09, 0x94fdcceb, 0x5001e420, 0x24126ea1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Block(tt.ctr, tt.key))
		})
	}
}

func TestKeyFromSeed(t *testing.T) {
	assert.Equal(t, Key{0x89abcdef, 0x01234567}, KeyFromSeed(0x0123456789abcdef))
	assert.Equal(t, Counter{1, 2, 0, 0}, CounterAt(2<<32|1))
}

func TestUniform_Range(t *testing.T) {
	assert.Equal(t, float32(0), Uniform(0))
	assert.Less(t, Uniform(math.MaxUint32), float32(1))
	assert.Equal(t, float32(0.5), Uniform(1<<31))

	assert.Greater(t, uniformOpen(0), float32(0))
	assert.Equal(t, float32(1), uniformOpen(math.MaxUint32))
}

func TestBoxMuller_Finite(t *testing.T) {
	for _, w := range [][2]uint32{{0, 0}, {math.MaxUint32, math.MaxUint32}, {0, math.MaxUint32}, {12345, 67890}} {
		a, b := BoxMuller(w[0], w[1])
		assert.False(t, math.IsNaN(float64(a)) || math.IsInf(float64(a), 0))
		assert.False(t, math.IsNaN(float64(b)) || math.IsInf(float64(b), 0))
	}
	// u1 = 1 gives radius 0.
	a, b := BoxMuller(math.MaxUint32, 0)
	assert.Zero(t, a)
	assert.Zero(t, b)
}

func TestRescale(t *testing.T) {
	assert.InDelta(t, 2.5, Rescale(0.25, 2, 4), 1e-6)
	assert.Equal(t, float32(-1), Rescale(0, -1, 2))

	// Rounding up onto the bound is pulled back below it.
	v := Rescale(math.Nextafter32(1, 0), 1e6, 1e6+1)
	assert.Less(t, v, float32(1e6+1))
}

func TestRescale_WideRange(t *testing.T) {
	// high-low overflows float32 here.
	low, high := float32(-3e38), float32(3e38)
	for _, v := range []float32{0, 0.25, 0.5, 0.75, math.Nextafter32(1, 0)} {
		got := Rescale(v, low, high)
		assert.GreaterOrEqual(t, got, low, "v=%g", v)
		assert.Less(t, got, high, "v=%g", v)
	}
	assert.InDelta(t, 0, Rescale(0.5, low, high), 1e30)
	assert.Equal(t, low, Rescale(0, low, high))

	low, high = -math.MaxFloat32, math.MaxFloat32
	assert.Less(t, Rescale(math.Nextafter32(1, 0), low, high), high)
}
