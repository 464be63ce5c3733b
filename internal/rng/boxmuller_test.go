package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestSampleNormal2D_RejectsOrigin(t *testing.T) {
	// (0.5, 0.5) maps to the origin and is rejected; (0.75, 0.5) maps to
	// (0.5, 0) with s = 0.25.
	src := &scriptedSource{values: []float64{0.5, 0.5, 0.75, 0.5}}
	x, y := SampleNormal2D(src)

	assert.Equal(t, 4, src.pos)
	assert.InDelta(t, 0.5*math.Sqrt(-2*math.Log(0.25)/0.25), x, 1e-12)
	assert.InDelta(t, 1.66511, x, 1e-5)
	assert.Zero(t, y)
}

func TestSampleNormal2D_RejectsOutsideDisk(t *testing.T) {
	// (0.95, 0.95) maps to (0.9, 0.9), outside the unit disk.
	src := &scriptedSource{values: []float64{0.95, 0.95, 0.5, 0.75}}
	x, y := SampleNormal2D(src)

	assert.Equal(t, 4, src.pos)
	assert.Zero(t, x)
	assert.InDelta(t, 1.66511, y, 1e-5)
}

func TestSampleNormal2D_Moments(t *testing.T) {
	src := NewSource(42)
	const n = 20_000
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i], ys[i] = SampleNormal2D(src)
	}
	all := append(append([]float64{}, xs...), ys...)
	mean, std := stat.MeanStdDev(all, nil)
	assert.InDelta(t, 0, mean, 0.03)
	assert.InDelta(t, 1, std, 0.03)
	assert.Less(t, math.Abs(stat.Correlation(xs, ys, nil)), 0.05)
}
