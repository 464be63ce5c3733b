package rng

import (
	"testing"

	"github.com/born-ml/tensorrand/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUBackend_OddRowDiscardsSecondValue(t *testing.T) {
	b := NewCPUBackend(9)
	row1 := make([]float32, 3)
	row2 := make([]float32, 3)
	require.NoError(t, b.SampleGaussian(row1, 0, 1))
	require.NoError(t, b.SampleGaussian(row2, 0, 1))

	src := NewSource(9)
	x1, y1 := SampleNormal2D(src)
	x2, _ := SampleNormal2D(src)
	x3, y3 := SampleNormal2D(src)
	x4, _ := SampleNormal2D(src)

	assert.Equal(t, []float32{float32(x1), float32(y1), float32(x2)}, row1)
	assert.Equal(t, []float32{float32(x3), float32(y3), float32(x4)}, row2)
}

func TestCPUBackend_UniformMatchesSource(t *testing.T) {
	b := NewCPUBackend(3)
	row := make([]float32, 8)
	require.NoError(t, b.SampleUniform(row, 10, 20))

	src := NewSource(3)
	for _, v := range row {
		assert.Equal(t, src.Uniform32(10, 20), v)
	}
}

func TestCPUBackend_Surface(t *testing.T) {
	b := NewCPUBackend(0)
	assert.Equal(t, "CPU", b.Name())
	assert.Equal(t, tensor.CPU, b.Device())
	buf, err := b.AllocateScratch(12)
	require.NoError(t, err)
	assert.Equal(t, 12, buf.Capacity())
	assert.NoError(t, b.Release())
}

func TestVectorBackend_BadArgs(t *testing.T) {
	b := NewVectorBackend(1)
	row := make([]float32, 4)

	assert.ErrorIs(t, b.SampleUniform(row, 1, 1), errBadArgs)
	assert.ErrorIs(t, b.SampleUniform(row, 2, 1), errBadArgs)
	assert.ErrorIs(t, b.SampleGaussian(row, 0, -1), errBadArgs)

	assert.NoError(t, b.SampleGaussian(row, 3, 0))
	assert.Equal(t, []float32{3, 3, 3, 3}, row)
}

func TestVectorBackend_Deterministic(t *testing.T) {
	a := make([]float32, 64)
	c := make([]float32, 64)
	require.NoError(t, NewVectorBackend(11).SampleGaussian(a, 0, 1))
	require.NoError(t, NewVectorBackend(11).SampleGaussian(c, 0, 1))
	assert.Equal(t, a, c)
}

func TestAcceleratorBackend_UniformGoesThroughTransfer(t *testing.T) {
	gen := newFakeGenerator(tensor.WebGPU)
	half := float32(0.5)
	gen.constant = &half

	b, err := NewAcceleratorBackend(gen, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5}, gen.seeds)
	assert.Equal(t, tensor.WebGPU, b.Device())
	assert.Equal(t, "Accelerator (WebGPU)", b.Name())

	row := make([]float32, 6)
	require.NoError(t, b.SampleUniform(row, 2, 6))
	assert.Equal(t, [][2]float32{{2, 6}}, gen.transfers)
	for _, v := range row {
		assert.Equal(t, float32(4), v)
	}

	buf, err := b.AllocateScratch(8)
	require.NoError(t, err)
	assert.Equal(t, tensor.WebGPU, buf.Device())
}

func TestAcceleratorBackend_Errors(t *testing.T) {
	_, err := NewAcceleratorBackend(nil, 0)
	assert.Error(t, err)

	gen := newFakeGenerator(tensor.CPU)
	gen.seedErr = errStatus
	_, err = NewAcceleratorBackend(gen, 0)
	assert.ErrorIs(t, err, errStatus)

	gen = newFakeGenerator(tensor.CPU)
	b, err := NewAcceleratorBackend(gen, 0)
	require.NoError(t, err)
	gen.transferErr = errStatus
	assert.ErrorIs(t, b.SampleUniform(make([]float32, 4), 0, 1), errStatus)

	gen.destroyErr = errStatus
	assert.ErrorIs(t, b.Release(), errStatus)
}
