package rng

import (
	"errors"

	"github.com/born-ml/tensorrand/internal/philox"
	"github.com/born-ml/tensorrand/internal/tensor"
)

var errStatus = errors.New("status 201")

// scriptedSource replays fixed open-interval values.
type scriptedSource struct {
	values []float64
	pos    int
}

func (s *scriptedSource) NextOpen() float64 {
	v := s.values[s.pos]
	s.pos++
	return v
}

// fakeGenerator is a DeviceGenerator with injectable failures. Values come
// from a host Philox stream unless constant is set.
type fakeGenerator struct {
	device tensor.Device
	inner  *philox.Generator

	constant    *float32
	seedErr     error
	generateErr error
	transferErr error
	destroyErr  error

	seeds     []uint64
	transfers [][2]float32
	destroyed int
}

func newFakeGenerator(device tensor.Device) *fakeGenerator {
	return &fakeGenerator{device: device, inner: philox.NewGenerator(0)}
}

func (f *fakeGenerator) Device() tensor.Device { return f.device }

func (f *fakeGenerator) SetSeed(seed uint64) error {
	f.seeds = append(f.seeds, seed)
	if f.seedErr != nil {
		return f.seedErr
	}
	return f.inner.SetSeed(seed)
}

func (f *fakeGenerator) GenerateUniform(out []float32) error {
	if f.generateErr != nil {
		return f.generateErr
	}
	if f.constant != nil {
		for i := range out {
			out[i] = *f.constant
		}
		return nil
	}
	return f.inner.GenerateUniform(out)
}

func (f *fakeGenerator) GenerateNormal(out []float32, mu, sigma float32) error {
	if f.generateErr != nil {
		return f.generateErr
	}
	return f.inner.GenerateNormal(out, mu, sigma)
}

func (f *fakeGenerator) TransferUniform(data []float32, low, high float32) error {
	f.transfers = append(f.transfers, [2]float32{low, high})
	if f.transferErr != nil {
		return f.transferErr
	}
	return f.inner.TransferUniform(data, low, high)
}

func (f *fakeGenerator) Destroy() error {
	f.destroyed++
	return f.destroyErr
}

// noScratchBackend fails every allocation.
type noScratchBackend struct {
	*CPUBackend
	released int
}

func (b *noScratchBackend) AllocateScratch(int) (*tensor.RawTensor, error) {
	return nil, errors.New("out of device memory")
}

func (b *noScratchBackend) Release() error {
	b.released++
	return nil
}

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
