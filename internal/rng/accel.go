package rng

import (
	"fmt"

	"github.com/born-ml/tensorrand/internal/tensor"
)

// AcceleratorBackend drives a device generator handle. Uniform rows are
// generated as standard uniforms and then rescaled by a device-side pass;
// Gaussian rows pass (mu, sigma) straight to the generator.
type AcceleratorBackend struct {
	gen DeviceGenerator
}

// NewAcceleratorBackend seeds gen and takes ownership of it.
func NewAcceleratorBackend(gen DeviceGenerator, seed int64) (*AcceleratorBackend, error) {
	if gen == nil {
		return nil, fmt.Errorf("nil device generator")
	}
	//nolint:gosec // G115: the seed's bit pattern is what matters
	if err := gen.SetSeed(uint64(seed)); err != nil {
		return nil, fmt.Errorf("set generator seed: %w", err)
	}
	return &AcceleratorBackend{gen: gen}, nil
}

// Name returns the backend name.
func (b *AcceleratorBackend) Name() string {
	return "Accelerator (" + b.gen.Device().String() + ")"
}

// Device returns the generator's device.
func (b *AcceleratorBackend) Device() tensor.Device {
	return b.gen.Device()
}

// SampleUniform generates U[0, 1) into row, then maps it to [low, high).
func (b *AcceleratorBackend) SampleUniform(row []float32, low, high float32) error {
	if err := b.gen.GenerateUniform(row); err != nil {
		return fmt.Errorf("generate uniform: %w", err)
	}
	if err := b.gen.TransferUniform(row, low, high); err != nil {
		return fmt.Errorf("transfer uniform: %w", err)
	}
	return nil
}

// SampleGaussian generates N(mu, sigma^2) into row.
func (b *AcceleratorBackend) SampleGaussian(row []float32, mu, sigma float32) error {
	if err := b.gen.GenerateNormal(row, mu, sigma); err != nil {
		return fmt.Errorf("generate normal: %w", err)
	}
	return nil
}

// AllocateScratch allocates a buffer tagged with the generator's device.
func (b *AcceleratorBackend) AllocateScratch(capacity int) (*tensor.RawTensor, error) {
	return tensor.Alloc1D(capacity, b.gen.Device())
}

// Release destroys the generator handle.
func (b *AcceleratorBackend) Release() error {
	if err := b.gen.Destroy(); err != nil {
		return fmt.Errorf("destroy generator: %w", err)
	}
	return nil
}
