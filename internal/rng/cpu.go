package rng

import "github.com/born-ml/tensorrand/internal/tensor"

// CPUBackend samples with the platform generator. Gaussian rows use the
// polar Box-Muller sampler; one pair serves two consecutive positions.
type CPUBackend struct {
	src *Source
}

// NewCPUBackend creates a fallback backend seeded with seed.
func NewCPUBackend(seed int64) *CPUBackend {
	return &CPUBackend{src: NewSource(seed)}
}

// Name returns the backend name.
func (b *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (b *CPUBackend) Device() tensor.Device {
	return tensor.CPU
}

// SampleUniform fills row with rand()/(RandMax+1)*(high-low)+low.
func (b *CPUBackend) SampleUniform(row []float32, low, high float32) error {
	for j := range row {
		row[j] = b.src.Uniform32(low, high)
	}
	return nil
}

// SampleGaussian fills row with mu + g*sigma. Even positions draw a fresh
// pair and take its first value, odd positions take the second. When the
// row length is odd the last pair's second value is discarded, so each row
// consumes whole pairs from the source.
func (b *CPUBackend) SampleGaussian(row []float32, mu, sigma float32) error {
	var g1, g2 float64
	m, s := float64(mu), float64(sigma)
	for j := range row {
		if j&1 == 0 {
			g1, g2 = SampleNormal2D(b.src)
			row[j] = float32(m + g1*s)
		} else {
			row[j] = float32(m + g2*s)
		}
	}
	return nil
}

// AllocateScratch allocates host memory.
func (b *CPUBackend) AllocateScratch(capacity int) (*tensor.RawTensor, error) {
	return tensor.Alloc1D(capacity, tensor.CPU)
}

// Release is a no-op: the platform generator owns no native resources.
func (b *CPUBackend) Release() error {
	return nil
}
