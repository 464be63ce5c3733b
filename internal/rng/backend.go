package rng

import "github.com/born-ml/tensorrand/internal/tensor"

// Backend fills one contiguous inner row at a time. Implementations return
// a non-nil error for a non-success status; the engine turns it into a
// fatal BackendCallFailed.
//
// Implementations:
//   - CPUBackend: platform generator with Box-Muller fallback
//   - VectorBackend: MT19937 stream with whole-row library fills
//   - AcceleratorBackend: device generator handle (WebGPU or host Philox)
type Backend interface {
	// SampleUniform fills row with draws from [low, high).
	SampleUniform(row []float32, low, high float32) error
	// SampleGaussian fills row with draws from N(mu, sigma^2).
	SampleGaussian(row []float32, mu, sigma float32) error
	// AllocateScratch allocates a 1-D buffer on the backend's device.
	AllocateScratch(capacity int) (*tensor.RawTensor, error)

	// Metadata
	Name() string
	Device() tensor.Device

	// Release tears down the native handle.
	Release() error
}

// DeviceGenerator is the call surface of an accelerator RNG library: a
// seeded generator handle whose every call reports a status.
type DeviceGenerator interface {
	Device() tensor.Device
	SetSeed(seed uint64) error
	// GenerateUniform fills out with standard uniform values in [0, 1).
	GenerateUniform(out []float32) error
	// GenerateNormal fills out with draws from N(mu, sigma^2).
	GenerateNormal(out []float32, mu, sigma float32) error
	// TransferUniform maps standard uniforms in data onto [low, high) in
	// place on the device.
	TransferUniform(data []float32, low, high float32) error
	Destroy() error
}
