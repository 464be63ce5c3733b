// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package random

import (
	"github.com/born-ml/tensorrand/internal/backend/webgpu"
	"github.com/born-ml/tensorrand/internal/philox"
	"github.com/born-ml/tensorrand/internal/rng"
	"github.com/born-ml/tensorrand/tensor"
)

// Engine samples through backend B.
type Engine[B rng.Backend] = rng.Engine[B]

// Backend variants.
type (
	CPUBackend         = rng.CPUBackend
	VectorBackend      = rng.VectorBackend
	AcceleratorBackend = rng.AcceleratorBackend
)

// DeviceGenerator is the call surface of an accelerator RNG library.
type DeviceGenerator = rng.DeviceGenerator

// Sampler is the capability set every engine variant provides.
type Sampler = rng.Sampler

// Exp is a temporary randomized tensor for use inside an expression.
type Exp = rng.Exp

// Scratch is an engine's fixed-capacity temporary storage.
type Scratch = rng.Scratch

// Summary holds sample moments and extrema.
type Summary = rng.Summary

// Config selects and sizes an engine.
type Config = rng.Config

// BackendKind selects the sampling strategy.
type BackendKind = rng.BackendKind

// Backend kinds.
const (
	BackendCPU             = rng.BackendCPU
	BackendVector          = rng.BackendVector
	BackendWebGPU          = rng.BackendWebGPU
	BackendHostAccelerator = rng.BackendHostAccelerator
)

// DefaultBufferSize is the default scratch capacity in elements.
const DefaultBufferSize = rng.DefaultBufferSize

// Error is the fatal error type raised by engines.
type Error = rng.Error

// ErrorKind classifies an Error.
type ErrorKind = rng.ErrorKind

// Error kinds.
const (
	BackendInitFailed = rng.BackendInitFailed
	BackendCallFailed = rng.BackendCallFailed
	CapacityExceeded  = rng.CapacityExceeded
)

// Sentinel errors matched with errors.Is.
var (
	ErrBackendInit = rng.ErrBackendInit
	ErrBackendCall = rng.ErrBackendCall
	ErrCapacity    = rng.ErrCapacity
)

// NewCPU creates an engine on the platform generator with the default
// scratch capacity.
func NewCPU(seed int64) (*Engine[*CPUBackend], error) {
	return rng.NewCPU(seed, DefaultBufferSize)
}

// NewVector creates an engine on the MT19937 vectorized backend.
func NewVector(seed int64) (*Engine[*VectorBackend], error) {
	return rng.NewVector(seed, DefaultBufferSize)
}

// NewWebGPU creates an accelerator engine on the GPU.
func NewWebGPU(seed int64) (*Engine[*AcceleratorBackend], error) {
	gen, err := webgpu.NewGenerator()
	if err != nil {
		return nil, &Error{Kind: BackendInitFailed, Op: "NewWebGPU", Err: err}
	}
	return rng.NewAccelerator(gen, seed, DefaultBufferSize)
}

// NewHostAccelerator creates an accelerator engine on a host Philox generator.
func NewHostAccelerator(seed int64) (*Engine[*AcceleratorBackend], error) {
	//nolint:gosec // G115: the seed's bit pattern is what matters
	return rng.NewAccelerator(philox.NewGenerator(uint64(seed)), seed, DefaultBufferSize)
}

// NewAccelerator creates an engine on a caller-supplied device generator.
func NewAccelerator(gen DeviceGenerator, seed int64, bufferSize int) (*Engine[*AcceleratorBackend], error) {
	return rng.NewAccelerator(gen, seed, bufferSize)
}

// DefaultConfig returns a CPU engine config with seed 0.
func DefaultConfig() Config {
	return rng.DefaultConfig()
}

// ConfigFromEnv overlays TENSORRAND_BACKEND, TENSORRAND_SEED and
// TENSORRAND_BUFFER_SIZE on base.
func ConfigFromEnv(base Config) (Config, error) {
	return rng.ConfigFromEnv(base)
}

// ParseBackend maps a backend name ("cpu", "vector", "webgpu", "host") to its kind.
func ParseBackend(name string) (BackendKind, error) {
	return rng.ParseBackend(name)
}

// Open constructs the engine cfg selects.
func Open(cfg Config) (Sampler, error) {
	return rng.Open(cfg)
}

// Catch runs fn and returns the fatal engine error it raised, if any.
func Catch(fn func()) error {
	return rng.Catch(fn)
}

// Summarize computes moments and extrema of t's elements.
func Summarize(t *tensor.RawTensor) Summary {
	return rng.Summarize(t)
}

// WebGPUAvailable reports whether a WebGPU adapter can be acquired.
func WebGPUAvailable() bool {
	return webgpu.IsAvailable()
}
