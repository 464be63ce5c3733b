//go:build !windows

// Package webgpu implements a Philox random generator on WebGPU compute shaders.
// The bindings are only wired on Windows; elsewhere NewGenerator reports
// ErrUnsupported.
package webgpu

import (
	"errors"

	"github.com/born-ml/tensorrand/internal/tensor"
)

// ErrUnsupported is returned on platforms without WebGPU bindings.
var ErrUnsupported = errors.New("webgpu: not supported on this platform")

// Generator is unavailable on this platform.
type Generator struct{}

// NewGenerator always fails on this platform.
func NewGenerator() (*Generator, error) {
	return nil, ErrUnsupported
}

// IsAvailable reports false on this platform.
func IsAvailable() bool {
	return false
}

// Device returns the compute device.
func (g *Generator) Device() tensor.Device { return tensor.WebGPU }

// Name returns the backend name.
func (g *Generator) Name() string { return "WebGPU (unsupported)" }

// SetSeed reports ErrUnsupported.
func (g *Generator) SetSeed(uint64) error { return ErrUnsupported }

// GenerateUniform reports ErrUnsupported.
func (g *Generator) GenerateUniform([]float32) error { return ErrUnsupported }

// GenerateNormal reports ErrUnsupported.
func (g *Generator) GenerateNormal([]float32, float32, float32) error { return ErrUnsupported }

// TransferUniform reports ErrUnsupported.
func (g *Generator) TransferUniform([]float32, float32, float32) error { return ErrUnsupported }

// Destroy is a no-op.
func (g *Generator) Destroy() error { return nil }
