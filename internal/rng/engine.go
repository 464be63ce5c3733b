// Package rng implements device-polymorphic random sampling into tensors.
//
// An Engine owns one generator handle and one scratch buffer on one
// device. It fills caller-owned tensors with uniform or Gaussian values
// and produces temporaries for use inside larger elementwise expressions.
// Engines are not safe for concurrent use; separate engines share nothing.
package rng

import (
	"errors"
	"fmt"

	"github.com/born-ml/tensorrand/internal/tensor"
)

// Engine samples through backend B. The type parameter fixes the backend
// at compile time so each variant gets its own instantiation.
type Engine[B Backend] struct {
	backend  B
	scratch  *Scratch
	released bool
}

// NewEngine wraps backend and allocates a scratch buffer of bufferSize
// elements on its device (DefaultBufferSize if bufferSize <= 0). On failure
// the backend is released and a BackendInitFailed error is returned.
func NewEngine[B Backend](backend B, bufferSize int) (*Engine[B], error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	buf, err := backend.AllocateScratch(bufferSize)
	if err != nil {
		return nil, newError(BackendInitFailed, "AllocateScratch", errors.Join(err, backend.Release()))
	}
	return &Engine[B]{backend: backend, scratch: newScratch(buf)}, nil
}

// NewCPU creates an engine on the platform generator.
func NewCPU(seed int64, bufferSize int) (*Engine[*CPUBackend], error) {
	return NewEngine(NewCPUBackend(seed), bufferSize)
}

// NewVector creates an engine on the MT19937 vectorized backend.
func NewVector(seed int64, bufferSize int) (*Engine[*VectorBackend], error) {
	return NewEngine(NewVectorBackend(seed), bufferSize)
}

// NewAccelerator creates an engine on a device generator. The engine takes
// ownership of gen, which is destroyed on failure or on Release.
func NewAccelerator(gen DeviceGenerator, seed int64, bufferSize int) (*Engine[*AcceleratorBackend], error) {
	backend, err := NewAcceleratorBackend(gen, seed)
	if err != nil {
		if gen != nil {
			err = errors.Join(err, gen.Destroy())
		}
		return nil, newError(BackendInitFailed, "NewAccelerator", err)
	}
	return NewEngine(backend, bufferSize)
}

// Must returns v or panics with err. Use it where a failed construction
// should abort like any other engine failure.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Backend returns the engine's backend.
func (e *Engine[B]) Backend() B {
	return e.backend
}

// Scratch returns the engine's scratch buffer manager.
func (e *Engine[B]) Scratch() *Scratch {
	return e.scratch
}

// Name returns the backend name.
func (e *Engine[B]) Name() string {
	return e.backend.Name()
}

// Device returns the engine's device.
func (e *Engine[B]) Device() tensor.Device {
	return e.backend.Device()
}

// SampleUniform fills dst with independent draws from [low, high).
func (e *Engine[B]) SampleUniform(dst *tensor.RawTensor, low, high float32) {
	e.sample("SampleUniform", dst, func(row []float32) error {
		return e.backend.SampleUniform(row, low, high)
	})
}

// SampleGaussian fills dst with independent draws from N(mu, sigma^2).
func (e *Engine[B]) SampleGaussian(dst *tensor.RawTensor, mu, sigma float32) {
	e.sample("SampleGaussian", dst, func(row []float32) error {
		return e.backend.SampleGaussian(row, mu, sigma)
	})
}

// sample flattens dst to 2-D and fills it one inner row at a time.
func (e *Engine[B]) sample(op string, dst *tensor.RawTensor, fill func(row []float32) error) {
	e.checkLive(op)
	if dst.Device() != e.Device() {
		fatal(BackendCallFailed, op, fmt.Errorf("destination on %s, engine on %s", dst.Device(), e.Device()))
	}
	e.scratch.advance()
	mat := dst.FlatTo2D()
	for i := 0; i < mat.Rows(); i++ {
		if err := fill(mat.Row(i)); err != nil {
			fatal(BackendCallFailed, op, err)
		}
	}
}

// Uniform returns a standard uniform temporary with its own storage.
func (e *Engine[B]) Uniform(shape tensor.Shape) *Exp {
	own, view := e.fresh("Uniform", shape)
	e.SampleUniform(view, 0, 1)
	return &Exp{view: view, own: own}
}

// Gaussian returns a standard normal temporary with its own storage.
func (e *Engine[B]) Gaussian(shape tensor.Shape) *Exp {
	own, view := e.fresh("Gaussian", shape)
	e.SampleGaussian(view, 0, 1)
	return &Exp{view: view, own: own}
}

// UniformShared returns a standard uniform temporary backed by the scratch
// buffer. It allocates nothing but is valid only until the next sampling
// call on this engine.
func (e *Engine[B]) UniformShared(shape tensor.Shape) *Exp {
	e.checkLive("UniformShared")
	view := e.scratch.GetTemp(shape)
	e.SampleUniform(view, 0, 1)
	return e.shared(view)
}

// GaussianShared returns a standard normal temporary backed by the scratch
// buffer. It allocates nothing but is valid only until the next sampling
// call on this engine.
func (e *Engine[B]) GaussianShared(shape tensor.Shape) *Exp {
	e.checkLive("GaussianShared")
	view := e.scratch.GetTemp(shape)
	e.SampleGaussian(view, 0, 1)
	return e.shared(view)
}

func (e *Engine[B]) shared(view *tensor.RawTensor) *Exp {
	return &Exp{view: view, scratch: e.scratch, generation: e.scratch.Generation()}
}

// fresh allocates a padded tensor for a temporary on the engine's device.
func (e *Engine[B]) fresh(op string, shape tensor.Shape) (own, view *tensor.RawTensor) {
	e.checkLive(op)
	stride, need := paddedSize(op, shape)
	own, err := e.backend.AllocateScratch(need)
	if err != nil {
		fatal(BackendInitFailed, op, err)
	}
	view, err = own.View(shape, stride)
	if err != nil {
		fatal(BackendInitFailed, op, err)
	}
	return own, view
}

func (e *Engine[B]) checkLive(op string) {
	if e.released {
		fatal(BackendCallFailed, op, ErrEngineReleased)
	}
}

// Release frees the scratch buffer and tears down the backend handle.
// Calling it again is a no-op. A failing teardown panics after the
// scratch buffer has been freed.
func (e *Engine[B]) Release() {
	if e.released {
		return
	}
	e.released = true
	e.scratch.free()
	if err := e.backend.Release(); err != nil {
		fatal(BackendCallFailed, "Release", err)
	}
}
