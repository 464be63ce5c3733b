// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU Philox generator for accelerator engines.
//
// The generator runs Philox4x32-10 in WGSL compute shaders. Bindings are
// wired on Windows; on other platforms New reports ErrUnsupported.
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorrand/backend/webgpu"
//	    "github.com/born-ml/tensorrand/random"
//	)
//
//	func main() {
//	    if !webgpu.IsAvailable() {
//	        log.Fatal("no GPU")
//	    }
//	    gen, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    engine, err := random.NewAccelerator(gen, 42, random.DefaultBufferSize)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer engine.Release() // destroys gen
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/tensorrand/internal/backend/webgpu"
	"github.com/born-ml/tensorrand/random"
)

// Generator is a seeded Philox stream computed on the GPU.
type Generator = internalwebgpu.Generator

// Compile-time check that Generator implements random.DeviceGenerator.
var _ random.DeviceGenerator = (*Generator)(nil)

// New acquires a GPU device and returns an unseeded generator.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
// The engine that receives the generator owns it from then on.
func New() (*Generator, error) {
	return internalwebgpu.NewGenerator()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It's useful for graceful fallback to a CPU engine:
//
//	kind := random.BackendCPU
//	if webgpu.IsAvailable() {
//	    kind = random.BackendWebGPU
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
