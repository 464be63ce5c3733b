// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host-side Philox generator.
//
// The generator has the same call surface as the WebGPU one and walks the
// same counter space, so a host engine can stand in for a GPU engine in
// tests and on machines without an adapter.
package cpu

import (
	"github.com/born-ml/tensorrand/internal/philox"
	"github.com/born-ml/tensorrand/random"
)

// Generator is a host Philox4x32-10 stream.
type Generator = philox.Generator

// Compile-time check that Generator implements random.DeviceGenerator.
var _ random.DeviceGenerator = (*Generator)(nil)

// New creates a generator seeded with seed.
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorrand/backend/cpu"
//	    "github.com/born-ml/tensorrand/random"
//	)
//
//	func main() {
//	    engine, err := random.NewAccelerator(cpu.New(42), 42, 0)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer engine.Release()
//	}
func New(seed uint64) *Generator {
	return philox.NewGenerator(seed)
}
