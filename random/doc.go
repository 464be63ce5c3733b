// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random fills tensors with uniform and Gaussian values on the CPU
// or an accelerator.
//
// # Overview
//
// An engine owns one seeded generator and one fixed-size scratch buffer.
// Engines with the same backend and seed produce the same values for the
// same call sequence. Backends:
//   - cpu: platform generator with a polar Box-Muller fallback
//   - vector: MT19937 stream with whole-row library fills
//   - webgpu: Philox4x32-10 compute shaders (Windows)
//   - host: the accelerator path on a host Philox generator
//
// # Basic Usage
//
//	engine, err := random.NewCPU(42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Release()
//
//	w, _ := tensor.NewRaw(tensor.Shape{128, 64}, tensor.CPU)
//	engine.SampleGaussian(w, 0, 0.02)
//	engine.SampleUniform(w, -1, 1)
//
// # Temporaries
//
// Uniform and Gaussian return a temporary with its own storage, safe to
// keep around. UniformShared and GaussianShared reuse the engine's scratch
// buffer instead and allocate nothing, but each call overwrites the last:
//
//	g := engine.GaussianShared(shape)
//	g.MapTo(a, func(i int, x float32) float32 { return x*b[i] + c[i] }) // fine
//
//	g1 := engine.GaussianShared(shape)
//	g2 := engine.GaussianShared(shape) // g1 now reads g2's values
//
// Use at most one shared temporary per expression.
//
// # Errors
//
// Every failure is fatal. Constructors return an *Error; sampling calls
// panic with one. Catch converts such a panic into an error so the host can
// report it before exiting:
//
//	if err := random.Catch(func() { engine.GaussianShared(huge) }); err != nil {
//	    log.Fatalf("sampling: %v", err) // errors.Is(err, random.ErrCapacity)
//	}
package random
