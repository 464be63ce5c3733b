// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the float32 tensor views random engines fill.
//
// # Overview
//
// A tensor is a shape plus a row stride over a flat buffer. The last axis
// is contiguous; consecutive rows of it are Stride() elements apart, which
// lets temporaries pad each row to a 4-element boundary.
//
// # Basic Usage
//
//	import "github.com/born-ml/tensorrand/tensor"
//
//	func main() {
//	    dst, _ := tensor.NewRaw(tensor.Shape{4, 10}, tensor.CPU)
//	    defer dst.Release()
//
//	    dst.Set(1.5, 2, 3)
//	    row := dst.Row(2) // 10 elements, aliases dst
//	}
//
// # Views
//
// View carves a non-owning tensor out of an existing buffer. Views never
// free memory; writes through a view are visible through its parent.
//
//	buf, _ := tensor.NewRaw(tensor.Shape{64}, tensor.CPU)
//	v, _ := buf.View(tensor.Shape{3, 5}, tensor.PaddedStride(5)) // rows 8 apart
//
// # Device Support
//
// Buffers are tagged with the device whose generator fills them:
//   - CPU: platform, vectorized and host Philox generators
//   - WebGPU: Philox compute shaders (Windows)
package tensor
