// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensorrand/internal/tensor"
)

// RawTensor is the float32 tensor representation.
//
// RawTensor provides:
//   - Shape, row stride and device via Shape(), Stride(), Device()
//   - Row access via Row(i) and element access via At/Set
//   - Non-owning views via View() and FlatTo2D()
//   - Explicit release of owned storage via Release()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.CPU)
//	raw.Set(1, 0, 2)
//	flat := raw.ToSlice() // compact copy, padding excluded
type RawTensor = tensor.RawTensor
