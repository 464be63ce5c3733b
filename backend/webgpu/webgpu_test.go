// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package webgpu_test

import (
	"testing"

	"github.com/born-ml/tensorrand/backend/webgpu"
	"github.com/born-ml/tensorrand/random"
	"github.com/born-ml/tensorrand/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	gen, err := webgpu.New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}

	engine, err := random.NewAccelerator(gen, 42, 1024)
	require.NoError(t, err)
	defer engine.Release()
	assert.Equal(t, tensor.WebGPU, engine.Device())

	dst, err := tensor.NewRaw(tensor.Shape{4, 100}, engine.Device())
	require.NoError(t, err)
	engine.SampleUniform(dst, -1, 1)
	s := random.Summarize(dst)
	assert.GreaterOrEqual(t, s.Min, -1.0)
	assert.Less(t, s.Max, 1.0)
}
