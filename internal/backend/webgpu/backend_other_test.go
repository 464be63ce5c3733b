//go:build !windows

package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupported(t *testing.T) {
	assert.False(t, IsAvailable())

	gen, err := NewGenerator()
	assert.Nil(t, gen)
	assert.ErrorIs(t, err, ErrUnsupported)

	var stub Generator
	assert.ErrorIs(t, stub.SetSeed(1), ErrUnsupported)
	assert.ErrorIs(t, stub.GenerateUniform(nil), ErrUnsupported)
	assert.NoError(t, stub.Destroy())
}
