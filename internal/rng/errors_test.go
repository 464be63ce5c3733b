package rng

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	err := newError(CapacityExceeded, "GetTemp", errStatus)

	assert.ErrorIs(t, err, ErrCapacity)
	assert.ErrorIs(t, err, errStatus)
	assert.NotErrorIs(t, err, ErrBackendInit)
	assert.NotErrorIs(t, err, ErrBackendCall)

	wrapped := fmt.Errorf("outer: %w", err)
	assert.ErrorIs(t, wrapped, ErrCapacity)
	assert.Equal(t, CapacityExceeded, KindOf(wrapped))
	assert.Equal(t, ErrorKind(0), KindOf(errStatus))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "rng: SampleUniform: backend call failed: status 201",
		newError(BackendCallFailed, "SampleUniform", errStatus).Error())
	assert.Equal(t, "rng: Open: backend init failed",
		newError(BackendInitFailed, "Open", nil).Error())
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "backend init failed", BackendInitFailed.String())
	assert.Equal(t, "backend call failed", BackendCallFailed.String())
	assert.Equal(t, "capacity exceeded", CapacityExceeded.String())
	assert.Equal(t, "unknown", ErrorKind(42).String())
}

func TestCatch(t *testing.T) {
	assert.NoError(t, Catch(func() {}))

	err := Catch(func() { fatal(BackendCallFailed, "op", errStatus) })
	require.Error(t, err)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "op", e.Op)
	assert.Equal(t, BackendCallFailed, e.Kind)

	assert.PanicsWithValue(t, "boom", func() {
		_ = Catch(func() { panic("boom") })
	})
}

func TestMust(t *testing.T) {
	assert.Equal(t, 3, Must(3, nil))
	assert.Panics(t, func() { Must(0, errStatus) })
}
