package tensor

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrTooLarge is returned when a shape's element count does not fit in int.
var ErrTooLarge = errors.New("tensor: shape too large")

// Shape represents the dimensions of a tensor in row-major order.
// The last axis is the contiguous (inner) one.
type Shape []int

// NumElements returns the total number of logical elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Inner returns the extent of the contiguous axis (1 for scalars).
func (s Shape) Inner() int {
	if len(s) == 0 {
		return 1
	}
	return s[len(s)-1]
}

// Outer returns the product of every axis except the contiguous one.
// This is the row count of the tensor once flattened to 2-D.
func (s Shape) Outer() int {
	if len(s) <= 1 {
		return 1
	}
	return Shape(s[:len(s)-1]).NumElements()
}

// MSize returns the number of elements a buffer needs to hold the shape
// when consecutive rows are stride elements apart. The result wraps for
// shapes CheckedMSize rejects.
func (s Shape) MSize(stride int) int {
	return s.Outer() * stride
}

// CheckedMSize is MSize with overflow detection. It fails with ErrTooLarge
// if Outer()*stride does not fit in int, and rejects non-positive strides.
func (s Shape) CheckedMSize(stride int) (int, error) {
	if stride <= 0 {
		return 0, fmt.Errorf("stride %d for shape %v: %w", stride, s, ErrTooLarge)
	}
	n := uint64(stride)
	for i := 0; i < len(s)-1; i++ {
		if s[i] <= 0 {
			return 0, fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, s[i])
		}
		hi, lo := bits.Mul64(n, uint64(s[i]))
		if hi != 0 || lo > math.MaxInt {
			return 0, fmt.Errorf("shape %v with stride %d: %w", s, stride, ErrTooLarge)
		}
		n = lo
	}
	return int(n), nil
}

// PaddedStride rounds an inner extent up to the next multiple of 4 so each
// row starts on a 4-element boundary.
//
//	PaddedStride(1) == 4
//	PaddedStride(4) == 4
//	PaddedStride(5) == 8
//
// The result is negative when inner+3 overflows; CheckedMSize rejects it.
func PaddedStride(inner int) int {
	return ((inner + 3) >> 2) << 2
}
