package tensor

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Device represents the compute device a buffer is bound to.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// ErrFreed is returned when a view is requested from a released buffer.
var ErrFreed = errors.New("tensor: buffer already freed")

// tensorBuffer is a flat float32 allocation shared by an owning tensor and
// any number of non-owning views.
type tensorBuffer struct {
	data  []float32
	freed atomic.Bool
}

func newTensorBuffer(size int) *tensorBuffer {
	return &tensorBuffer{data: make([]float32, size)}
}

// free drops the backing storage. Safe to call more than once.
func (tb *tensorBuffer) free() bool {
	if tb.freed.Swap(true) {
		return false
	}
	tb.data = nil
	return true
}

// RawTensor is a float32 tensor laid out as rows of the innermost axis.
// Consecutive rows are stride elements apart; stride >= Shape().Inner().
type RawTensor struct {
	buffer *tensorBuffer
	shape  Shape
	stride int    // Distance between consecutive inner rows
	device Device // Compute device
	offset int    // Offset for views
	owner  bool   // Only the owner may free the buffer
}

// NewRaw creates a contiguous tensor with the given shape.
// Memory is zero-initialized.
func NewRaw(shape Shape, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	stride := shape.Inner()
	size, err := shape.CheckedMSize(stride)
	if err != nil {
		return nil, err
	}
	return &RawTensor{
		buffer: newTensorBuffer(size),
		shape:  shape.Clone(),
		stride: stride,
		device: device,
		owner:  true,
	}, nil
}

// Alloc1D allocates a one-dimensional buffer of capacity elements.
func Alloc1D(capacity int, device Device) (*RawTensor, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid capacity: %d (must be > 0)", capacity)
	}
	return NewRaw(Shape{capacity}, device)
}

// FromSlice creates a contiguous tensor holding a copy of data.
func FromSlice(data []float32, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	r, err := NewRaw(shape, device)
	if err != nil {
		return nil, err
	}
	copy(r.buffer.data, data)
	return r, nil
}

// View returns a non-owning tensor over r's storage starting at r's base,
// with the given shape and row stride. The view aliases r: writes through
// either are visible through both.
func (r *RawTensor) View(shape Shape, stride int) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if stride < shape.Inner() {
		return nil, fmt.Errorf("stride %d smaller than inner extent %d", stride, shape.Inner())
	}
	if r.buffer.freed.Load() {
		return nil, ErrFreed
	}
	need, err := shape.CheckedMSize(stride)
	if err != nil {
		return nil, err
	}
	if have := len(r.buffer.data) - r.offset; need > have {
		return nil, fmt.Errorf("view %v (stride %d) needs %d elements, buffer has %d", shape, stride, need, have)
	}
	return &RawTensor{
		buffer: r.buffer,
		shape:  shape.Clone(),
		stride: stride,
		device: r.device,
		offset: r.offset,
	}, nil
}

// FlatTo2D views the tensor as [Outer, Inner] with the same row stride.
func (r *RawTensor) FlatTo2D() *RawTensor {
	return &RawTensor{
		buffer: r.buffer,
		shape:  Shape{r.shape.Outer(), r.shape.Inner()},
		stride: r.stride,
		device: r.device,
		offset: r.offset,
	}
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Stride returns the distance, in elements, between consecutive inner rows.
func (r *RawTensor) Stride() int {
	return r.stride
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the number of logical elements (padding excluded).
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Rows returns the number of inner rows once flattened to 2-D.
func (r *RawTensor) Rows() int {
	return r.shape.Outer()
}

// Row returns the i-th inner row as a slice aliasing the tensor storage.
func (r *RawTensor) Row(i int) []float32 {
	start := r.offset + i*r.stride
	return r.buffer.data[start : start+r.shape.Inner()]
}

// Data returns the backing storage from the tensor's base, padding included.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []float32 {
	return r.buffer.data[r.offset:]
}

// Capacity returns the number of elements available from the tensor's base.
func (r *RawTensor) Capacity() int {
	return len(r.buffer.data) - r.offset
}

// At returns the element at the given logical index.
func (r *RawTensor) At(idx ...int) float32 {
	row, col := r.locate(idx)
	return r.Row(row)[col]
}

// Set writes the element at the given logical index.
func (r *RawTensor) Set(v float32, idx ...int) {
	row, col := r.locate(idx)
	r.Row(row)[col] = v
}

// locate maps a logical index onto (row, column) of the 2-D flattening.
func (r *RawTensor) locate(idx []int) (int, int) {
	if len(idx) != len(r.shape) && !(len(r.shape) == 0 && len(idx) == 1 && idx[0] == 0) {
		panic(fmt.Sprintf("tensor: index %v does not match shape %v", idx, r.shape))
	}
	if len(r.shape) == 0 {
		return 0, 0
	}
	row := 0
	for i := 0; i < len(r.shape)-1; i++ {
		if idx[i] < 0 || idx[i] >= r.shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", idx, r.shape))
		}
		row = row*r.shape[i] + idx[i]
	}
	col := idx[len(idx)-1]
	if col < 0 || col >= r.shape.Inner() {
		panic(fmt.Sprintf("tensor: index %v out of range for shape %v", idx, r.shape))
	}
	return row, col
}

// ToSlice returns a compact copy of the logical elements in row-major order.
func (r *RawTensor) ToSlice() []float32 {
	out := make([]float32, 0, r.NumElements())
	for i := 0; i < r.Rows(); i++ {
		out = append(out, r.Row(i)...)
	}
	return out
}

// IsView reports whether the tensor borrows storage it does not own.
func (r *RawTensor) IsView() bool {
	return !r.owner
}

// Release frees the storage if r owns it. Views are left untouched.
// Returns false if nothing was freed.
func (r *RawTensor) Release() bool {
	if !r.owner {
		return false
	}
	return r.buffer.free()
}
