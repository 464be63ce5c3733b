package rng

import (
	"fmt"

	"github.com/born-ml/tensorrand/internal/tensor"
)

// DefaultBufferSize is the scratch capacity, in elements, used when a
// config leaves it unset.
const DefaultBufferSize = 1 << 20

// Scratch is the engine's fixed-capacity temporary storage. Every view it
// hands out starts at the buffer's base, so each new view overwrites the
// previous one. There is no reference counting: a view stays meaningful
// only until the next sampling call on the owning engine.
type Scratch struct {
	buf        *tensor.RawTensor
	generation uint64
}

func newScratch(buf *tensor.RawTensor) *Scratch {
	return &Scratch{buf: buf}
}

// Capacity returns the buffer size in elements.
func (s *Scratch) Capacity() int {
	return s.buf.Capacity()
}

// Device returns the device the buffer lives on.
func (s *Scratch) Device() tensor.Device {
	return s.buf.Device()
}

// Generation counts sampling calls made against the owning engine.
func (s *Scratch) Generation() uint64 {
	return s.generation
}

// advance marks every previously issued view as stale.
func (s *Scratch) advance() {
	s.generation++
}

// GetTemp carves a view of shape out of the buffer with the inner stride
// padded to a multiple of 4. It panics with CapacityExceeded unless the
// capacity is strictly greater than the padded element count; the buffer
// never grows.
func (s *Scratch) GetTemp(shape tensor.Shape) *tensor.RawTensor {
	stride, need := paddedSize("GetTemp", shape)
	if s.Capacity() <= need {
		fatal(CapacityExceeded, "GetTemp",
			fmt.Errorf("shape %v needs %d padded elements, buffer holds %d: %w", shape, need, s.Capacity(), ErrCapacity))
	}
	view, err := s.buf.View(shape, stride)
	if err != nil {
		fatal(CapacityExceeded, "GetTemp", err)
	}
	return view
}

// paddedSize returns the padded stride and element count for a temporary
// of shape. Shapes that are invalid or too large to size panic with
// CapacityExceeded on both the shared and the owned path.
func paddedSize(op string, shape tensor.Shape) (stride, need int) {
	if err := shape.Validate(); err != nil {
		fatal(CapacityExceeded, op, err)
	}
	stride = tensor.PaddedStride(shape.Inner())
	need, err := shape.CheckedMSize(stride)
	if err != nil {
		fatal(CapacityExceeded, op, err)
	}
	return stride, need
}

// free releases the buffer.
func (s *Scratch) free() {
	s.buf.Release()
}
