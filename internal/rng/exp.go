package rng

import (
	"fmt"

	"github.com/born-ml/tensorrand/internal/tensor"
)

// Mapper tags how an expression evaluator should read an Exp.
type Mapper int

// Identity means each element is read as-is.
const Identity Mapper = iota

// Exp is a pure-value temporary over a randomized tensor, meant to be
// consumed once as an operand of a larger elementwise expression:
//
//	g := engine.GaussianShared(shape)
//	g.MapTo(a, func(i int, x float32) float32 { return x*b[i] + c[i] })
//
// A shared Exp aliases the engine's scratch buffer and goes stale at the
// next sampling call on that engine; combining two shared temporaries from
// the same engine in one expression reads the second one's data twice.
type Exp struct {
	view       *tensor.RawTensor
	scratch    *Scratch          // nil for temporaries with their own storage
	own        *tensor.RawTensor // owning allocation behind view, if any
	generation uint64
}

// Mapper returns the elementwise map this temporary applies.
func (e *Exp) Mapper() Mapper {
	return Identity
}

// Shape returns the temporary's logical shape.
func (e *Exp) Shape() tensor.Shape {
	return e.view.Shape()
}

// View returns the underlying tensor view.
func (e *Exp) View() *tensor.RawTensor {
	return e.view
}

// Shared reports whether the temporary aliases the engine's scratch buffer.
func (e *Exp) Shared() bool {
	return e.scratch != nil
}

// Valid reports whether no sampling call has happened on the owning
// engine since the temporary was produced. Temporaries with their own
// storage are always valid.
func (e *Exp) Valid() bool {
	return e.scratch == nil || e.scratch.Generation() == e.generation
}

// At returns the element at the given index.
func (e *Exp) At(idx ...int) float32 {
	return e.view.At(idx...)
}

// MapTo evaluates dst[i] = fn(i, e[i]) for every logical element, where i
// is the row-major flat index. dst must have e's shape.
func (e *Exp) MapTo(dst *tensor.RawTensor, fn func(i int, x float32) float32) {
	if !dst.Shape().Equal(e.Shape()) {
		panic(fmt.Sprintf("rng: MapTo: shape mismatch: %v vs %v", dst.Shape(), e.Shape()))
	}
	inner := e.Shape().Inner()
	for r := 0; r < e.view.Rows(); r++ {
		src, out := e.view.Row(r), dst.Row(r)
		for j, x := range src {
			out[j] = fn(r*inner+j, x)
		}
	}
}

// Release frees the temporary's own storage. Shared temporaries are left
// alone; the engine owns their buffer.
func (e *Exp) Release() {
	if e.own != nil {
		e.own.Release()
	}
}
