package rng

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a fatal engine failure.
type ErrorKind int

const (
	// BackendInitFailed means the RNG handle or the scratch buffer could not be created.
	BackendInitFailed ErrorKind = iota + 1
	// BackendCallFailed means a generator call reported a non-success status.
	BackendCallFailed
	// CapacityExceeded means a temporary does not fit the scratch buffer.
	CapacityExceeded
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case BackendInitFailed:
		return "backend init failed"
	case BackendCallFailed:
		return "backend call failed"
	case CapacityExceeded:
		return "capacity exceeded"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrBackendInit    = errors.New("rng: backend init failed")
	ErrBackendCall    = errors.New("rng: backend call failed")
	ErrCapacity       = errors.New("rng: scratch buffer capacity exceeded")
	ErrEngineReleased = errors.New("rng: engine already released")
)

// Error is the single error type the engine raises. Every Error is fatal:
// sampling and temporaries panic with it, constructors return it.
type Error struct {
	Kind ErrorKind
	Op   string // Operation that failed, e.g. "SampleGaussian"
	Err  error  // Underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rng: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("rng: %s: %s", e.Op, e.Kind)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrBackendInit:
		return e.Kind == BackendInitFailed
	case ErrBackendCall:
		return e.Kind == BackendCallFailed
	case ErrCapacity:
		return e.Kind == CapacityExceeded
	}
	return false
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// fatal aborts the current call with a typed error.
func fatal(kind ErrorKind, op string, err error) {
	panic(newError(kind, op, err))
}

// Catch runs fn and converts a fatal engine panic into an error so the host
// can report it before terminating. Panics that are not *Error propagate.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
