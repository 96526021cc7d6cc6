package vector

import (
	"github.com/wippyai/vecmem/errors"
	"github.com/wippyai/vecmem/internal/debug"
)

// Get returns the element at index i without a bounds check. The index
// must be inside the live prefix; debug builds assert it, release builds
// leave violations unspecified.
func (v *Vector[T]) Get(i int) T {
	debug.Assert(i >= 0 && i < v.size, "index within live prefix")
	return v.buf[i]
}

// Set writes the element at index i without a bounds check, under the same
// precondition as Get.
func (v *Vector[T]) Set(i int, x T) {
	debug.Assert(i >= 0 && i < v.size, "index within live prefix")
	v.buf[i] = x
}

// At returns the element at index i, or a range error when i falls outside
// the live prefix. The check runs in every build.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, errors.OutOfRange(errors.OpAt, i, v.size)
	}
	return v.buf[i], nil
}

// SetAt writes the element at index i with the same range check as At.
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.size {
		return errors.OutOfRange(errors.OpSet, i, v.size)
	}
	v.buf[i] = x
	return nil
}

// Front returns the first element. Emptiness is a debug assertion.
func (v *Vector[T]) Front() T {
	debug.Assert(v.size > 0, "vector not empty")
	return v.buf[0]
}

// Back returns the last element. Emptiness is a debug assertion.
func (v *Vector[T]) Back() T {
	debug.Assert(v.size > 0, "vector not empty")
	return v.buf[v.size-1]
}
