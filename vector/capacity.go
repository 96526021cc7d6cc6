package vector

import (
	"math"

	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/errors"
	"github.com/wippyai/vecmem/vector/internal/rawmem"
)

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// MaxLen returns the largest length this element type can reach. It is a
// rejection bound for requests, never an allocation attempt.
func (v *Vector[T]) MaxLen() int {
	size := vecmem.ElemSize[T]()
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / int(size)
}

// Allocator returns the allocator this vector requests storage from.
func (v *Vector[T]) Allocator() vecmem.Allocator[T] {
	return v.mem()
}

// Reserve ensures capacity for at least n elements. Requests at or below
// the current capacity do nothing. On failure the vector is untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return errors.NegativeCount(errors.OpReserve, n)
	}
	if n <= len(v.buf) {
		return nil
	}
	if n > v.MaxLen() {
		return errors.LengthExceeded(errors.OpReserve, n, v.MaxLen())
	}
	return v.relocate(errors.OpReserve, n)
}

// ShrinkToFit drops spare capacity by relocating to exactly Len() slots.
// An empty vector releases its buffer entirely and returns to the
// unallocated state.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.buf) {
		return nil
	}
	if v.size == 0 {
		v.release()
		return nil
	}
	return v.relocate(errors.OpShrink, v.size)
}

// Free returns the vector's storage to its allocator and resets it to the
// unallocated state. The vector stays usable; the next growing operation
// allocates fresh storage.
func (v *Vector[T]) Free() {
	v.release()
}

// grow relocates to the next capacity of the halves schedule, or straight
// to need when the schedule falls short.
func (v *Vector[T]) grow(op errors.Op, need int) error {
	max := v.MaxLen()
	if need > max {
		return errors.LengthExceeded(op, need, max)
	}
	capacity := len(v.buf) + len(v.buf)/2
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if capacity < need {
		capacity = need
	}
	if capacity > max {
		capacity = max
	}
	return v.relocate(op, capacity)
}

// relocate moves the live prefix into a fresh buffer of exactly capacity
// slots. The new buffer is fully populated before the old one is released,
// and exactly one buffer is released on every path: the old one on
// success, the new one if the transfer panics.
func (v *Vector[T]) relocate(op errors.Op, capacity int) error {
	mem := v.mem()
	next, err := mem.Allocate(capacity)
	if err != nil {
		return errors.AllocationFailed(op, capacity, uintptr(capacity)*vecmem.ElemSize[T](), err)
	}

	moved := false
	defer func() {
		if !moved {
			mem.Deallocate(next)
		}
	}()
	rawmem.MoveRange(next, v.buf[:v.size])
	moved = true

	old := v.buf
	v.buf = next
	mem.Deallocate(old)
	return nil
}

// release hands the buffer back and leaves the unallocated state.
func (v *Vector[T]) release() {
	if v.buf == nil {
		return
	}
	v.mem().Deallocate(v.buf)
	v.buf = nil
	v.size = 0
}
