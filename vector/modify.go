package vector

import (
	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/errors"
	"github.com/wippyai/vecmem/vector/internal/rawmem"
)

// Push appends x, growing capacity by half when the buffer is full.
func (v *Vector[T]) Push(x T) error {
	return v.push(errors.OpPush, x)
}

func (v *Vector[T]) push(op errors.Op, x T) error {
	if v.size == len(v.buf) {
		if err := v.grow(op, v.size+1); err != nil {
			return err
		}
	}
	v.buf[v.size] = x
	v.size++
	return nil
}

// Append pushes each of xs with a single capacity decision up front.
// On failure nothing is appended.
func (v *Vector[T]) Append(xs ...T) error {
	if len(xs) == 0 {
		return nil
	}
	max := v.MaxLen()
	if len(xs) > max-v.size {
		return errors.LengthExceeded(errors.OpAppend, len(xs), max-v.size)
	}
	need := v.size + len(xs)
	if need > len(v.buf) {
		if err := v.grow(errors.OpAppend, need); err != nil {
			return err
		}
	}
	v.size += rawmem.CopyRange(v.buf[v.size:], xs)
	return nil
}

// Insert places xs at index i, shifting the tail right. The index must be
// in [0, Len()]; inserting at Len() appends. When capacity suffices the
// shift happens in place, otherwise the live elements relocate around a
// gap with the usual discipline: the new buffer is fully populated before
// the old one is released. On failure nothing changes.
func (v *Vector[T]) Insert(i int, xs ...T) error {
	if i < 0 || i > v.size {
		return errors.OutOfRange(errors.OpInsert, i, v.size)
	}
	if len(xs) == 0 {
		return nil
	}
	max := v.MaxLen()
	if len(xs) > max-v.size {
		return errors.LengthExceeded(errors.OpInsert, len(xs), max-v.size)
	}

	need := v.size + len(xs)
	if need <= len(v.buf) {
		copy(v.buf[i+len(xs):need], v.buf[i:v.size])
		copy(v.buf[i:], xs)
		v.size = need
		return nil
	}
	return v.insertSlow(i, xs, need)
}

// insertSlow relocates into a bigger buffer with a gap for xs at i.
func (v *Vector[T]) insertSlow(i int, xs []T, need int) error {
	capacity := len(v.buf) + len(v.buf)/2
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if capacity < need {
		capacity = need
	}
	if max := v.MaxLen(); capacity > max {
		capacity = max
	}

	mem := v.mem()
	next, err := mem.Allocate(capacity)
	if err != nil {
		return errors.AllocationFailed(errors.OpInsert, capacity, uintptr(capacity)*vecmem.ElemSize[T](), err)
	}

	moved := false
	defer func() {
		if !moved {
			mem.Deallocate(next)
		}
	}()
	rawmem.MoveRange(next[:i], v.buf[:i])
	rawmem.CopyRange(next[i:i+len(xs)], xs)
	rawmem.MoveRange(next[i+len(xs):need], v.buf[i:v.size])
	moved = true

	old := v.buf
	v.buf = next
	v.size = need
	mem.Deallocate(old)
	return nil
}

// Pop removes and returns the last element, clearing the vacated slot.
// The second result is false when the vector is empty.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.size == 0 {
		return zero, false
	}
	v.size--
	x := v.buf[v.size]
	v.buf[v.size] = zero
	return x, true
}

// Erase removes the element at index i, shifting the tail left and
// clearing the vacated last slot. The second result is false when i falls
// outside the live prefix. Erase never allocates.
func (v *Vector[T]) Erase(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, false
	}
	x := v.buf[i]
	copy(v.buf[i:v.size-1], v.buf[i+1:v.size])
	v.size--
	v.buf[v.size] = zero
	return x, true
}

// Resize sets the length to n, filling grown slots with value and clearing
// shrunk ones. Capacity never shrinks here; use ShrinkToFit for that.
func (v *Vector[T]) Resize(n int, value T) error {
	if n < 0 {
		return errors.NegativeCount(errors.OpResize, n)
	}
	if n > v.size {
		if n > len(v.buf) {
			if err := v.grow(errors.OpResize, n); err != nil {
				return err
			}
		}
		rawmem.FillN(v.buf[v.size:], n-v.size, value)
	} else {
		clear(v.buf[n:v.size])
	}
	v.size = n
	return nil
}

// Clear drops every live element, zeroing their slots. Capacity is kept.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Swap exchanges contents, capacity, and allocator with other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.allocator, other.allocator = other.allocator, v.allocator
}
