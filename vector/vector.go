package vector

import (
	"iter"

	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/alloc"
	"github.com/wippyai/vecmem/errors"
	"github.com/wippyai/vecmem/vector/internal/rawmem"
)

// MinCapacity is the smallest buffer any allocated vector holds.
// Construction and growth never produce a smaller one.
const MinCapacity = 16

// Vector is a dynamic contiguous-array container. The zero value is a
// valid unallocated vector backed by the heap allocator.
type Vector[T any] struct {
	buf       []T // allocated region; len(buf) is the capacity
	size      int // live prefix length, 0 <= size <= len(buf)
	allocator vecmem.Allocator[T]
}

// New returns a vector that tries to preallocate MinCapacity slots from
// the heap. Construction never fails; if the allocator refuses, the vector
// starts unallocated and the first growing operation retries.
func New[T any]() *Vector[T] {
	return NewIn[T](nil)
}

// NewIn is New with an explicit allocator. A nil allocator means heap.
func NewIn[T any](a vecmem.Allocator[T]) *Vector[T] {
	v := &Vector[T]{allocator: a}
	if buf, err := v.mem().Allocate(MinCapacity); err == nil {
		v.buf = buf
	}
	return v
}

// Fill returns a vector holding n copies of value.
func Fill[T any](n int, value T) (*Vector[T], error) {
	return FillIn(nil, n, value)
}

// FillIn is Fill with an explicit allocator.
func FillIn[T any](a vecmem.Allocator[T], n int, value T) (*Vector[T], error) {
	v := &Vector[T]{allocator: a}
	if err := v.initSpace(errors.OpFill, n); err != nil {
		return nil, err
	}
	v.size = rawmem.FillN(v.buf, n, value)
	return v, nil
}

// FromSlice returns a vector holding a copy of src.
func FromSlice[T any](src []T) (*Vector[T], error) {
	return FromSliceIn(nil, src)
}

// FromSliceIn is FromSlice with an explicit allocator.
func FromSliceIn[T any](a vecmem.Allocator[T], src []T) (*Vector[T], error) {
	v := &Vector[T]{allocator: a}
	if err := v.initSpace(errors.OpFromSlice, len(src)); err != nil {
		return nil, err
	}
	v.size = rawmem.CopyRange(v.buf, src)
	return v, nil
}

// Collect drains seq into a new vector, growing as it goes. If an
// allocation fails partway, everything built so far is released and the
// error is returned.
func Collect[T any](seq iter.Seq[T]) (*Vector[T], error) {
	return CollectIn(nil, seq)
}

// CollectIn is Collect with an explicit allocator.
func CollectIn[T any](a vecmem.Allocator[T], seq iter.Seq[T]) (*Vector[T], error) {
	v := &Vector[T]{allocator: a}
	if err := v.initSpace(errors.OpCollect, 0); err != nil {
		return nil, err
	}
	for x := range seq {
		if err := v.push(errors.OpCollect, x); err != nil {
			v.Free()
			return nil, err
		}
	}
	return v, nil
}

// Clone returns a copy of the live elements in fresh storage from the same
// allocator. Capacity follows construction rules, not the source's spare.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{allocator: v.allocator}
	if err := out.initSpace(errors.OpClone, v.size); err != nil {
		return nil, err
	}
	out.size = rawmem.CopyRange(out.buf, v.buf[:v.size])
	return out, nil
}

// Move transfers the buffer and live elements to a new vector and leaves
// the receiver unallocated but usable. It never allocates, never fails.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{buf: v.buf, size: v.size, allocator: v.allocator}
	v.buf = nil
	v.size = 0
	return out
}

// mem returns the vector's allocator, defaulting to the heap.
func (v *Vector[T]) mem() vecmem.Allocator[T] {
	if v.allocator == nil {
		return alloc.NewHeap[T]()
	}
	return v.allocator
}

// initSpace gives a fresh vector capacity for at least n elements, with
// the MinCapacity floor. The vector must be unallocated.
func (v *Vector[T]) initSpace(op errors.Op, n int) error {
	if n < 0 {
		return errors.NegativeCount(op, n)
	}
	if n > v.MaxLen() {
		return errors.LengthExceeded(op, n, v.MaxLen())
	}
	capacity := n
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	buf, err := v.mem().Allocate(capacity)
	if err != nil {
		return errors.AllocationFailed(op, capacity, uintptr(capacity)*vecmem.ElemSize[T](), err)
	}
	v.buf = buf
	return nil
}
