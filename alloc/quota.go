package alloc

import (
	"sync"

	"github.com/c2h5oh/datasize"

	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/errors"
)

// Quota enforces a byte budget around an inner allocator. Allocate fails
// with a structured allocation error once the request would push usage past
// the budget; Deallocate refunds the buffer's bytes. A nil inner allocator
// means Heap.
type Quota[T any] struct {
	inner  vecmem.Allocator[T]
	mu     sync.Mutex
	budget datasize.ByteSize
	used   datasize.ByteSize
}

// NewQuota wraps inner with a byte budget.
func NewQuota[T any](inner vecmem.Allocator[T], budget datasize.ByteSize) *Quota[T] {
	if inner == nil {
		inner = NewHeap[T]()
	}
	return &Quota[T]{inner: inner, budget: budget}
}

// Allocate charges n elements against the budget before delegating. A
// rejected request leaves usage untouched.
func (q *Quota[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	bytes := datasize.ByteSize(uintptr(n) * vecmem.ElemSize[T]())

	q.mu.Lock()
	if q.used+bytes > q.budget {
		used, budget := q.used, q.budget
		q.mu.Unlock()
		return nil, errors.New(errors.OpAllocate, errors.KindAllocation).
			Count(n).
			Detail("quota exceeded: %s requested, %s of %s in use",
				bytes.HumanReadable(), used.HumanReadable(), budget.HumanReadable()).
			Build()
	}
	q.used += bytes
	q.mu.Unlock()

	buf, err := q.inner.Allocate(n)
	if err != nil {
		q.mu.Lock()
		q.used -= bytes
		q.mu.Unlock()
		return nil, err
	}
	return buf, nil
}

// Deallocate refunds the buffer's bytes and hands it to the inner allocator.
func (q *Quota[T]) Deallocate(buf []T) {
	if buf == nil {
		return
	}
	bytes := datasize.ByteSize(uintptr(len(buf)) * vecmem.ElemSize[T]())

	q.mu.Lock()
	if bytes > q.used {
		q.used = 0
	} else {
		q.used -= bytes
	}
	q.mu.Unlock()

	q.inner.Deallocate(buf)
}

// Used reports the bytes currently charged against the budget.
func (q *Quota[T]) Used() datasize.ByteSize {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.used
}

// Budget reports the configured budget.
func (q *Quota[T]) Budget() datasize.ByteSize {
	return q.budget
}
