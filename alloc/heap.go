package alloc

// Heap allocates element storage straight from the Go runtime. Deallocate
// drops the reference and leaves reclamation to the garbage collector.
// Allocate never fails.
type Heap[T any] struct{}

// NewHeap returns a runtime-backed allocator.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Allocate returns zeroed storage for n elements.
func (*Heap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; unreferenced buffers are collected.
func (*Heap[T]) Deallocate([]T) {}
