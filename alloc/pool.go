package alloc

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMinCap     = 16
	poolMaxCap     = 1 << 16 // buffers beyond this bypass the pool
	poolClassCount = 13      // 16, 32, ..., 65536
)

// Pool recycles element buffers through size-classed sync.Pools. Classes
// are powers of two from 16 through 65536 slots; requests above the top
// class fall through to the runtime on both sides. Buffers are zeroed on
// the way back in, so recycled storage still honors the zero-value
// contract. Allocate never fails.
type Pool[T any] struct {
	classes [poolClassCount]sync.Pool
}

// NewPool returns an empty size-classed recycler.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Allocate returns zeroed storage for n elements. Pooled requests round up
// to the class size internally; the result always has length n.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > poolMaxCap {
		return make([]T, n), nil // oversized, skip the pool
	}
	c := classFor(n)
	if v := p.classes[c].Get(); v != nil {
		buf := *(v.(*[]T))
		return buf[:n], nil
	}
	return make([]T, poolMinCap<<c)[:n], nil
}

// Deallocate zeroes the buffer and returns it to its size class. Buffers
// whose backing size is not a class go to the garbage collector instead.
func (p *Pool[T]) Deallocate(buf []T) {
	if buf == nil {
		return
	}
	full := buf[:cap(buf)]
	size := len(full)
	if size < poolMinCap || size > poolMaxCap || size&(size-1) != 0 {
		return // reject non-class sizes
	}
	clear(full)
	p.classes[classFor(size)].Put(&full)
}

// classFor returns the index of the smallest class holding n elements.
func classFor(n int) int {
	c := 0
	for size := poolMinCap; size < n; size <<= 1 {
		c++
	}
	return c
}
