package vecmem

import "unsafe"

// Allocator provides raw element storage for containers.
//
// Allocate returns storage for n elements with every slot holding the zero
// value of T. On success the caller owns the buffer and must hand it back
// through Deallocate exactly once. Allocate(0) returns (nil, nil), and
// Deallocate(nil) is a no-op.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
}

// ElemSize reports the in-memory size of one element of type T.
func ElemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
