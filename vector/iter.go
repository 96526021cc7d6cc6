package vector

import "iter"

// Slice returns the live elements as a slice sharing the vector's storage.
// The view stays valid until the next reallocating operation; it is capped
// at the live length, so appending to it cannot touch spare slots.
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.size:v.size]
}

// All ranges over index/element pairs of the live prefix, front to back.
// The snapshot is taken when iteration starts; a relocation during the
// walk keeps yielding the old buffer.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		buf, size := v.buf, v.size
		for i := 0; i < size; i++ {
			if !yield(i, buf[i]) {
				return
			}
		}
	}
}

// Values ranges over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		buf, size := v.buf, v.size
		for i := 0; i < size; i++ {
			if !yield(buf[i]) {
				return
			}
		}
	}
}

// Backward ranges over index/element pairs from the back.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		buf, size := v.buf, v.size
		for i := size - 1; i >= 0; i-- {
			if !yield(i, buf[i]) {
				return
			}
		}
	}
}

// EqualFunc reports whether both vectors hold equal live elements in the
// same order, comparing with eq. Capacity and allocator do not matter.
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	if v.size != other.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !eq(v.buf[i], other.buf[i]) {
			return false
		}
	}
	return true
}
