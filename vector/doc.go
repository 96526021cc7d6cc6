// Package vector implements a dynamic contiguous-array container with
// explicit allocator control and spelled-out failure semantics.
//
// # Data Model
//
// A Vector[T] owns one buffer from its allocator plus a live length:
//
//	┌──────────────────────────┬───────────────────┐
//	│ live elements (Len)      │ spare slots       │
//	└──────────────────────────┴───────────────────┘
//	 ◄──────────────── Cap ────────────────────────►
//
// Live elements always form a prefix. Spare slots hold zero values; every
// operation that vacates a live slot clears it back to zero, so buffers can
// be recycled by pooling allocators without leaking references.
//
// An unallocated vector has no buffer and Cap() == 0. It is the state of
// the zero value Vector[T]{}, of a Move source, after Free, and after
// best-effort construction whose allocation was refused. Every operation
// accepts it.
//
// # Construction
//
// New and NewIn are best-effort: they try to preallocate MinCapacity slots
// and swallow a refusal, leaving the vector unallocated. Every other
// constructor (Fill, FromSlice, Collect, Clone) and every growing operation
// propagates allocation failure as a structured error.
//
//	vec := vector.New[int]()             // never fails
//	vec, err := vector.Fill(100, 7)      // 100 sevens, or an error
//	vec, err := vector.FromSliceIn(a, s) // copy of s in storage from a
//
// # Growth And Relocation
//
// Capacity grows by half (16, 24, 36, 54, ...) when Push runs out of room;
// Reserve and ShrinkToFit relocate to an exact capacity. Relocation always
// fills the new buffer completely before the old one is returned to the
// allocator, and exactly one buffer is released on every path: the old one
// on success, the new one if the transfer panics. If allocation fails, the
// vector is untouched and the error is returned.
//
// # Checked And Unchecked Access
//
// Get, Set, Front, and Back skip bounds checks; their preconditions are
// enforced only in builds with the vecmem_debug tag. At and SetAt check in
// every build and return a range error. Use the unchecked forms in loops
// whose bounds are already established, the checked forms on indices that
// came from outside.
//
// # Thread Safety
//
// Vector is NOT thread-safe. Callers who share one vector across
// goroutines must provide their own synchronization; sharing the allocator
// alone is fine when the allocator itself is safe.
package vector
