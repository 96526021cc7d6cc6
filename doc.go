// Package vecmem provides a dynamic contiguous-array container with an
// explicit allocator abstraction.
//
// The library is a small standard-library-style kit: a generic vector that
// owns a single contiguous buffer, grown and shrunk through a pluggable
// Allocator capability. Capacity policy, reallocation discipline, and the
// state the container is left in when an allocation fails partway are the
// core of the design.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	vecmem/              Root package with the core Allocator interface
//	├── vector/          Vector[T] container: growth, shrink, checked access
//	├── alloc/           Allocator implementations: heap, pool, quota, fault, track
//	├── errors/          Structured error types for allocation and access failures
//	├── scenario/        YAML-scripted operation sequences and a replay runner
//	└── cmd/vecplay/     Scenario replay CLI and interactive workbench
//
// # Quick Start
//
// Construct a vector, append, and reserve capacity up front:
//
//	v := vector.New[int]()
//	for i := 0; i < 100; i++ {
//	    if err := v.Push(i); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	if err := v.Reserve(10_000); err != nil {
//	    log.Fatal(err) // allocation or length error
//	}
//
// # Allocators
//
// Every capacity change goes through the vector's Allocator. The alloc
// package ships a GC-backed heap allocator (the default), a size-classed
// recycling pool, a byte-budget quota wrapper, a fault injector for failure
// testing, and a tracking wrapper that verifies every buffer is released
// exactly once:
//
//	track := alloc.NewTrack[int](alloc.Heap[int]{})
//	v := vector.NewIn[int](track)
//	// ... use v ...
//	v.Free()
//	if err := track.Check(); err != nil {
//	    log.Fatal(err) // leak or double free
//	}
//
// # Failure Model
//
// Capacity-changing operations return structured errors (see the errors
// package): allocation failures from the allocator, length errors for
// requests beyond MaxLen, and out-of-range errors from checked access.
// Best-effort construction (vector.New, vector.NewIn) is the one exception:
// it swallows allocation failure and yields an empty, unallocated vector.
//
// Reallocation follows a transfer-before-destroy discipline: the new buffer
// is fully populated before the old one is released, so a failed Reserve or
// ShrinkToFit leaves the previous contents live and exactly one buffer is
// ever released.
//
// # Checked And Unchecked Access
//
// Get and Set are the unchecked fast path: index preconditions are verified
// only in builds with the vecmem_debug tag. At and SetAt are always checked
// and return an out-of-range error in every build configuration.
//
// # Thread Safety
//
// Vector is NOT thread-safe. Each instance must be confined to a single
// goroutine, or access must be synchronized externally. Allocators shared
// between vectors synchronize internally where they need to.
package vecmem
