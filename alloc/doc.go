// Package alloc provides allocator implementations for vecmem containers.
//
// All allocators implement the vecmem.Allocator[T] capability: Allocate
// returns storage with every slot zeroed, Deallocate takes it back.
// Containers own their buffers exclusively and release each one exactly
// once; allocators differ only in where storage comes from and what happens
// to it when it returns.
//
// # Allocators
//
//	Heap[T]  - Go runtime storage; Deallocate is a no-op (GC reclaims)
//	Pool[T]  - size-classed recycler over sync.Pool
//	Quota[T] - byte budget enforcement around an inner allocator
//	Fault[T] - scripted allocation failures for tests and experiments
//	Track[T] - leak and double-free detection around an inner allocator
//
// # Composition
//
// Wrapping allocators nest. A tracked, budgeted pool:
//
//	pool := alloc.NewPool[int64]()
//	quota := alloc.NewQuota[int64](pool, 64*datasize.KB)
//	track := alloc.NewTrack[int64](quota)
//
//	vec, err := vector.FillIn[int64](track, 1024, 0)
//	// ... use vec ...
//	vec.Free()
//	if err := track.Check(); err != nil {
//		// leaked or double-freed buffers
//	}
//
// # Failure Model
//
// Heap and Pool never fail. Quota fails once the budget would be exceeded,
// Fault fails on exactly the calls it was told to fail. Failures are
// structured allocation errors; no allocator panics.
//
// # Logging
//
// The package logs nothing by default. Install a zap logger with SetLogger
// to surface Track findings (double frees, buffers still live at Check).
package alloc
