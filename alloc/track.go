package alloc

import (
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/errors"
)

// Track wraps an inner allocator with an outstanding-buffer ledger. Live
// buffers are keyed by the address of their first slot, which is stable for
// the buffer's whole lifetime. A Deallocate that misses the ledger counts
// as a double free and is not forwarded, so a poisoned buffer never reaches
// a recycling inner allocator twice. A nil inner allocator means Heap.
//
// Zero-size element types share one backing address for every buffer; for
// those only the counters are kept, not the ledger.
type Track[T any] struct {
	inner vecmem.Allocator[T]
	sized bool

	mu        sync.Mutex
	live      map[*T]int // first-slot address -> element count
	allocs    int
	frees     int
	doubles   int
	liveElems int
}

// Stats is a point-in-time snapshot of a Track ledger.
type Stats struct {
	Allocs      int
	Frees       int
	DoubleFrees int
	Live        int
	LiveBytes   uint64
}

// NewTrack wraps inner with leak and double-free detection.
func NewTrack[T any](inner vecmem.Allocator[T]) *Track[T] {
	if inner == nil {
		inner = NewHeap[T]()
	}
	return &Track[T]{
		inner: inner,
		sized: vecmem.ElemSize[T]() != 0,
		live:  make(map[*T]int),
	}
}

// Allocate delegates and records the returned buffer as live.
func (t *Track[T]) Allocate(n int) ([]T, error) {
	buf, err := t.inner.Allocate(n)
	if err != nil || buf == nil {
		return buf, err
	}

	t.mu.Lock()
	t.allocs++
	t.liveElems += len(buf)
	if t.sized {
		t.live[unsafe.SliceData(buf)] = len(buf)
	}
	t.mu.Unlock()
	return buf, nil
}

// Deallocate checks the ledger before forwarding. Unknown buffers are
// counted as double frees, logged, and dropped.
func (t *Track[T]) Deallocate(buf []T) {
	if buf == nil {
		return
	}

	key := unsafe.SliceData(buf)
	t.mu.Lock()
	if t.sized {
		if _, ok := t.live[key]; !ok {
			t.doubles++
			t.mu.Unlock()
			Logger().Warn("double free detected",
				zap.Uintptr("addr", uintptr(unsafe.Pointer(key))),
				zap.Int("elements", len(buf)))
			return
		}
		delete(t.live, key)
	}
	t.frees++
	t.liveElems -= len(buf)
	t.mu.Unlock()

	t.inner.Deallocate(buf)
}

// Stats returns a snapshot of the ledger counters.
func (t *Track[T]) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	liveBufs := t.allocs - t.frees
	if t.sized {
		liveBufs = len(t.live)
	}
	return Stats{
		Allocs:      t.allocs,
		Frees:       t.frees,
		DoubleFrees: t.doubles,
		Live:        liveBufs,
		LiveBytes:   uint64(t.liveElems) * uint64(vecmem.ElemSize[T]()),
	}
}

// Check reports an error if any buffer is still live or any double free
// was seen. Call it after the last container using this allocator released
// its storage.
func (t *Track[T]) Check() error {
	s := t.Stats()

	if s.Live > 0 {
		Logger().Warn("allocation leak detected",
			zap.Int("buffers", s.Live),
			zap.Uint64("bytes", s.LiveBytes))
		return errors.New(errors.OpAllocate, errors.KindAllocation).
			Count(s.Live).
			Detail("%d buffer(s) still live (%d bytes)", s.Live, s.LiveBytes).
			Build()
	}
	if s.DoubleFrees > 0 {
		return errors.New(errors.OpAllocate, errors.KindAllocation).
			Count(s.DoubleFrees).
			Detail("%d double free(s) observed", s.DoubleFrees).
			Build()
	}
	return nil
}
