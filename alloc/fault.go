package alloc

import (
	stderrors "errors"
	"sync"

	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/errors"
)

// ErrInjected is the cause carried by every failure a Fault injects, so
// callers can tell scripted faults from real exhaustion.
var ErrInjected = stderrors.New("injected allocation fault")

// Fault injects allocation failures on a schedule. An unarmed Fault
// delegates everything; arm it with FailNext or FailAfter. Rejected
// requests never reach the inner allocator. A nil inner allocator means
// Heap.
type Fault[T any] struct {
	inner vecmem.Allocator[T]

	mu       sync.Mutex
	failNext int  // forced failures remaining
	passLeft int  // successes remaining before failing all, when armed
	armed    bool // FailAfter schedule active
	calls    int
	failed   int
}

// NewFault wraps inner with a fault injector.
func NewFault[T any](inner vecmem.Allocator[T]) *Fault[T] {
	if inner == nil {
		inner = NewHeap[T]()
	}
	return &Fault[T]{inner: inner}
}

// FailNext arranges for the next n allocations to fail, after which the
// previous schedule (if any) resumes.
func (f *Fault[T]) FailNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = n
}

// FailAfter lets the next n allocations succeed and fails every one after,
// until Reset or a new schedule.
func (f *Fault[T]) FailAfter(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.armed = true
	f.passLeft = n
}

// Reset clears the failure schedule and the call counters.
func (f *Fault[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = 0
	f.passLeft = 0
	f.armed = false
	f.calls = 0
	f.failed = 0
}

// Calls reports how many allocations were attempted.
func (f *Fault[T]) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Failed reports how many allocations were rejected.
func (f *Fault[T]) Failed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failed
}

// Allocate fails if the schedule says so, otherwise delegates.
func (f *Fault[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}

	f.mu.Lock()
	f.calls++
	fail := false
	if f.failNext > 0 {
		f.failNext--
		fail = true
	} else if f.armed {
		if f.passLeft > 0 {
			f.passLeft--
		} else {
			fail = true
		}
	}
	if fail {
		f.failed++
	}
	f.mu.Unlock()

	if fail {
		return nil, errors.AllocationFailed(errors.OpAllocate, n, uintptr(n)*vecmem.ElemSize[T](), ErrInjected)
	}
	return f.inner.Allocate(n)
}

// Deallocate always delegates; the schedule only gates allocation.
func (f *Fault[T]) Deallocate(buf []T) {
	f.inner.Deallocate(buf)
}
