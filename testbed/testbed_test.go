package testbed

import (
	"testing"

	"github.com/c2h5oh/datasize"

	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/alloc"
	"github.com/wippyai/vecmem/vector"
)

// chains lists the allocator stacks every workout runs against. Each
// builder returns a fresh stack so tests stay independent.
var chains = []struct {
	name  string
	build func() vecmem.Allocator[int64]
}{
	{"heap", func() vecmem.Allocator[int64] {
		return alloc.NewHeap[int64]()
	}},
	{"pool", func() vecmem.Allocator[int64] {
		return alloc.NewPool[int64]()
	}},
	{"quota-over-pool", func() vecmem.Allocator[int64] {
		return alloc.NewQuota[int64](alloc.NewPool[int64](), 1*datasize.MB)
	}},
	{"unarmed-fault", func() vecmem.Allocator[int64] {
		return alloc.NewFault[int64](alloc.NewHeap[int64]())
	}},
	{"full-chain", func() vecmem.Allocator[int64] {
		return alloc.NewFault[int64](
			alloc.NewQuota[int64](alloc.NewPool[int64](), 1*datasize.MB))
	}},
}

func TestLifecycle_AllChains(t *testing.T) {
	for _, tc := range chains {
		t.Run(tc.name, func(t *testing.T) {
			track := alloc.NewTrack[int64](tc.build())

			v, err := vector.FillIn[int64](track, 10, 3)
			if err != nil {
				t.Fatalf("fill: %v", err)
			}

			// Push through at least one growth step.
			for i := int64(0); i < 30; i++ {
				if err := v.Push(i); err != nil {
					t.Fatalf("push %d: %v", i, err)
				}
			}
			if v.Len() != 40 {
				t.Fatalf("len = %d, want 40", v.Len())
			}
			if v.Cap() < v.Len() {
				t.Fatalf("cap %d below len %d", v.Cap(), v.Len())
			}

			if err := v.Insert(5, -1, -2); err != nil {
				t.Fatalf("insert: %v", err)
			}
			if x, ok := v.Erase(5); !ok || x != -1 {
				t.Fatalf("erase = (%d, %v), want (-1, true)", x, ok)
			}
			if x, err := v.At(5); err != nil || x != -2 {
				t.Fatalf("at(5) = (%d, %v), want -2", x, err)
			}

			if err := v.Resize(64, 9); err != nil {
				t.Fatalf("resize up: %v", err)
			}
			if err := v.Resize(8, 0); err != nil {
				t.Fatalf("resize down: %v", err)
			}

			if err := v.Reserve(200); err != nil {
				t.Fatalf("reserve: %v", err)
			}
			if err := v.ShrinkToFit(); err != nil {
				t.Fatalf("shrink: %v", err)
			}
			if v.Cap() != v.Len() {
				t.Fatalf("after shrink cap = %d, want %d", v.Cap(), v.Len())
			}

			w, err := v.Clone()
			if err != nil {
				t.Fatalf("clone: %v", err)
			}
			if !w.EqualFunc(v, func(a, b int64) bool { return a == b }) {
				t.Fatal("clone differs from source")
			}
			w.Free()

			moved := v.Move()
			if v.Len() != 0 || moved.Len() != 8 {
				t.Fatalf("move: source len %d, target len %d", v.Len(), moved.Len())
			}
			moved.Free()
			v.Free()

			if err := track.Check(); err != nil {
				t.Fatalf("leak check: %v", err)
			}
		})
	}
}

func TestRepeatedCycles_NoAccumulation(t *testing.T) {
	for _, tc := range chains {
		t.Run(tc.name, func(t *testing.T) {
			track := alloc.NewTrack[int64](tc.build())

			for cycle := 0; cycle < 20; cycle++ {
				v, err := vector.FillIn[int64](track, 100, int64(cycle))
				if err != nil {
					t.Fatalf("cycle %d fill: %v", cycle, err)
				}
				if err := v.Reserve(300); err != nil {
					t.Fatalf("cycle %d reserve: %v", cycle, err)
				}
				if err := v.ShrinkToFit(); err != nil {
					t.Fatalf("cycle %d shrink: %v", cycle, err)
				}
				v.Free()

				stats := track.Stats()
				if stats.Live != 0 {
					t.Fatalf("cycle %d: %d live allocations", cycle, stats.Live)
				}
			}

			if err := track.Check(); err != nil {
				t.Fatalf("leak check: %v", err)
			}
		})
	}
}
