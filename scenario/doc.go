// Package scenario loads and replays declarative vector sessions described
// in YAML. A scenario names an allocator configuration and a list of
// operation steps; the runner replays them against a fresh Vector[int64]
// whose allocator chain is wrapped in a tracking allocator, so every run
// ends with a leak and double-free check.
//
// # Document Format
//
//	name: reserve-then-shrink
//	description: capacity moves down to the live length
//	allocator:
//	  kind: pool          # heap | pool | quota | fault (default heap)
//	  quota: 512B         # byte budget, kind quota
//	  fail_next: 0        # scripted failures, kind fault
//	  fail_after: 3
//	steps:
//	  - op: fill
//	    count: 5
//	    value: 7
//	  - op: reserve
//	    count: 100
//	  - op: expect
//	    len: 5
//	    cap: 100
//	  - op: shrink
//	  - op: expect
//	    cap: 5
//	    values: [7, 7, 7, 7, 7]
//	  - op: free
//
// # Steps
//
//	fill, fromslice        construct a fresh vector (the old one is freed)
//	push, append, insert   add elements
//	pop, erase             remove elements (out-of-range is a benign no-op)
//	reserve, shrink        capacity control
//	resize, clear, free    length control and release
//	at, set                checked element access
//	failnext, failafter    arm the fault layer mid-script
//	expect                 assert len, cap, and values
//	expect_error           consume the previous step's error by kind
//	                       (allocation | length | out_of_range)
//
// An operation error must be consumed by an immediately following
// expect_error step; anything else fails the run. Every allocator
// configuration carries a fault layer, so failnext and failafter work
// regardless of kind.
package scenario
