// Package rawmem implements the transfer primitives containers use to
// populate freshly allocated storage. Destination slots must come straight
// from an allocator, holding zero values; sources vacated by a move are
// cleared back to zero so recycled storage never retains stale pointers.
package rawmem

import "github.com/wippyai/vecmem/internal/debug"

// FillN constructs n copies of value in the first n slots of dst and
// returns n.
func FillN[T any](dst []T, n int, value T) int {
	debug.Assert(n >= 0, "fill count non-negative")
	debug.Assert(n <= len(dst), "fill count within destination")
	for i := 0; i < n; i++ {
		dst[i] = value
	}
	return n
}

// CopyRange copies all of src into the head of dst and returns the element
// count. Source slots are left intact.
func CopyRange[T any](dst, src []T) int {
	debug.Assert(len(src) <= len(dst), "copy range within destination")
	return copy(dst, src)
}

// MoveRange transfers all of src into the head of dst, clears the vacated
// source slots, and returns the element count.
func MoveRange[T any](dst, src []T) int {
	debug.Assert(len(src) <= len(dst), "move range within destination")
	n := copy(dst, src)
	clear(src[:n])
	return n
}
