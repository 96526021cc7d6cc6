//go:build !vecmem_debug

package debug

// Enabled reports whether debug assertions are compiled in.
const Enabled = false

// Assert is a no-op in default builds.
func Assert(bool, string) {}
