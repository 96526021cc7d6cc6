//go:build vecmem_debug

package debug

// Enabled reports whether debug assertions are compiled in.
const Enabled = true

// Assert panics if cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("debug assertion failed: " + msg)
	}
}
