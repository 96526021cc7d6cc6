//go:build vecmem_debug

package debug

import "testing"

func TestAssertPanicsOnViolation(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic from violated assertion")
		}
		if s, ok := r.(string); !ok || s != "debug assertion failed: index < size" {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	Assert(false, "index < size")
}

func TestAssertPassesWhenTrue(t *testing.T) {
	Assert(true, "always holds")
	if !Enabled {
		t.Fatal("Enabled must be true under the vecmem_debug tag")
	}
}
