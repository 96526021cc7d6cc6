package vector

import (
	"testing"

	"github.com/wippyai/vecmem/errors"
)

func TestGetSet(t *testing.T) {
	v, err := Fill(4, 0)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	for i := 0; i < v.Len(); i++ {
		v.Set(i, i*10)
	}
	for i := 0; i < v.Len(); i++ {
		if got := v.Get(i); got != i*10 {
			t.Errorf("Get(%d) = %d, want %d", i, got, i*10)
		}
	}
}

func TestAt_Checked(t *testing.T) {
	v, err := FromSlice([]int{10, 20, 30})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	x, err := v.At(1)
	if err != nil || x != 20 {
		t.Errorf("At(1) = (%d, %v), want (20, nil)", x, err)
	}

	// One past the live prefix is out of range even with spare capacity.
	if _, err := v.At(3); !errors.IsOutOfRange(err) {
		t.Errorf("At(Len) = %v, want a range error", err)
	}
	if _, err := v.At(-1); !errors.IsOutOfRange(err) {
		t.Errorf("At(-1) = %v, want a range error", err)
	}
}

func TestAt_Unallocated(t *testing.T) {
	var v Vector[int]
	if _, err := v.At(0); !errors.IsOutOfRange(err) {
		t.Errorf("At(0) on empty vector = %v, want a range error", err)
	}
}

func TestSetAt_Checked(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if err := v.SetAt(2, 99); err != nil {
		t.Fatalf("SetAt(2) failed: %v", err)
	}
	if v.Get(2) != 99 {
		t.Errorf("element 2 = %d, want 99", v.Get(2))
	}

	if err := v.SetAt(3, 0); !errors.IsOutOfRange(err) {
		t.Errorf("SetAt(Len) = %v, want a range error", err)
	}
	if v.Len() != 3 {
		t.Errorf("failed SetAt changed length: %d", v.Len())
	}
}

func TestFrontBack(t *testing.T) {
	v, err := FromSlice([]string{"first", "middle", "last"})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if got := v.Front(); got != "first" {
		t.Errorf("Front = %q, want %q", got, "first")
	}
	if got := v.Back(); got != "last" {
		t.Errorf("Back = %q, want %q", got, "last")
	}
}
