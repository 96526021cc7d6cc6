package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Op:     OpReserve,
				Kind:   KindLength,
				Detail: "requested length 1000 exceeds maximum 100",
				Count:  1000,
				Limit:  100,
			},
			contains: []string{"[reserve]", "length", "1000", "maximum 100"},
		},
		{
			name: "minimal error",
			err: &Error{
				Op:   OpAt,
				Kind: KindOutOfRange,
			},
			contains: []string{"[at]", "out_of_range"},
		},
		{
			name: "error with cause",
			err: &Error{
				Op:     OpPush,
				Kind:   KindAllocation,
				Detail: "failed to allocate 24 elements (192 bytes)",
				Cause:  errors.New("quota exhausted"),
			},
			contains: []string{"[push]", "allocation", "24 elements", "caused by", "quota exhausted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Op:    OpAllocate,
		Kind:  KindAllocation,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Op:    OpReserve,
		Kind:  KindAllocation,
		Count: 64,
	}

	// Same op and kind
	if !err.Is(&Error{Op: OpReserve, Kind: KindAllocation}) {
		t.Error("Is should match same op and kind")
	}

	// Different op
	if err.Is(&Error{Op: OpShrink, Kind: KindAllocation}) {
		t.Error("Is should not match different op")
	}

	// Different kind
	if err.Is(&Error{Op: OpReserve, Kind: KindLength}) {
		t.Error("Is should not match different kind")
	}

	// Empty op in target acts as a wildcard
	if !err.Is(&Error{Kind: KindAllocation}) {
		t.Error("Is should match any op when target op is empty")
	}

	// Test with errors.Is
	target := &Error{Op: OpReserve, Kind: KindAllocation}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(OpResize, KindLength).
		Index(3).
		Count(50).
		Limit(40).
		Cause(cause).
		Detail("requested %d, limit %d", 50, 40).
		Build()

	if err.Op != OpResize {
		t.Errorf("Op = %v, want %v", err.Op, OpResize)
	}
	if err.Kind != KindLength {
		t.Errorf("Kind = %v, want %v", err.Kind, KindLength)
	}
	if err.Index != 3 {
		t.Errorf("Index = %v, want 3", err.Index)
	}
	if err.Count != 50 {
		t.Errorf("Count = %v, want 50", err.Count)
	}
	if err.Limit != 40 {
		t.Errorf("Limit = %v, want 40", err.Limit)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "requested 50, limit 40" {
		t.Errorf("Detail = %v, want 'requested 50, limit 40'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("AllocationFailed", func(t *testing.T) {
		cause := errors.New("budget spent")
		err := AllocationFailed(OpFill, 128, 1024, cause)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if err.Count != 128 {
			t.Errorf("Count = %v, want 128", err.Count)
		}
		if !strings.Contains(err.Detail, "128") || !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain count and bytes", err.Detail)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should survive wrapping")
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := OutOfRange(OpAt, 10, 5)
		if err.Kind != KindOutOfRange {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfRange)
		}
		if err.Index != 10 || err.Limit != 5 {
			t.Errorf("Index=%v Limit=%v, want 10 and 5", err.Index, err.Limit)
		}
	})

	t.Run("LengthExceeded", func(t *testing.T) {
		err := LengthExceeded(OpReserve, 1 << 40, 1 << 30)
		if err.Kind != KindLength {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLength)
		}
		if err.Count != 1<<40 || err.Limit != 1<<30 {
			t.Errorf("Count=%v Limit=%v", err.Count, err.Limit)
		}
	})

	t.Run("NegativeCount", func(t *testing.T) {
		err := NegativeCount(OpResize, -7)
		if err.Kind != KindLength {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLength)
		}
		if !strings.Contains(err.Detail, "-7") {
			t.Errorf("Detail = %v, should contain the count", err.Detail)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(OpClone, KindAllocation, cause, "copying 9 elements")
		if err.Op != OpClone || err.Kind != KindAllocation {
			t.Errorf("Op=%v Kind=%v", err.Op, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should survive wrapping")
		}
	})
}

func TestPredicates(t *testing.T) {
	alloc := AllocationFailed(OpPush, 24, 192, nil)
	rng := OutOfRange(OpSet, 9, 3)
	length := NegativeCount(OpFill, -1)

	if !IsAllocation(alloc) || IsAllocation(rng) || IsAllocation(length) {
		t.Error("IsAllocation should match only allocation errors")
	}
	if !IsOutOfRange(rng) || IsOutOfRange(alloc) {
		t.Error("IsOutOfRange should match only range errors")
	}
	if !IsLength(length) || IsLength(rng) {
		t.Error("IsLength should match only length errors")
	}

	// Predicates see through wrapping
	wrapped := Wrap(OpReserve, KindAllocation, alloc, "growing")
	if !IsAllocation(wrapped) {
		t.Error("IsAllocation should match through a cause chain")
	}
	if IsAllocation(errors.New("plain")) {
		t.Error("IsAllocation should not match unstructured errors")
	}
	if IsAllocation(nil) {
		t.Error("IsAllocation should not match nil")
	}
}
