package scenario

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	doc := `
name: smoke
description: quota-backed fill
allocator:
  kind: quota
  quota: 64KB
steps:
  - op: fill
    count: 3
    value: 1
  - op: expect
    len: 3
    values: [1, 1, 1]
  - op: free
`
	s, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name != "smoke" {
		t.Fatalf("name = %q, want smoke", s.Name)
	}
	if s.Allocator.Kind != "quota" || s.Allocator.Quota != "64KB" {
		t.Fatalf("allocator = %+v", s.Allocator)
	}
	if len(s.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(s.Steps))
	}
	if s.Steps[0].Count != 3 || s.Steps[0].Value != 1 {
		t.Fatalf("fill step = %+v", s.Steps[0])
	}
	if s.Steps[1].Len == nil || *s.Steps[1].Len != 3 {
		t.Fatalf("expect step did not capture len: %+v", s.Steps[1])
	}
	if s.Steps[1].Cap != nil {
		t.Fatalf("absent cap should stay nil: %+v", s.Steps[1])
	}
}

func TestLoad_FailAfterZeroIsMeaningful(t *testing.T) {
	doc := `
name: all-fail
allocator:
  kind: fault
  fail_after: 0
steps:
  - op: free
`
	s, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Allocator.FailAfter == nil || *s.Allocator.FailAfter != 0 {
		t.Fatalf("fail_after 0 must parse as set, got %+v", s.Allocator)
	}

	// Absent fail_after stays nil so the fault layer is left unarmed.
	s, err = Load([]byte("name: x\nsteps:\n  - op: free\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Allocator.FailAfter != nil {
		t.Fatalf("absent fail_after should be nil, got %d", *s.Allocator.FailAfter)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "malformed yaml",
			doc:  "steps: [",
			want: "yaml unmarshal",
		},
		{
			name: "missing name",
			doc:  "steps:\n  - op: free\n",
			want: "name is required",
		},
		{
			name: "no steps",
			doc:  "name: empty\n",
			want: "has no steps",
		},
		{
			name: "unknown op",
			doc:  "name: x\nsteps:\n  - op: explode\n",
			want: "unknown op",
		},
		{
			name: "unknown allocator kind",
			doc:  "name: x\nallocator:\n  kind: arena\nsteps:\n  - op: free\n",
			want: "unknown allocator kind",
		},
		{
			name: "quota kind without budget",
			doc:  "name: x\nallocator:\n  kind: quota\nsteps:\n  - op: free\n",
			want: "needs a quota value",
		},
		{
			name: "unparsable quota",
			doc:  "name: x\nallocator:\n  kind: quota\n  quota: lots\nsteps:\n  - op: free\n",
			want: "parse quota",
		},
		{
			name: "unknown error kind",
			doc:  "name: x\nsteps:\n  - op: expect_error\n    kind: panic\n",
			want: "unknown error kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	s, err := LoadFile("testdata/fill_floor.yaml")
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if s.Name != "fill-floor" {
		t.Fatalf("name = %q", s.Name)
	}

	if _, err := LoadFile("testdata/does_not_exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
