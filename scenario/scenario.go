package scenario

import (
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
	"gopkg.in/yaml.v3"
)

// Scenario is a parsed session script.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Allocator   AllocatorSpec `yaml:"allocator,omitempty"`
	Steps       []Step        `yaml:"steps"`
}

// AllocatorSpec selects the allocator chain the script runs against.
// Quota is a byte-size string such as "512B" or "64KB". FailAfter is a
// pointer because zero is meaningful (every allocation fails).
type AllocatorSpec struct {
	Kind      string `yaml:"kind,omitempty"`
	Quota     string `yaml:"quota,omitempty"`
	FailNext  int    `yaml:"fail_next,omitempty"`
	FailAfter *int   `yaml:"fail_after,omitempty"`
}

// Step is a single scripted operation. Which fields apply depends on Op;
// unused fields are left at their zero value. Len and Cap are pointers so
// an expect step can assert a zero length or capacity.
type Step struct {
	Op     string  `yaml:"op"`
	Index  int     `yaml:"index,omitempty"`
	Count  int     `yaml:"count,omitempty"`
	Value  int64   `yaml:"value,omitempty"`
	Values []int64 `yaml:"values,omitempty"`
	Len    *int    `yaml:"len,omitempty"`
	Cap    *int    `yaml:"cap,omitempty"`
	Kind   string  `yaml:"kind,omitempty"`
}

var stepOps = map[string]bool{
	"fill":         true,
	"fromslice":    true,
	"push":         true,
	"append":       true,
	"insert":       true,
	"erase":        true,
	"pop":          true,
	"reserve":      true,
	"shrink":       true,
	"resize":       true,
	"clear":        true,
	"free":         true,
	"at":           true,
	"set":          true,
	"failnext":     true,
	"failafter":    true,
	"expect":       true,
	"expect_error": true,
}

var errorKinds = map[string]bool{
	"allocation":   true,
	"length":       true,
	"out_of_range": true,
}

// Load parses and validates a scenario document.
func Load(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a scenario document from disk.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks structural requirements before a run. Operation errors
// such as an out-of-range index are left to the runner.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}

	switch s.Allocator.Kind {
	case "", "heap", "pool", "quota", "fault":
	default:
		return fmt.Errorf("scenario %q: unknown allocator kind %q", s.Name, s.Allocator.Kind)
	}
	if s.Allocator.Kind == "quota" && s.Allocator.Quota == "" {
		return fmt.Errorf("scenario %q: allocator kind quota needs a quota value", s.Name)
	}
	if s.Allocator.Quota != "" {
		if _, err := datasize.ParseString(s.Allocator.Quota); err != nil {
			return fmt.Errorf("scenario %q: parse quota %q: %w", s.Name, s.Allocator.Quota, err)
		}
	}

	for i, st := range s.Steps {
		if !stepOps[st.Op] {
			return fmt.Errorf("scenario %q step %d: unknown op %q", s.Name, i+1, st.Op)
		}
		if st.Op == "expect_error" && !errorKinds[st.Kind] {
			return fmt.Errorf("scenario %q step %d: unknown error kind %q", s.Name, i+1, st.Kind)
		}
	}
	return nil
}
