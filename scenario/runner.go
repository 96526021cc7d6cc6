package scenario

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap"

	"github.com/wippyai/vecmem"
	"github.com/wippyai/vecmem/alloc"
	"github.com/wippyai/vecmem/errors"
	"github.com/wippyai/vecmem/vector"
)

// StepResult records the outcome of one executed step. Err is set only
// when the step failed the run; container errors that a following
// expect_error step consumes show up in Note instead.
type StepResult struct {
	Index int
	Op    string
	Note  string
	Err   error
}

// Report is the outcome of a full run.
type Report struct {
	Scenario string
	Steps    []StepResult
	Stats    alloc.Stats
	LeakErr  error
	Failed   bool
}

// OK reports whether every step passed and the final leak check was clean.
func (r *Report) OK() bool {
	return !r.Failed && r.LeakErr == nil
}

// Runner replays one scenario. Each run builds a fresh allocator chain and
// a fresh vector, so runners are reusable and runs are independent.
type Runner struct {
	scenario *Scenario
}

func NewRunner(s *Scenario) *Runner {
	return &Runner{scenario: s}
}

// Run replays the script and returns the report. The vector is always
// freed at the end, so a clean script ends with zero live allocations.
func (r *Runner) Run() *Report {
	rep := &Report{Scenario: r.scenario.Name}
	log := Logger()

	track, fault, err := buildChain(r.scenario.Allocator)
	if err != nil {
		rep.Failed = true
		rep.Steps = append(rep.Steps, StepResult{Op: "setup", Err: err})
		return rep
	}

	vec := vector.NewIn[int64](track)

	// An operation error is held here until the next step. Only an
	// expect_error step may consume it; anything else fails the run.
	var pending error

	for i, st := range r.scenario.Steps {
		res := StepResult{Index: i + 1, Op: st.Op}

		if st.Op == "expect_error" {
			switch {
			case pending == nil:
				res.Err = fmt.Errorf("expected %s error, previous step succeeded", st.Kind)
			case !kindMatches(pending, st.Kind):
				res.Err = fmt.Errorf("expected %s error, got: %v", st.Kind, pending)
			default:
				res.Note = fmt.Sprintf("consumed expected %s error", st.Kind)
				pending = nil
			}
			rep.Steps = append(rep.Steps, res)
			if res.Err != nil {
				rep.Failed = true
				break
			}
			continue
		}

		if pending != nil {
			res.Err = fmt.Errorf("unhandled error from previous step: %v", pending)
			rep.Steps = append(rep.Steps, res)
			rep.Failed = true
			break
		}

		var opErr error
		switch st.Op {
		case "fill":
			if nv, err := vector.FillIn[int64](track, st.Count, st.Value); err != nil {
				opErr = err
			} else {
				vec.Free()
				vec = nv
			}
		case "fromslice":
			if nv, err := vector.FromSliceIn[int64](track, st.Values); err != nil {
				opErr = err
			} else {
				vec.Free()
				vec = nv
			}
		case "push":
			opErr = vec.Push(st.Value)
		case "append":
			opErr = vec.Append(st.Values...)
		case "insert":
			opErr = vec.Insert(st.Index, st.Values...)
		case "erase":
			if x, ok := vec.Erase(st.Index); ok {
				res.Note = fmt.Sprintf("erased %d", x)
			} else {
				res.Note = fmt.Sprintf("erase(%d) out of range, no-op", st.Index)
			}
		case "pop":
			if x, ok := vec.Pop(); ok {
				res.Note = fmt.Sprintf("popped %d", x)
			} else {
				res.Note = "pop on empty vector, no-op"
			}
		case "reserve":
			opErr = vec.Reserve(st.Count)
		case "shrink":
			opErr = vec.ShrinkToFit()
		case "resize":
			opErr = vec.Resize(st.Count, st.Value)
		case "clear":
			vec.Clear()
		case "free":
			vec.Free()
		case "at":
			if x, err := vec.At(st.Index); err != nil {
				opErr = err
			} else {
				res.Note = fmt.Sprintf("at(%d) = %d", st.Index, x)
			}
		case "set":
			opErr = vec.SetAt(st.Index, st.Value)
		case "failnext":
			fault.FailNext(st.Count)
			res.Note = fmt.Sprintf("next %d allocation(s) will fail", st.Count)
		case "failafter":
			fault.FailAfter(st.Count)
			res.Note = fmt.Sprintf("allocations fail after %d more", st.Count)
		case "expect":
			res.Err = checkExpect(vec, st)
		}

		if opErr != nil {
			pending = opErr
			res.Note = fmt.Sprintf("error: %v", opErr)
		} else if res.Note == "" && res.Err == nil {
			res.Note = fmt.Sprintf("len=%d cap=%d", vec.Len(), vec.Cap())
		}

		log.Debug("scenario step",
			zap.String("scenario", r.scenario.Name),
			zap.Int("step", res.Index),
			zap.String("op", res.Op),
			zap.String("note", res.Note),
			zap.Error(res.Err))

		rep.Steps = append(rep.Steps, res)
		if res.Err != nil {
			rep.Failed = true
			break
		}
	}

	if pending != nil && !rep.Failed {
		rep.Failed = true
		rep.Steps = append(rep.Steps, StepResult{
			Index: len(r.scenario.Steps) + 1,
			Op:    "end",
			Err:   fmt.Errorf("script ended with unhandled error: %v", pending),
		})
	}

	vec.Free()
	rep.Stats = track.Stats()
	rep.LeakErr = track.Check()
	return rep
}

// buildChain assembles track -> fault -> base from the allocator spec.
// The fault layer is always present so failnext and failafter steps work
// with every kind; unarmed it passes allocations straight through.
func buildChain(spec AllocatorSpec) (*alloc.Track[int64], *alloc.Fault[int64], error) {
	var base vecmem.Allocator[int64]
	switch spec.Kind {
	case "", "heap", "fault":
		base = alloc.NewHeap[int64]()
	case "pool":
		base = alloc.NewPool[int64]()
	case "quota":
		budget, err := datasize.ParseString(spec.Quota)
		if err != nil {
			return nil, nil, fmt.Errorf("parse quota %q: %w", spec.Quota, err)
		}
		base = alloc.NewQuota[int64](alloc.NewHeap[int64](), budget)
	default:
		return nil, nil, fmt.Errorf("unknown allocator kind %q", spec.Kind)
	}

	fault := alloc.NewFault[int64](base)
	if spec.FailNext > 0 {
		fault.FailNext(spec.FailNext)
	}
	if spec.FailAfter != nil {
		fault.FailAfter(*spec.FailAfter)
	}
	return alloc.NewTrack[int64](fault), fault, nil
}

func checkExpect(vec *vector.Vector[int64], st Step) error {
	if st.Len != nil && vec.Len() != *st.Len {
		return fmt.Errorf("len = %d, want %d", vec.Len(), *st.Len)
	}
	if st.Cap != nil && vec.Cap() != *st.Cap {
		return fmt.Errorf("cap = %d, want %d", vec.Cap(), *st.Cap)
	}
	if st.Values != nil {
		got := vec.Slice()
		if len(got) != len(st.Values) {
			return fmt.Errorf("values length = %d, want %d", len(got), len(st.Values))
		}
		for i := range got {
			if got[i] != st.Values[i] {
				return fmt.Errorf("value[%d] = %d, want %d", i, got[i], st.Values[i])
			}
		}
	}
	return nil
}

func kindMatches(err error, kind string) bool {
	switch kind {
	case "allocation":
		return errors.IsAllocation(err)
	case "length":
		return errors.IsLength(err)
	case "out_of_range":
		return errors.IsOutOfRange(err)
	}
	return false
}
