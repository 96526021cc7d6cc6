package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Op indicates which container or allocator operation failed
type Op string

const (
	OpNew       Op = "new"        // best-effort construction
	OpFill      Op = "fill"       // fill construction
	OpFromSlice Op = "from_slice" // range construction from a slice
	OpCollect   Op = "collect"    // range construction from a sequence
	OpClone     Op = "clone"      // copy construction
	OpReserve   Op = "reserve"    // capacity growth
	OpShrink    Op = "shrink"     // capacity release
	OpPush      Op = "push"       // single-element append
	OpAppend    Op = "append"     // bulk append
	OpInsert    Op = "insert"     // mid-vector insertion
	OpResize    Op = "resize"     // length change
	OpAt        Op = "at"         // checked read
	OpSet       Op = "set"        // checked write
	OpAllocate  Op = "allocate"   // raw storage request
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation Kind = "allocation"
	KindLength     Kind = "length"
	KindOutOfRange Kind = "out_of_range"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Op     Op
	Kind   Kind
	Detail string
	Index  int
	Count  int
	Limit  int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty Op
// matches any operation of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Op != "" && e.Op != t.Op {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Index sets the offending index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Count sets the requested element count
func (b *Builder) Count(n int) *Builder {
	b.err.Count = n
	return b
}

// Limit sets the bound the request ran into
func (b *Builder) Limit(n int) *Builder {
	b.err.Limit = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// AllocationFailed reports that storage for count elements (bytes total)
// could not be obtained
func AllocationFailed(op Op, count int, bytes uintptr, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindAllocation,
		Count:  count,
		Detail: fmt.Sprintf("failed to allocate %d elements (%d bytes)", count, bytes),
		Cause:  cause,
	}
}

// OutOfRange reports a checked access beyond the live length
func OutOfRange(op Op, index, length int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfRange,
		Index:  index,
		Limit:  length,
		Detail: fmt.Sprintf("index %d out of range (length %d)", index, length),
	}
}

// LengthExceeded reports a request beyond the maximum representable length
func LengthExceeded(op Op, count, max int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindLength,
		Count:  count,
		Limit:  max,
		Detail: fmt.Sprintf("requested length %d exceeds maximum %d", count, max),
	}
}

// NegativeCount reports a negative element count or capacity request
func NegativeCount(op Op, count int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindLength,
		Count:  count,
		Detail: fmt.Sprintf("negative count %d", count),
	}
}

// Wrap wraps an existing error with operation context
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Kind predicates for callers and tests

// IsAllocation reports whether err is an allocation failure
func IsAllocation(err error) bool {
	return hasKind(err, KindAllocation)
}

// IsOutOfRange reports whether err is a checked-access range failure
func IsOutOfRange(err error) bool {
	return hasKind(err, KindOutOfRange)
}

// IsLength reports whether err is an invalid or excessive length request
func IsLength(err error) bool {
	return hasKind(err, KindLength)
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
