// Package errors provides structured error types for the vecmem library.
//
// Errors are categorized by Op (which operation failed) and Kind (error
// category). The Error type includes numeric context: offending index,
// requested count, and the limit the request ran into, plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpReserve, errors.KindLength).
//		Count(n).
//		Limit(max).
//		Detail("requested length %d exceeds maximum %d", n, max).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.OpAt, 10, 5)
//	err := errors.AllocationFailed(errors.OpPush, 24, 192, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Op and Kind; a target with an empty Op
// matches any operation, which is what the IsAllocation, IsOutOfRange, and
// IsLength predicates rely on.
package errors
