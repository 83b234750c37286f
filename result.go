package parsec

import "fmt"

// Result is the outcome of one parse attempt: a value and the cursor after
// consumption on success, or just the cursor at the failure point. Build
// results with Success and Failure only.
type Result[T any] struct {
	// Value is the parsed value. It is the zero value of T on failure.
	Value T
	// Remaining is the cursor after the attempt. A failed Parse call always
	// reports the input it was invoked with.
	Remaining Input

	ok bool
}

// Success returns a successful result carrying value, with remaining as the
// cursor after consumption.
func Success[T any](value T, remaining Input) Result[T] {
	return Result[T]{Value: value, Remaining: remaining, ok: true}
}

// Failure returns a failed result at remaining, with no value.
func Failure[T any](remaining Input) Result[T] {
	return Result[T]{Remaining: remaining}
}

// Ok reports whether the parse attempt succeeded.
func (r Result[T]) Ok() bool {
	return r.ok
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("success %v at %d", r.Value, r.Remaining.Position())
	}
	return fmt.Sprintf("failure at %d", r.Remaining.Position())
}

// IfSuccess applies f to r when r succeeded, and otherwise propagates the
// failure at its cursor. Together with IfFailure it is the branching
// primitive the combinators sequence through; user code normally inspects
// Ok directly instead.
func IfSuccess[T, U any](r Result[T], f func(Result[T]) Result[U]) Result[U] {
	if !r.ok {
		return Failure[U](r.Remaining)
	}
	return f(r)
}

// IfFailure applies f to r when r failed, and otherwise returns r unchanged.
func IfFailure[T any](r Result[T], f func(Result[T]) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return f(r)
}
