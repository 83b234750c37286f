package parsec

// A ParseFunc consumes input from the cursor and reports the outcome.
type ParseFunc[T any] func(Input) Result[T]

// Parser is an immutable wrapper around a ParseFunc. Composite parsers close
// over their constituent Parser values, so a grammar is an eagerly built tree
// of closures; a Parser carries no state between Parse calls and may be
// invoked concurrently.
type Parser[T any] struct {
	fn ParseFunc[T]
}

// NewParser wraps fn in a Parser. A nil fn is a construction fault and
// panics.
func NewParser[T any](fn ParseFunc[T]) Parser[T] {
	if fn == nil {
		panic("parsec: NewParser called with nil ParseFunc")
	}
	return Parser[T]{fn: fn}
}

// Parse applies the parser to in. On failure the returned result's Remaining
// is the original in, whatever the wrapped function computed; this is
// enforced here, once, and is what lets Or retry an alternative from the
// same position.
func (p Parser[T]) Parse(in Input) Result[T] {
	r := p.fn(in)
	if !r.ok {
		return Failure[T](in)
	}
	return r
}

// Then sequences p with a parser computed from p's result, permitting
// value-dependent grammars. On failure of p the continuation is not invoked
// and the failure propagates. This is the engine's only sequencing
// primitive; Next, Token and Map are built on it.
func Then[T, U any](p Parser[T], cont func(Result[T]) Parser[U]) Parser[U] {
	if cont == nil {
		panic("parsec: Then called with nil continuation")
	}
	return NewParser(func(in Input) Result[U] {
		return IfSuccess(p.Parse(in), func(r Result[T]) Result[U] {
			return cont(r).Parse(r.Remaining)
		})
	})
}

// Next sequences p with a fixed second parser, discarding p's value. It
// fails if either side fails.
func Next[T, U any](p Parser[T], next Parser[U]) Parser[U] {
	return Then(p, func(Result[T]) Parser[U] { return next })
}

// Or tries p first and returns its result if it succeeds; otherwise it
// tries alt on the original input and returns that result verbatim. Longer
// alternations are built by chaining Or.
func (p Parser[T]) Or(alt Parser[T]) Parser[T] {
	return NewParser(func(in Input) Result[T] {
		return IfFailure(p.Parse(in), func(Result[T]) Result[T] {
			return alt.Parse(in)
		})
	})
}

// Not negates p without consuming input: it fails where p succeeds and
// succeeds, with the zero value of T, where p fails. Pure lookahead.
func (p Parser[T]) Not() Parser[T] {
	return NewParser(func(in Input) Result[T] {
		if p.Parse(in).ok {
			return Failure[T](in)
		}
		var zero T
		return Success(zero, in)
	})
}

// Many applies p zero or more times, collecting the values. It always
// succeeds. A successful application that does not advance the cursor ends
// the loop without being collected, so a zero-width match cannot loop
// forever.
//
// Many is a free function rather than a method: a Many method on Parser[T]
// would mention Parser[[]T] in Parser[T]'s method set and instantiate
// without bound.
func Many[T any](p Parser[T]) Parser[[]T] {
	return NewParser(func(in Input) Result[[]T] {
		values := []T{}
		rem := in
		for {
			r := p.Parse(rem)
			if !r.ok || r.Remaining == rem {
				return Success(values, rem)
			}
			values = append(values, r.Value)
			rem = r.Remaining
		}
	})
}

// Token wraps p to skip and discard whitespace on either side of it,
// threading p's value through unchanged. It fails if p fails between the
// two whitespace skips.
func (p Parser[T]) Token() Parser[T] {
	ws := Many(Whitespace())
	return Then(ws, func(Result[[]rune]) Parser[T] {
		return Then(p, func(r Result[T]) Parser[T] {
			return Next(ws, Constant(r.Value))
		})
	})
}

// Constant returns a parser that always succeeds with value, consuming
// nothing. It is the unit parser: Token uses it to re-inject a value after
// a whitespace skip, and it anchors value-dependent Then chains.
func Constant[T any](value T) Parser[T] {
	return NewParser(func(in Input) Result[T] {
		return Success(value, in)
	})
}
