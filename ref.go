package parsec

// Ref is a forward declaration for recursive grammars. Combinator trees are
// built eagerly, so a production cannot refer to itself directly; declare a
// Ref, compose with ref.Parser(), and fill the cell with Set once the full
// production exists:
//
//	var expr parsec.Ref[int]
//	group := parsec.Next(parsec.Char('('), /* ... expr.Parser() ... */)
//	expr.Set(group.Or(number))
//
// Parsing through a Ref that was never Set is a programming error and
// panics. Set must not be called concurrently with parsing.
type Ref[T any] struct {
	p   Parser[T]
	set bool
}

// Set fills the cell with p. It may be called once, after the referring
// grammar has been composed.
func (r *Ref[T]) Set(p Parser[T]) {
	if r.set {
		panic("parsec: Ref.Set called twice")
	}
	r.p = p
	r.set = true
}

// Parser returns a parser that delegates to the cell's contents at parse
// time.
func (r *Ref[T]) Parser() Parser[T] {
	return NewParser(func(in Input) Result[T] {
		if !r.set {
			panic("parsec: parse through unset Ref")
		}
		return r.p.Parse(in)
	})
}

// Lazy defers construction of a parser until it is first needed, as an
// alternative to Ref when the recursion is naturally expressed as a
// function:
//
//	func expr() parsec.Parser[int] {
//		return group().Or(number())   // group refers back to expr via Lazy(expr)
//	}
//
// f runs on every Parse call and must be pure.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	if f == nil {
		panic("parsec: Lazy called with nil function")
	}
	return NewParser(func(in Input) Result[T] {
		return f().Parse(in)
	})
}
