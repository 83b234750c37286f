package parsec

// Map transforms the value of a successful parse with f, leaving failures
// and consumption untouched.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	if f == nil {
		panic("parsec: Map called with nil function")
	}
	return Then(p, func(r Result[T]) Parser[U] {
		return Constant(f(r.Value))
	})
}
