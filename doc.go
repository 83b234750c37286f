// Package parsec is a parser-combinator library for Go. Parsers are built by
// composing primitive character matchers with combinators, then applied to an
// immutable input cursor; there is no separate lexer or grammar-compilation
// stage, which makes the package suitable for embedding small grammars
// directly in other tools.
//
// A parser is a value of type Parser[T]: an immutable wrapper around a pure
// function from Input to Result[T]. Primitive parsers are built with the
// factory functions (Char, CharIn, Digit, String, ...) and composed with the
// combinator operations (Then, Next, Or, Not, Many, Token). For example, a
// parser for a run of digits surrounded by optional whitespace:
//
//	number := parsec.Map(parsec.Many(parsec.Digit()), func(ds []rune) string {
//		return string(ds)
//	}).Token()
//
//	result := number.Parse(parsec.NewInput("  42  rest"))
//	// result.Ok() == true, result.Value == "42",
//	// result.Remaining.RemainingText() == "rest"
//
// Parse failure is an ordinary value, not an error: a failing Result reports
// Ok() == false and carries the input the parser was invoked with, untouched.
// Every Parser guarantees this at its Parse entry point, so Or can always
// retry an alternative from the original position. Panics are reserved for
// construction faults, such as wrapping a nil function or reading a character
// past the end of input.
//
// Parsers, inputs, and results are immutable once constructed and safe to
// share between goroutines. Recursive grammars are built with Ref or Lazy,
// which provide the forward declaration a self-referential composition needs.
package parsec
