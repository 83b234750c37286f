package parsec

import (
	"strings"
	"unicode"
)

// CharFunc matches a single rune satisfying pred, yielding the rune. It
// fails, consuming nothing, at the end of input or when pred rejects the
// current rune. A nil pred is a construction fault and panics.
func CharFunc(pred func(rune) bool) Parser[rune] {
	if pred == nil {
		panic("parsec: CharFunc called with nil predicate")
	}
	return NewParser(func(in Input) Result[rune] {
		if in.AtEnd() {
			return Failure[rune](in)
		}
		r, size := in.currentRune()
		if !pred(r) {
			return Failure[rune](in)
		}
		return Success(r, in.Advance(size))
	})
}

// Char matches the single rune c.
func Char(c rune) Parser[rune] {
	return CharFunc(func(r rune) bool { return r == c })
}

// CharIn matches any single rune contained in set.
func CharIn(set string) Parser[rune] {
	return CharFunc(func(r rune) bool { return strings.ContainsRune(set, r) })
}

// CharExcept matches any single rune not contained in set.
func CharExcept(set string) Parser[rune] {
	return CharFunc(func(r rune) bool { return !strings.ContainsRune(set, r) })
}

// AnyChar matches any single rune, failing only at the end of input.
func AnyChar() Parser[rune] {
	return CharFunc(func(rune) bool { return true })
}

// Whitespace matches a single whitespace rune, as classified by
// unicode.IsSpace.
func Whitespace() Parser[rune] {
	return CharFunc(unicode.IsSpace)
}

// Digit matches a single decimal digit rune.
func Digit() Parser[rune] {
	return CharFunc(unicode.IsDigit)
}

// Letter matches a single letter rune.
func Letter() Parser[rune] {
	return CharFunc(unicode.IsLetter)
}

// String matches lit rune by rune and yields lit. It is atomic: a mismatch
// or premature end of input anywhere in lit fails at the original cursor,
// even though matching had advanced past earlier runes.
func String(lit string) Parser[string] {
	return NewParser(func(in Input) Result[string] {
		rem := in
		for _, want := range lit {
			if rem.AtEnd() {
				return Failure[string](in)
			}
			got, size := rem.currentRune()
			if got != want {
				return Failure[string](in)
			}
			rem = rem.Advance(size)
		}
		return Success(lit, rem)
	})
}
