package parsec

import (
	"fmt"
	"unicode/utf8"
)

// Input is an immutable cursor into a text buffer: the text plus a byte
// offset. Advancing returns a new Input; the receiver is never modified, so
// any number of parsers can hold the same cursor and branch from it.
type Input struct {
	text string
	pos  int
}

// NewInput returns a cursor positioned at the start of text.
func NewInput(text string) Input {
	return Input{text: text}
}

// NewInputAt returns a cursor positioned at an explicit byte offset.
func NewInputAt(text string, pos int) Input {
	if pos < 0 {
		panic(fmt.Sprintf("parsec: negative input position %d", pos))
	}
	return Input{text: text, pos: pos}
}

// AtEnd reports whether the cursor is at or past the end of the text.
func (i Input) AtEnd() bool {
	return i.pos >= len(i.text)
}

// CurrentChar returns the rune at the cursor. Calling it at the end of input
// is a programming error and panics; guard with AtEnd first.
func (i Input) CurrentChar() rune {
	r, _ := i.currentRune()
	return r
}

// currentRune decodes the rune at the cursor along with the number of bytes
// it occupies. An invalid byte decodes as utf8.RuneError with size 1, so
// advancing by the returned size never skips input.
func (i Input) currentRune() (rune, int) {
	if i.AtEnd() {
		panic(fmt.Sprintf("parsec: read past end of input at offset %d", i.pos))
	}
	return utf8.DecodeRuneInString(i.text[i.pos:])
}

// Advance returns a new cursor moved n bytes forward. Bounds are not checked
// here; AtEnd and RemainingText treat any position at or past the end of the
// text as exhausted.
func (i Input) Advance(n int) Input {
	return Input{text: i.text, pos: i.pos + n}
}

// Position returns the cursor's byte offset.
func (i Input) Position() int {
	return i.pos
}

// RemainingText returns the unconsumed suffix of the text, or "" at the end.
func (i Input) RemainingText() string {
	if i.AtEnd() {
		return ""
	}
	return i.text[i.pos:]
}

func (i Input) String() string {
	return fmt.Sprintf("%q at %d", i.RemainingText(), i.pos)
}
