package parsec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	in := NewInput("abc").Advance(1)
	r := Success('a', in)
	require.True(t, r.Ok())
	require.Equal(t, 'a', r.Value)
	require.Equal(t, in, r.Remaining)
}

func TestFailure(t *testing.T) {
	in := NewInput("abc")
	r := Failure[rune](in)
	require.False(t, r.Ok())
	require.Equal(t, rune(0), r.Value)
	require.Equal(t, in, r.Remaining)
}

func TestIfSuccess(t *testing.T) {
	in := NewInput("ab")
	ok := Success('a', in.Advance(1))

	out := IfSuccess(ok, func(r Result[rune]) Result[string] {
		return Success(string(r.Value), r.Remaining)
	})
	require.True(t, out.Ok())
	require.Equal(t, "a", out.Value)

	// The handler is not invoked for a failure; the failure propagates at
	// its cursor.
	out = IfSuccess(Failure[rune](in), func(r Result[rune]) Result[string] {
		t.Fatal("handler invoked on failure")
		return Failure[string](r.Remaining)
	})
	require.False(t, out.Ok())
	require.Equal(t, in, out.Remaining)
}

func TestIfFailure(t *testing.T) {
	in := NewInput("ab")
	ok := Success('a', in.Advance(1))

	// A success passes through untouched.
	out := IfFailure(ok, func(r Result[rune]) Result[rune] {
		t.Fatal("handler invoked on success")
		return r
	})
	require.Equal(t, ok, out)

	out = IfFailure(Failure[rune](in), func(Result[rune]) Result[rune] {
		return Success('x', in)
	})
	require.True(t, out.Ok())
	require.Equal(t, 'x', out.Value)
}

func TestResultString(t *testing.T) {
	in := NewInput("abc")
	require.Equal(t, "failure at 0", Failure[rune](in).String())
	require.Equal(t, "success 97 at 1", Success('a', in.Advance(1)).String())
}
