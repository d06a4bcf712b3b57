package stream

import (
	"testing"

	"github.com/jade-lisp/streams/internal/lispval"
)

func TestReadEscapeSingleLetter(t *testing.T) {
	env := NewEnv()
	// "z" is the lookahead character following the \n escape.
	s := MakeStringInputStream(lispval.StringDup("z"), 0)

	v, la, err := ReadEscape(env, s, 'n')
	if err != nil {
		t.Fatal(err)
	}
	if v != '\n' {
		t.Fatalf("value = %d; want '\\n'", v)
	}
	if la != 'z' {
		t.Fatalf("lookahead = %d; want 'z'", la)
	}
}

func TestReadEscapeControlCode(t *testing.T) {
	env := NewEnv()
	s := MakeStringInputStream(lispval.StringDup("az"), 0)

	v, la, err := ReadEscape(env, s, '^')
	if err != nil {
		t.Fatal(err)
	}
	if want := int('A') ^ 0x40; v != want {
		t.Fatalf("value = %#x; want %#x", v, want)
	}
	if la != 'z' {
		t.Fatalf("lookahead = %d; want 'z'", la)
	}
}

func TestReadEscapeOctal(t *testing.T) {
	env := NewEnv()
	// first digit '1' already consumed as firstChar; "7z" remains.
	s := MakeStringInputStream(lispval.StringDup("7z"), 0)

	v, la, err := ReadEscape(env, s, '1')
	if err != nil {
		t.Fatal(err)
	}
	if v != 0o17 {
		t.Fatalf("value = %#o; want 017", v)
	}
	if la != 'z' {
		t.Fatalf("lookahead = %d; want 'z'", la)
	}
}

func TestReadEscapeHexUnbounded(t *testing.T) {
	env := NewEnv()
	s := MakeStringInputStream(lispval.StringDup("41z"), 0)

	v, la, err := ReadEscape(env, s, 'x')
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x41 {
		t.Fatalf("value = %#x; want 0x41", v)
	}
	if la != 'z' {
		t.Fatalf("lookahead = %d; want 'z'", la)
	}
}

func TestReadEscapePassthrough(t *testing.T) {
	env := NewEnv()
	s := MakeStringInputStream(lispval.StringDup("z"), 0)

	v, la, err := ReadEscape(env, s, 'q')
	if err != nil {
		t.Fatal(err)
	}
	if v != 'q' {
		t.Fatalf("value = %d; want 'q'", v)
	}
	if la != 'z' {
		t.Fatalf("lookahead = %d; want 'z'", la)
	}
}
