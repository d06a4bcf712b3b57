package stream

import (
	"testing"

	"github.com/jade-lisp/streams/internal/lispval"
)

// fakeReader reads one object as the raw lookahead character value,
// reporting the next stream character as its own lookahead, standing in
// for the out-of-scope Lisp reader.
type fakeReader struct{}

func (fakeReader) ReadObject(env *Env, s any, c int) (any, int, error) {
	next, err := GetChar(env, s)
	if err != nil {
		return nil, EOF, err
	}
	return lispval.Int(c), next, nil
}

func TestReadDelegatesAndPushesBackLookahead(t *testing.T) {
	env := NewEnv()
	env.Reader = fakeReader{}
	s := MakeStringInputStream(lispval.StringDup("ab"), 0)

	v, err := Read(env, s)
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.(lispval.Int); !ok || n != 'a' {
		t.Fatalf("Read = %v; want Int('a')", v)
	}
	// the reader's lookahead ('b') must have been pushed back onto s
	c, err := GetChar(env, s)
	if err != nil || c != 'b' {
		t.Fatalf("next GetChar = %d, %v; want 'b', nil", c, err)
	}
}

func TestReadSignalsEndOfStreamAtImmediateEOF(t *testing.T) {
	env := NewEnv()
	env.Reader = fakeReader{}
	s := MakeStringInputStream(lispval.StringDup(""), 0)

	_, err := Read(env, s)
	if err == nil {
		t.Fatal("expected end-of-stream error")
	}
	cond, ok := err.(*Condition)
	if !ok || cond.Kind != KindEndOfStream {
		t.Fatalf("err = %v; want *Condition{Kind: end-of-stream}", err)
	}
}

func TestPrintEmitsLeadingNewline(t *testing.T) {
	env := NewEnv()
	env.Printer = fakePrinter{}
	out := MakeStringOutputStream()

	if err := Print(env, out, lispval.Int(5)); err != nil {
		t.Fatal(err)
	}
	str := out.Car.(*lispval.Str)
	if got := string(str.Data()); got[0] != '\n' {
		t.Fatalf("Print output = %q; want leading newline", got)
	}
}

func TestPrin1OmitsLeadingNewline(t *testing.T) {
	env := NewEnv()
	env.Printer = fakePrinter{}
	out := MakeStringOutputStream()

	if err := Prin1(env, out, lispval.Int(5)); err != nil {
		t.Fatal(err)
	}
	str := out.Car.(*lispval.Str)
	if got := string(str.Data()); len(got) == 0 || got[0] == '\n' {
		t.Fatalf("Prin1 output = %q; want no leading newline", got)
	}
}

func TestPrintPrin1PrincSignalMissingArgWithNoStream(t *testing.T) {
	env := NewEnv()
	env.Printer = fakePrinter{}
	env.StandardOutput = lispval.Nil

	for name, call := range map[string]func() error{
		"Print": func() error { return Print(env, lispval.Nil, lispval.Int(1)) },
		"Prin1": func() error { return Prin1(env, lispval.Nil, lispval.Int(1)) },
		"Princ": func() error { return Princ(env, lispval.Nil, lispval.Int(1)) },
	} {
		err := call()
		if err == nil {
			t.Fatalf("%s: expected missing-arg error when no stream resolves", name)
		}
		cond, ok := err.(*Condition)
		if !ok || cond.Kind != KindMissingArg {
			t.Fatalf("%s: err = %v; want *Condition{Kind: missing-arg}", name, err)
		}
	}
}
