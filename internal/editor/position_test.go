package editor

import "testing"

func TestPosGetCAdvancesAndWrapsLines(t *testing.T) {
	b := &Buffer{Lines: []Line{
		{Bytes: []byte("ab\n")},
		{Bytes: []byte("c\n")},
	}}
	pos := Position{}

	want := []int{'a', 'b', '\n', 'c', EOF}
	for i, w := range want {
		got := PosGetC(b, &pos)
		if got != w {
			t.Fatalf("read #%d = %d; want %d (pos=%+v)", i, got, w, pos)
		}
	}
}

func TestPosUngetCInvertsPosGetC(t *testing.T) {
	b := &Buffer{Lines: []Line{{Bytes: []byte("ab\n")}}}
	pos := Position{}

	c := PosGetC(b, &pos)
	before := pos
	PosUngetC(b, &pos)
	c2 := PosGetC(b, &pos)
	if c != c2 {
		t.Fatalf("unget/read round trip mismatch: %d != %d", c, c2)
	}
	if pos != before {
		t.Fatalf("position after round trip = %+v; want %+v", pos, before)
	}
}

func TestPosPutCAppendsAndAdvances(t *testing.T) {
	b := NewBuffer("scratch")
	pos := Position{}

	for _, c := range []byte("hi") {
		n := PosPutC(b, &pos, c)
		if n != 1 {
			t.Fatalf("PosPutC(%q) = %d; want 1", c, n)
		}
	}
	if got := string(b.Lines[0].Bytes); got != "hi\n" {
		t.Fatalf("line = %q; want \"hi\\n\"", got)
	}
	if pos != (Position{Row: 0, Col: 2}) {
		t.Fatalf("pos = %+v; want {0 2}", pos)
	}
}

func TestPosPutCFailsOnReadOnlyBuffer(t *testing.T) {
	b := NewBuffer("scratch")
	b.ReadOnly = true
	pos := Position{}
	if n := PosPutC(b, &pos, 'x'); n != EOF {
		t.Fatalf("PosPutC on read-only buffer = %d; want EOF", n)
	}
}

func TestInsertStringSplitsOnEmbeddedNewline(t *testing.T) {
	b := NewBuffer("scratch")
	pos := Position{}
	end, ok := b.InsertString([]byte("ab\ncd"), pos)
	if !ok {
		t.Fatal("InsertString failed")
	}
	if len(b.Lines) != 2 {
		t.Fatalf("line count = %d; want 2", len(b.Lines))
	}
	if got := string(b.Lines[0].Bytes); got != "ab\n" {
		t.Fatalf("line 0 = %q; want \"ab\\n\"", got)
	}
	if got := string(b.Lines[1].Bytes); got != "cd\n" {
		t.Fatalf("line 1 = %q; want \"cd\\n\"", got)
	}
	if end != (Position{Row: 1, Col: 2}) {
		t.Fatalf("end pos = %+v; want {1 2}", end)
	}
}

func TestStatusLineMirrorsToFallback(t *testing.T) {
	var posted [][]byte
	s := &StatusLine{Fallback: statusSinkFunc(func(m []byte) {
		posted = append(posted, append([]byte(nil), m...))
	})}

	s.Append('h')
	s.AppendN([]byte("i!"))

	if len(posted) != 2 {
		t.Fatalf("fallback invoked %d times; want 2", len(posted))
	}
	if string(posted[1]) != "hi!" {
		t.Fatalf("second mirrored message = %q; want \"hi!\"", posted[1])
	}
}

type statusSinkFunc func([]byte)

func (f statusSinkFunc) Post(m []byte) { f(m) }
