package stream

import (
	"bytes"
	"testing"

	"github.com/jade-lisp/streams/internal/lispval"
)

func TestOutputAccumulatorRoundTrip(t *testing.T) {
	env := NewEnv()
	out := MakeStringOutputStream()

	payload := []byte("the quick brown fox jumps over the lazy dog")
	for _, b := range payload {
		if _, err := PutChar(env, out, int(b)); err != nil {
			t.Fatal(err)
		}
	}

	str := out.Car.(*lispval.Str)
	if !bytes.Equal(str.Data(), payload) {
		t.Fatalf("accumulated = %q; want %q", str.Data(), payload)
	}

	cap := str.Cap()
	if cap <= len(payload) {
		t.Fatalf("capacity %d not > length %d", cap, len(payload))
	}
	// smallest power-of-two-or-32 strictly greater than len(payload)
	want := 32
	for want <= len(payload) {
		want *= 2
	}
	if cap != want {
		t.Fatalf("capacity = %d; want %d", cap, want)
	}
}

func TestOutputAccumulatorBulkGrowthPreservesPrefix(t *testing.T) {
	env := NewEnv()
	out := MakeStringOutputStream()

	chunks := [][]byte{
		[]byte("hello, "),
		[]byte("world! this is a somewhat longer chunk to force growth"),
		[]byte("!!"),
	}
	var want []byte
	for _, c := range chunks {
		n, err := PutBytes(env, out, c)
		if err != nil || n != len(c) {
			t.Fatalf("PutBytes(%q) = %d, %v", c, n, err)
		}
		want = append(want, c...)
	}

	str := out.Car.(*lispval.Str)
	if !bytes.Equal(str.Data(), want) {
		t.Fatalf("accumulated = %q; want %q", str.Data(), want)
	}
}

func TestWriteThenGetOutputStreamString(t *testing.T) {
	env := NewEnv()
	out := MakeStringOutputStream()

	if _, err := Write(env, out, lispval.StringDup("hello"), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := Write(env, out, lispval.Int('!'), nil); err != nil {
		t.Fatal(err)
	}
	str, err := GetOutputStreamString(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(str.Data()); got != "hello!" {
		t.Fatalf("get-output-stream-string = %q; want \"hello!\"", got)
	}

	str2, err := GetOutputStreamString(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(str2.Data()); got != "" {
		t.Fatalf("second get-output-stream-string = %q; want \"\"", got)
	}
}

func TestIntStringZeroByteTreatedAsEOF(t *testing.T) {
	env := NewEnv()
	str := lispval.NewString(3)
	copy(str.Bytes, []byte{'a', 0, 'b'})
	s := MakeStringInputStream(str, 0)

	c, err := GetChar(env, s)
	if err != nil || c != 'a' {
		t.Fatalf("GetChar#1 = %d, %v", c, err)
	}
	c, err = GetChar(env, s)
	if err != nil || c != EOF {
		t.Fatalf("GetChar#2 over zero byte = %d, %v; want EOF", c, err)
	}
}
