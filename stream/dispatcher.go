// Package stream implements the polymorphic stream subsystem: the tagged
// eight-variant stream value, the four dispatch primitives, the escape
// reader, and the small set of derived character-level operations built
// on them. It is a Go port of streams.c from the librep/Jade Lisp engine
// (see DESIGN.md for the porting decisions).
package stream

import (
	"github.com/jade-lisp/streams/internal/editor"
	"github.com/jade-lisp/streams/internal/gc"
	"github.com/jade-lisp/streams/internal/lispval"
	"github.com/jade-lisp/streams/internal/logger"
	"github.com/jade-lisp/streams/internal/procio"
)

// EOF is the distinguished out-of-band sentinel returned by GetChar and
// the derived readers, distinct from every byte value 0..255.
const EOF = -1

// GetChar reads one byte from stream, or EOF.
func GetChar(env *Env, s any) (int, error) {
	s, resolved := resolveDefault(env, s, true)
	if !resolved {
		return EOF, nil
	}
	switch v := s.(type) {
	case *File:
		return getcFile(v), nil

	case *editor.Mark:
		if !v.Resident() {
			return EOF, signal(KindInvalidStream, s, "Marks used as streams must be resident")
		}
		return editor.PosGetC(v.Buffer, &v.Pos), nil

	case *editor.Buffer:
		return editor.PosGetC(v, v.CursorPtr()), nil

	case *lispval.Cons:
		if n, str, ok := asIntString(v); ok {
			return getcIntString(v, n, str), nil
		}
		if isBufferPos(v) {
			return consPosGetC(v), nil
		}
		if v.Car == lispval.Lambda {
			if fn, ok := v.Cdr.(Callable); ok {
				return callGetChar(fn)
			}
		}
		return EOF, signal(KindInvalidStream, s)

	case lispval.Symbol:
		if v == lispval.T || v.Name == "nil" {
			return EOF, signal(KindInvalidStream, s)
		}
		fn, ok := env.Functions[v.Name]
		if !ok {
			return EOF, signal(KindInvalidStream, s)
		}
		return callGetChar(fn)

	case *procio.Process:
		return EOF, signal(KindInvalidStream, s, "Processes are not input streams")

	default:
		logger.Trace.Printf("get-char: invalid stream %T", s)
		return EOF, signal(KindInvalidStream, s)
	}
}

func callGetChar(fn Callable) (int, error) {
	restore := gc.Inhibit()
	defer restore()
	res, ok := fn.Call0()
	if !ok {
		return EOF, nil
	}
	if n, ok := res.(lispval.Int); ok {
		return int(n), nil
	}
	if n, ok := res.(int); ok {
		return n, nil
	}
	return EOF, nil
}

// UngetChar pushes c back so the next GetChar on the same stream returns
// it. Must only be called immediately after a
// successful read from the same stream.
func UngetChar(env *Env, s any, c int) (bool, error) {
	s, resolved := resolveDefault(env, s, true)
	if !resolved {
		return false, nil
	}
	switch v := s.(type) {
	case *File:
		return ungetcFile(v), nil

	case *editor.Mark:
		editor.PosUngetC(v.Buffer, &v.Pos)
		return true, nil

	case *editor.Buffer:
		editor.PosUngetC(v, v.CursorPtr())
		return true, nil

	case *lispval.Cons:
		if n, _, ok := asIntString(v); ok {
			v.Car = n - 1
			return true, nil
		}
		if isBufferPos(v) {
			consPosUngetC(v)
			return true, nil
		}
		if v.Car == lispval.Lambda {
			if fn, ok := v.Cdr.(Callable); ok {
				return callUngetChar(fn, c)
			}
		}
		return false, nil

	case lispval.Symbol:
		if v == lispval.T || v.Name == "nil" {
			return false, nil
		}
		fn, ok := env.Functions[v.Name]
		if !ok {
			return false, nil
		}
		return callUngetChar(fn, c)

	default:
		return false, nil
	}
}

func callUngetChar(fn Callable, c int) (bool, error) {
	restore := gc.Inhibit()
	defer restore()
	res, ok := fn.Call1(lispval.Int(c))
	if !ok || lispval.IsNil(res) {
		return false, nil
	}
	return true, nil
}

// PutChar writes one byte to stream, returning 1 on success or 0 on
// failure.
func PutChar(env *Env, s any, c int) (n int, err error) {
	// Position I/O reports a failed write as EOF; put-char reports it as 0.
	defer func() {
		if n == EOF {
			n = 0
		}
	}()
	s, resolved := resolveDefault(env, s, false)
	if !resolved {
		return 0, nil
	}
	switch v := s.(type) {
	case *File:
		return putcFile(v, byte(c)), nil

	case *editor.Mark:
		if !v.Resident() {
			return 0, signal(KindInvalidStream, s, "Marks used as streams must be resident")
		}
		return editor.PosPutC(v.Buffer, &v.Pos, byte(c)), nil

	case *editor.Buffer:
		return editor.PosPutC(v, v.CursorPtr(), byte(c)), nil

	case *lispval.Cons:
		if str, ok := asStringAccum(v); ok {
			putAccumByte(v, str, byte(c), minAccumGrowth(env))
			return 1, nil
		}
		if isBufferPos(v) {
			return consPosPutC(v, byte(c)), nil
		}
		if buf, ok := asBufferRestrictionEnd(v); ok {
			pos := buf.RestrictionEnd()
			return editor.PosPutC(buf, &pos, byte(c)), nil
		}
		if v.Car == lispval.Lambda {
			if fn, ok := v.Cdr.(Callable); ok {
				return callPutChar(fn, c)
			}
		}
		return 0, signal(KindInvalidStream, s)

	case lispval.Symbol:
		if v.Name == "nil" {
			return 0, signal(KindInvalidStream, s)
		}
		if v == lispval.T {
			env.statusLine().Append(byte(c))
			return 1, nil
		}
		fn, ok := env.Functions[v.Name]
		if !ok {
			return 0, signal(KindInvalidStream, s)
		}
		return callPutChar(fn, c)

	case *procio.Process:
		return v.Write([]byte{byte(c)}), nil

	default:
		return 0, signal(KindInvalidStream, s)
	}
}

func callPutChar(fn Callable, c int) (int, error) {
	restore := gc.Inhibit()
	defer restore()
	res, ok := fn.Call1(lispval.Int(c))
	if !ok || lispval.IsNil(res) {
		return 0, nil
	}
	return 1, nil
}

// PutBytes writes buf to stream in bulk, returning the byte count
// written.
func PutBytes(env *Env, s any, buf []byte) (int, error) {
	s, resolved := resolveDefault(env, s, false)
	if !resolved {
		return 0, nil
	}
	switch v := s.(type) {
	case *File:
		return putnFile(v, buf), nil

	case *editor.Mark:
		if !v.Resident() {
			return 0, signal(KindInvalidStream, s, "Marks used as streams must be resident")
		}
		return editor.PosPutN(v.Buffer, &v.Pos, buf), nil

	case *editor.Buffer:
		return editor.PosPutN(v, v.CursorPtr(), buf), nil

	case *lispval.Cons:
		if str, ok := asStringAccum(v); ok {
			putAccumBytes(v, str, buf, minAccumGrowth(env))
			return len(buf), nil
		}
		if isBufferPos(v) {
			return consPosPutN(v, buf), nil
		}
		if b, ok := asBufferRestrictionEnd(v); ok {
			pos := b.RestrictionEnd()
			return editor.PosPutN(b, &pos, buf), nil
		}
		if v.Car == lispval.Lambda {
			if fn, ok := v.Cdr.(Callable); ok {
				return callPutBytes(fn, buf)
			}
		}
		return 0, signal(KindInvalidStream, s)

	case lispval.Symbol:
		if v.Name == "nil" {
			return 0, signal(KindInvalidStream, s)
		}
		if v == lispval.T {
			env.statusLine().AppendN(buf)
			return len(buf), nil
		}
		fn, ok := env.Functions[v.Name]
		if !ok {
			return 0, signal(KindInvalidStream, s)
		}
		return callPutBytes(fn, buf)

	case *procio.Process:
		return v.Write(buf), nil

	default:
		return 0, signal(KindInvalidStream, s)
	}
}

func callPutBytes(fn Callable, buf []byte) (int, error) {
	restore := gc.Inhibit()
	defer restore()
	res, ok := fn.Call1(string(buf))
	if !ok || lispval.IsNil(res) {
		return 0, nil
	}
	if n, ok := res.(lispval.Int); ok {
		return int(n), nil
	}
	return len(buf), nil
}

// resolveDefault implements the "nil means look up standard-input/
// standard-output" dynamic-scoping rule. resolved is false
// only when the stream argument and the dynamic binding are both nil, in
// which case the primitive returns its zero result without signalling.
func resolveDefault(env *Env, s any, forRead bool) (any, bool) {
	if !lispval.IsNil(s) {
		return s, true
	}
	var dyn any
	if forRead {
		dyn = env.StandardInput
	} else {
		dyn = env.StandardOutput
	}
	if lispval.IsNil(dyn) {
		return nil, false
	}
	return dyn, true
}

// minAccumGrowth resolves the output accumulator's doubling-minimum knob,
// falling back to the source's hard-coded 32 if unset (config.Default
// already sets it, but callers may hand in a zero-value Settings).
func minAccumGrowth(env *Env) int {
	if env.Config.MinAccumGrowth <= 0 {
		return 32
	}
	return env.Config.MinAccumGrowth
}

// --- cons-shape structural inspection helpers ---

// asIntString recognizes the (Int . String) read-only cursor shape.
func asIntString(c *lispval.Cons) (lispval.Int, *lispval.Str, bool) {
	n, ok1 := c.Car.(lispval.Int)
	str, ok2 := c.Cdr.(*lispval.Str)
	if ok1 && ok2 {
		return n, str, true
	}
	return 0, nil, false
}

// asStringAccum recognizes the (String . Int) output-accumulator shape.
func asStringAccum(c *lispval.Cons) (*lispval.Str, bool) {
	str, ok1 := c.Car.(*lispval.Str)
	_, ok2 := c.Cdr.(lispval.Int)
	if ok1 && ok2 {
		return str, true
	}
	return nil, false
}

// isBufferPos recognizes the (Buffer . Pos) shape.
func isBufferPos(c *lispval.Cons) bool {
	_, ok1 := c.Car.(*editor.Buffer)
	_, ok2 := c.Cdr.(editor.Position)
	return ok1 && ok2
}

// consPosGetC/consPosUngetC/consPosPutC/consPosPutN perform Position I/O
// against a (Buffer . Pos) cons, writing the advanced position back into
// the cons's Cdr. A Cons's Cdr is `any`, not an addressable struct field,
// so the read-mutate-writeback is spelled out explicitly rather than
// taking &pos directly.
func consPosGetC(c *lispval.Cons) int {
	buf := c.Car.(*editor.Buffer)
	pos := c.Cdr.(editor.Position)
	r := editor.PosGetC(buf, &pos)
	c.Cdr = pos
	return r
}

func consPosUngetC(c *lispval.Cons) {
	buf := c.Car.(*editor.Buffer)
	pos := c.Cdr.(editor.Position)
	editor.PosUngetC(buf, &pos)
	c.Cdr = pos
}

func consPosPutC(c *lispval.Cons, b byte) int {
	buf := c.Car.(*editor.Buffer)
	pos := c.Cdr.(editor.Position)
	r := editor.PosPutC(buf, &pos, b)
	c.Cdr = pos
	return r
}

func consPosPutN(c *lispval.Cons, buf []byte) int {
	b := c.Car.(*editor.Buffer)
	pos := c.Cdr.(editor.Position)
	r := editor.PosPutN(b, &pos, buf)
	c.Cdr = pos
	return r
}

// asBufferRestrictionEnd recognizes the (Buffer . t) append shape.
func asBufferRestrictionEnd(c *lispval.Cons) (*editor.Buffer, bool) {
	buf, ok1 := c.Car.(*editor.Buffer)
	sym, ok2 := c.Cdr.(lispval.Symbol)
	if ok1 && ok2 && sym == lispval.T {
		return buf, true
	}
	return nil, false
}

