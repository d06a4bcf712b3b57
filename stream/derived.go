package stream

import (
	"github.com/jade-lisp/streams/internal/editor"
	"github.com/jade-lisp/streams/internal/lispval"
	"github.com/jade-lisp/streams/internal/procio"
)

// ReadChar is read-char: one primitive read, EOF mapped to the nil
// value.
func ReadChar(env *Env, s any) (any, error) {
	c, err := GetChar(env, s)
	if err != nil {
		return nil, err
	}
	if c == EOF {
		return lispval.Nil, nil
	}
	return lispval.Int(c), nil
}

// ReadLine is read-line: a fixed-size buffer of
// env.Config.ReadLineBufferSize bytes, one of which is the fgets-style
// terminator slot, so a long line is truncated to
// ReadLineBufferSize-1 bytes. The same limit applies whether s
// is a file (the fgets fast path) or a generic stream (the accumulate
// loop), unlike the original C paths, which disagreed by one byte.
func ReadLine(env *Env, s any) (any, error) {
	limit := env.Config.ReadLineBufferSize
	if limit <= 1 {
		limit = 400
	}
	if f, ok := s.(*File); ok {
		line, ok := readFileLine(f, limit)
		if !ok {
			return lispval.Nil, nil
		}
		return lispval.StringDup(line), nil
	}

	buf := make([]byte, 0, limit-1)
	for len(buf) < limit-1 {
		c, err := GetChar(env, s)
		if err != nil {
			return nil, err
		}
		if c == EOF {
			break
		}
		buf = append(buf, byte(c))
		if c == '\n' {
			break
		}
	}
	if len(buf) == 0 {
		return lispval.Nil, nil
	}
	return lispval.StringDupN(buf, len(buf)), nil
}

// CopyStream streams src to dst in chunks, honoring the cooperative
// interrupt flag between reads. Returns
// the byte count, nil if zero bytes were copied, or the null value
// immediately if the interrupt flag is raised mid-copy.
func CopyStream(env *Env, src, dst any) (any, error) {
	chunk := env.Config.CopyStreamChunkSize
	if chunk <= 0 {
		chunk = 512
	}
	buf := make([]byte, 0, chunk)
	total := 0
	for {
		if env.interrupted() {
			// Aborted: the count is meaningless, so the null value is
			// returned and any buffered remainder is dropped.
			return lispval.Nil, nil
		}
		c, err := GetChar(env, src)
		if err != nil {
			return nil, err
		}
		if c == EOF {
			break
		}
		buf = append(buf, byte(c))
		total++
		if len(buf) == chunk {
			if _, err := PutBytes(env, dst, buf); err != nil {
				return nil, err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if _, err := PutBytes(env, dst, buf); err != nil {
			return nil, err
		}
	}
	if total == 0 {
		return lispval.Nil, nil
	}
	return lispval.Int(total), nil
}

// MakeStringInputStream builds the (Int . String) read-only cursor
// shape.
func MakeStringInputStream(s *lispval.Str, start int) *lispval.Cons {
	return lispval.NewCons(lispval.Int(start), s)
}

// MakeStringOutputStream builds the ("" . 0) output accumulator
// shape.
func MakeStringOutputStream() *lispval.Cons {
	return lispval.NewCons(lispval.NewString(0), lispval.Int(0))
}

// GetOutputStreamString returns the accumulator's logical payload,
// truncated to exact length when capacity exceeds it, then resets the
// stream to empty.
func GetOutputStreamString(c *lispval.Cons) (*lispval.Str, error) {
	str, ok := c.Car.(*lispval.Str)
	if !ok {
		return nil, signal(KindBadArg, c)
	}
	var out *lispval.Str
	if str.Cap() == str.Length {
		out = str
	} else {
		out = lispval.StringDupN(str.Data(), str.Length)
	}
	c.Car = lispval.NewString(0)
	c.Cdr = lispval.Int(0)
	return out, nil
}

// Streamp is the structural streamp predicate: true iff v matches one
// of the eight stream shapes, by shape inspection alone.
func Streamp(v any) bool {
	switch c := v.(type) {
	case *File, *editor.Mark, *editor.Buffer, *procio.Process:
		return true

	case *lispval.Cons:
		if _, _, ok := asIntString(c); ok {
			return true
		}
		if _, ok := asStringAccum(c); ok {
			return true
		}
		if isBufferPos(c) {
			return true
		}
		if _, ok := asBufferRestrictionEnd(c); ok {
			return true
		}
		return c.Car == lispval.Lambda

	case lispval.Symbol:
		// Every symbol except nil structurally qualifies: t is the
		// status-line shape, any other symbol is a callable binding
		// name.
		return c.Name != "nil"
	}
	return false
}
