package stream

import "github.com/jade-lisp/streams/internal/lispval"

// getcIntString reads the byte at offset n of str for the (Int . String)
// read-only cursor shape, advancing the cons's Car on success.
//
// A zero byte is treated as EOF even though Str tracks its own logical
// length: librep used the string's NUL terminator as its end-of-input
// signal rather than comparing n against the length, and existing callers
// may rely on that, so the quirk is kept (see DESIGN.md).
func getcIntString(c *lispval.Cons, n lispval.Int, str *lispval.Str) int {
	if int(n) < 0 || int(n) >= str.Length {
		return EOF
	}
	b := str.Bytes[n]
	if b == 0 {
		return EOF
	}
	c.Car = n + 1
	return int(b)
}

// putAccumByte appends one byte to a (String . Int) output accumulator,
// growing it first if needed.
// minGrowth is env.Config.MinAccumGrowth (librep hard-codes 32).
func putAccumByte(c *lispval.Cons, str *lispval.Str, b byte, minGrowth int) {
	actual := int(c.Cdr.(lispval.Int))
	length := str.Length
	if length+1 >= actual {
		newLen := actual
		if newLen < minGrowth/2 {
			newLen = minGrowth
		} else {
			newLen *= 2
		}
		grown := lispval.NewString(newLen)
		copy(grown.Bytes, str.Bytes[:length])
		*str = *grown
		c.Cdr = lispval.Int(newLen)
		actual = newLen
	}
	str.Bytes[length] = b
	str.Bytes[length+1] = 0
	str.SetLen(length + 1)
}

// putAccumBytes appends buf to a (String . Int) output accumulator in one
// splice, using the bulk growth policy:
// grow when capacity <= current length + new length + 1, to at least
// that much and at least the doubling minimum. minGrowth is
// env.Config.MinAccumGrowth (librep hard-codes 32).
func putAccumBytes(c *lispval.Cons, str *lispval.Str, buf []byte, minGrowth int) {
	actual := int(c.Cdr.(lispval.Int))
	length := str.Length
	newLen := length + len(buf) + 1
	if actual <= newLen {
		doubled := actual
		if doubled < minGrowth/2 {
			doubled = minGrowth
		} else {
			doubled *= 2
		}
		if doubled > newLen {
			newLen = doubled
		}
		grown := lispval.NewString(newLen)
		copy(grown.Bytes, str.Bytes[:length])
		*str = *grown
		c.Cdr = lispval.Int(newLen)
	}
	copy(str.Bytes[length:], buf)
	str.Bytes[length+len(buf)] = 0
	str.SetLen(length + len(buf))
}
