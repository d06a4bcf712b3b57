// Package lispval stands in for the host Lisp value system:
// integer/string/cons/symbol tagging, the allocator, and the garbage
// collector. The stream subsystem only ever uses the predicates,
// accessors, and constructors exposed here, never the representation
// itself.
package lispval

import "github.com/jade-lisp/streams/internal/streamtag"

// Int is a boxed Lisp integer. Characters and byte values travel as Int.
type Int int

// Symbol is a boxed Lisp symbol, identified by name. Two symbols with the
// same name are interned to the same value by the (stubbed) reader; this
// package does not implement interning itself, callers are expected to
// reuse the Nil/T singletons below.
type Symbol struct {
	streamtag.Marker
	Name string
}

var (
	// Nil is the canonical empty-list / false value.
	Nil = Symbol{Name: "nil"}
	// T is the canonical non-nil value, also the status-line stream tag.
	T = Symbol{Name: "t"}
	// Lambda tags a callable cons of the form (lambda . args).
	Lambda = Symbol{Name: "lambda"}
)

// IsNil reports whether v is the Lisp nil value (an untyped nil or the Nil
// symbol — the stand-in reader may hand back either).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(Symbol); ok {
		return s.Name == "nil"
	}
	return false
}

// Str is a mutable Lisp string: Bytes holds capacity worth of storage
// (including the trailing NUL slot librep always keeps live) while
// Length is the logical length, tracked separately.
type Str struct {
	Bytes  []byte
	Length int
}

// NewString allocates a string with the given logical length, zero-filled,
// with one extra capacity byte for the trailing NUL make_string always
// reserved.
func NewString(length int) *Str {
	return &Str{Bytes: make([]byte, length+1), Length: length}
}

// StringDup duplicates s in its entirety (string_dup).
func StringDup(s string) *Str {
	return StringDupN([]byte(s), len(s))
}

// StringDupN duplicates the first n bytes of buf (string_dupn).
func StringDupN(buf []byte, n int) *Str {
	out := NewString(n)
	copy(out.Bytes, buf[:n])
	out.Bytes[n] = 0
	return out
}

// Data returns the logical contents of the string.
func (s *Str) Data() []byte {
	return s.Bytes[:s.Length]
}

// Cap reports the allocated capacity, excluding the reserved NUL slot,
// i.e. the capacity integer of the (String . Int) stream shape.
func (s *Str) Cap() int {
	if len(s.Bytes) == 0 {
		return 0
	}
	return len(s.Bytes) - 1
}

// SetLen sets the logical length (set_string_len). The caller must have
// already ensured capacity.
func (s *Str) SetLen(n int) {
	s.Length = n
	if n < len(s.Bytes) {
		s.Bytes[n] = 0
	}
}

// Cons is a Lisp pair. Several of the eight stream shapes are specific
// (car, cdr) type combinations riding on Cons — see the asIntString,
// asStringAccum, isBufferPos and asBufferRestrictionEnd recognizers in
// package stream.
type Cons struct {
	streamtag.Marker
	Car any
	Cdr any
}

// NewCons builds a Cons (cons).
func NewCons(car, cdr any) *Cons {
	return &Cons{Car: car, Cdr: cdr}
}
