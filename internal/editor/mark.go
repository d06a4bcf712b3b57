package editor

import "github.com/jade-lisp/streams/internal/streamtag"

// Mark is a buffer + position pair the buffer-editing layer keeps up to
// date across edits. "Resident" means the mark is currently attached to a
// loaded buffer.
type Mark struct {
	streamtag.Marker

	Buffer   *Buffer
	Pos      Position
	resident bool
}

// NewMark creates a mark attached to b at pos.
func NewMark(b *Buffer, pos Position) *Mark {
	return &Mark{Buffer: b, Pos: pos, resident: true}
}

// Resident reports whether the mark is attached to a loaded buffer. A
// mark used as a stream while non-resident is structural misuse
// ("Marks used as streams must be resident").
func (m *Mark) Resident() bool { return m.resident }

// Detach marks m non-resident (e.g. its buffer was killed).
func (m *Mark) Detach() { m.resident = false }
