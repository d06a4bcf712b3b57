// Package editor stands in for the host editor's buffer model: line
// arrays, cursor and mark objects, the insertion primitive, the
// restriction window, and the read-only flag. The stream subsystem only
// calls the handful of operations exposed here.
package editor

import "github.com/jade-lisp/streams/internal/streamtag"

// Position addresses one cell inside a Buffer's line array.
type Position struct {
	Row, Col int
}

// Line is one line of buffer text. Len includes the trailing terminator
// slot (a '\n' on every line this package creates, the last one included;
// Position I/O yields it as a newline only when another line follows),
// mirroring the
// original ln_Strlen convention so Position I/O's off-by-one logic carries
// over unchanged.
type Line struct {
	Bytes []byte
}

func (l *Line) Len() int { return len(l.Bytes) }

// Buffer is a minimal in-memory stand-in for the editor's text object.
type Buffer struct {
	streamtag.Marker

	Name     string
	Lines    []Line
	Cursor   Position
	ReadOnly bool

	// restriction narrows [0, len(Lines)) the way a buffer's restriction
	// would; zero value means "whole buffer".
	restrictionEnd int
}

// NewBuffer creates an empty, unrestricted, writable buffer named name.
func NewBuffer(name string) *Buffer {
	return &Buffer{Name: name, Lines: []Line{{Bytes: []byte{'\n'}}}}
}

// LogicalEnd is the row one past the last line usable by Position I/O,
// honoring any restriction.
func (b *Buffer) LogicalEnd() int {
	if b.restrictionEnd > 0 && b.restrictionEnd <= len(b.Lines) {
		return b.restrictionEnd
	}
	return len(b.Lines)
}

// Restrict narrows the buffer's logical end to row (exclusive). Passing 0
// removes the restriction.
func (b *Buffer) Restrict(row int) { b.restrictionEnd = row }

// CursorPtr returns a pointer to the buffer's cursor position, the
// argument Position I/O advances in place for the Buffer stream variant.
func (b *Buffer) CursorPtr() *Position { return &b.Cursor }

// RestrictionEnd returns the position just past the buffer's current
// restriction, the write target for the (Buffer . t) stream variant.
func (b *Buffer) RestrictionEnd() Position {
	end := b.LogicalEnd()
	if end == 0 {
		return Position{}
	}
	last := &b.Lines[end-1]
	return Position{Row: end - 1, Col: last.Len() - 1}
}

// PadPos pads row with spaces if pos lies past the current line content,
// matching the source's pad_pos contract: the insertion primitive may
// extend a short line with spaces before splicing text in. Returns false
// if row is out of range.
func (b *Buffer) PadPos(pos Position) bool {
	if pos.Row < 0 || pos.Row >= len(b.Lines) {
		return false
	}
	line := &b.Lines[pos.Row]
	// The terminator slot is always present; pad content before it.
	termIdx := line.Len() - 1
	if pos.Col > termIdx {
		pad := pos.Col - termIdx
		nb := make([]byte, 0, line.Len()+pad)
		nb = append(nb, line.Bytes[:termIdx]...)
		for i := 0; i < pad; i++ {
			nb = append(nb, ' ')
		}
		nb = append(nb, line.Bytes[termIdx:]...)
		line.Bytes = nb
	}
	return true
}

// InsertString splices buf into the buffer at pos, returning the position
// just past the inserted text, or (Position{}, false) on failure (a
// read-only buffer or a row out of range). A literal newline byte in buf
// splits the line and continues on a new one. This is the buffer
// collaborator's insertion primitive.
func (b *Buffer) InsertString(buf []byte, pos Position) (Position, bool) {
	if b.ReadOnly {
		return Position{}, false
	}
	if !b.PadPos(pos) {
		return Position{}, false
	}
	cur := pos
	for _, c := range buf {
		line := &b.Lines[cur.Row]
		termIdx := line.Len() - 1
		if c == '\n' {
			tail := append([]byte(nil), line.Bytes[cur.Col:]...)
			line.Bytes = append(append([]byte(nil), line.Bytes[:cur.Col]...), '\n')
			newLine := Line{Bytes: tail}
			b.Lines = append(b.Lines, Line{})
			copy(b.Lines[cur.Row+2:], b.Lines[cur.Row+1:])
			b.Lines[cur.Row+1] = newLine
			cur = Position{Row: cur.Row + 1, Col: 0}
			continue
		}
		nb := make([]byte, 0, line.Len()+1)
		nb = append(nb, line.Bytes[:cur.Col]...)
		nb = append(nb, c)
		nb = append(nb, line.Bytes[cur.Col:termIdx+1]...)
		line.Bytes = nb
		cur.Col++
	}
	return cur, true
}
