package stream

import (
	"bufio"
	"os"
)

// bufReader adapts Go's io.Reader to the C stdio getc/ungetc/feof
// contract the File variant needs: single-byte lookahead and a sticky EOF
// flag. bufio.Reader already supports one-byte UnreadByte, which covers
// the unget-immediately-after-a-successful-read discipline exactly.
type bufReader struct {
	r   *bufio.Reader
	eof bool
}

func newBufReader(f *os.File) *bufReader {
	return &bufReader{r: bufio.NewReader(f)}
}

// getc implements C's getc(3): one byte, or EOF.
func (b *bufReader) getc() int {
	c, err := b.r.ReadByte()
	if err != nil {
		b.eof = true
		return editorEOF
	}
	return int(c)
}

// ungetc implements C's ungetc(3): push one byte back. Returns false if
// the pushback buffer is already occupied, which cannot happen as long as
// unget immediately follows a successful read, but
// bufio.Reader.UnreadByte can fail so the error is still checked.
func (b *bufReader) ungetc() bool {
	if err := b.r.UnreadByte(); err != nil {
		return false
	}
	b.eof = false
	return true
}

const editorEOF = -1

// fgets reads up to n-1 bytes or a newline (inclusive), matching C's
// fgets(buf, n, fh): the original read-line/read-file-until both pass a
// fixed 400-byte buffer through this contract.
func (b *bufReader) fgets(n int) (string, bool) {
	if n <= 1 {
		return "", false
	}
	out := make([]byte, 0, n-1)
	for len(out) < n-1 {
		c, err := b.r.ReadByte()
		if err != nil {
			b.eof = true
			break
		}
		out = append(out, c)
		if c == '\n' {
			break
		}
	}
	if len(out) == 0 {
		return "", false
	}
	return string(out), true
}

// getcFile performs a getc on f's handle, lazily attaching a bufReader.
func getcFile(f *File) int {
	if !f.bound {
		return editorEOF
	}
	if f.readBuf == nil {
		f.readBuf = newBufReader(f.handle)
	}
	return f.readBuf.getc()
}

func ungetcFile(f *File) bool {
	if !f.bound || f.readBuf == nil {
		return false
	}
	return f.readBuf.ungetc()
}

func putcFile(f *File, c byte) int {
	if !f.bound {
		return 0
	}
	if _, err := f.handle.Write([]byte{c}); err != nil {
		return 0
	}
	return 1
}

func putnFile(f *File, buf []byte) int {
	if !f.bound {
		return 0
	}
	n, _ := f.handle.Write(buf)
	return n
}

func readFileLine(f *File, maxLen int) (string, bool) {
	if !f.bound {
		return "", false
	}
	if f.readBuf == nil {
		f.readBuf = newBufReader(f.handle)
	}
	return f.readBuf.fgets(maxLen)
}
