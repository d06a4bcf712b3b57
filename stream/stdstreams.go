package stream

import (
	"os"

	"github.com/jade-lisp/streams/internal/gc"
)

// StdStreams lazily wraps the process's standard streams as pinned File
// objects. Each is constructed once and reused on every
// subsequent call.
type StdStreams struct {
	registry *FileRegistry
	stdin    *File
	stdout   *File
	stderr   *File
}

// NewStdStreams returns a StdStreams bound to registry.
func NewStdStreams(registry *FileRegistry) *StdStreams {
	return &StdStreams{registry: registry}
}

func wrapStd(registry *FileRegistry, existing **File, handle *os.File, name string) *File {
	if *existing != nil {
		return *existing
	}
	f, _ := Open(registry, "", "", nil)
	f.handle = handle
	f.name = name
	f.bound = true
	f.dontClose = true
	gc.Pin(f)
	*existing = f
	return f
}

// Stdin returns the singleton file object wrapping os.Stdin
// (stdin-file).
func (s *StdStreams) Stdin() *File { return wrapStd(s.registry, &s.stdin, os.Stdin, "<stdin>") }

// Stdout returns the singleton file object wrapping os.Stdout
// (stdout-file).
func (s *StdStreams) Stdout() *File { return wrapStd(s.registry, &s.stdout, os.Stdout, "<stdout>") }

// Stderr returns the singleton file object wrapping os.Stderr
// (stderr-file).
func (s *StdStreams) Stderr() *File { return wrapStd(s.registry, &s.stderr, os.Stderr, "<stderr>") }
