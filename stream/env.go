package stream

import (
	"github.com/jade-lisp/streams/internal/config"
	"github.com/jade-lisp/streams/internal/editor"
)

// Printer renders a Lisp value to a stream, the host printer
// collaborator (print_val / princ_val) this package delegates to.
type Printer interface {
	// Print writes the readable ("prin1"/"print") representation of v.
	Print(env *Env, stream any, v any) error
	// Princ writes the unquoted ("princ") representation of v.
	Princ(env *Env, stream any, v any) error
}

// Reader reads one Lisp object from a stream, the out-of-scope reader
// collaborator (the `read` primitive in the source). c is the first
// lookahead character already consumed from stream.
type Reader interface {
	ReadObject(env *Env, stream any, c int) (v any, lookahead int, err error)
}

// Env is the interpreter state threaded through every stream operation. It
// carries the "dynamic bindings" of standard-input/standard-output
// explicitly, per DESIGN.md's "default-stream fallback via dynamic
// binding" note, instead of as host-global mutable state.
type Env struct {
	StandardInput  any
	StandardOutput any

	Config config.Settings

	Files *FileRegistry

	Reader  Reader
	Printer Printer

	// Functions resolves a callable-stream symbol (any symbol other than
	// t/nil) to its function binding, standing in for the interpreter's
	// dynamic-variable/function lookup.
	Functions map[string]Callable

	// Interrupt is the cooperative flag copy-stream polls between reads
	// (the TEST_INT check in librep). A real interpreter sets this from a
	// signal handler; tests set it directly.
	Interrupt *bool

	// status is the `t`-stream's editor status-line collaborator, created
	// lazily on first use.
	status *editor.StatusLine
}

// StatusLine returns the editor status-line collaborator backing the `t`
// stream variant, creating it (with no fallback sink) on first use. Call
// BindStatusLine first to attach a fallback sink such as
// editor.NewSyslogStatusSink.
func (e *Env) StatusLine() *editor.StatusLine {
	return e.statusLine()
}

// BindStatusLine attaches s as the status-line collaborator, e.g. after
// constructing one with a syslog fallback sink.
func (e *Env) BindStatusLine(s *editor.StatusLine) {
	e.status = s
}

func (e *Env) statusLine() *editor.StatusLine {
	if e.status == nil {
		e.status = &editor.StatusLine{}
	}
	return e.status
}

// NewEnv builds an Env with default configuration and a fresh file
// registry. StandardInput/StandardOutput are left nil (meaning "no
// fallback") until the caller binds them, e.g. via stdin-file/stdout-file.
func NewEnv() *Env {
	interrupt := false
	return &Env{
		Config:    config.Default(),
		Files:     NewFileRegistry(),
		Interrupt: &interrupt,
		Functions: make(map[string]Callable),
	}
}

func (e *Env) interrupted() bool {
	return e.Interrupt != nil && *e.Interrupt
}
