package stream

import "github.com/jade-lisp/streams/internal/lispval"

// Bindings is the table of Lisp-visible names registered at init,
// mirroring streams_init, plus the teardown hook. It lists the names only;
// it does not adapt the exported functions of this package to Callable.
type Bindings struct {
	env *Env
}

// NewBindings returns the binding table for env (streams_init); Shutdown
// acts on env's file registry.
func NewBindings(env *Env) *Bindings {
	return &Bindings{env: env}
}

// Names lists every symbol streams_init would intern.
func (b *Bindings) Names() []string {
	return []string{
		"write", "read-char", "read-line", "copy-stream",
		"read", "print", "prin1", "princ", "format",
		"make-string-input-stream", "make-string-output-stream",
		"get-output-stream-string", "streamp",
		"open", "close", "flush-file", "filep", "file-bound-p",
		"file-binding", "file-eof-p", "read-file-until",
		"stdin-file", "stdout-file", "stderr-file",
	}
}

// Shutdown force-closes every remaining file handle (streams_kill), run
// once at interpreter teardown.
func (b *Bindings) Shutdown() {
	b.env.Files.Shutdown()
}

// Filep reports whether v is a *File (filep).
func Filep(v any) bool {
	_, ok := v.(*File)
	return ok
}

// FileBoundP is file-bound-p: bad-arg if v is not a *File.
func FileBoundP(v any) (bool, error) {
	f, ok := v.(*File)
	if !ok {
		return false, signal(KindBadArg, v)
	}
	return f.Bound(), nil
}

// FileBinding is file-binding: the bound name, or the nil value if
// unbound or not a file.
func FileBinding(v any) any {
	f, ok := v.(*File)
	if !ok || !f.Bound() {
		return lispval.Nil
	}
	return lispval.StringDup(f.Name())
}

// FileEOFP is file-eof-p: bad-arg if v is not a *File.
func FileEOFP(v any) (bool, error) {
	f, ok := v.(*File)
	if !ok {
		return false, signal(KindBadArg, v)
	}
	return FileAtEOF(f), nil
}
