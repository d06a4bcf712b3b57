package stream

import (
	"os"
	"regexp"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"

	"github.com/jade-lisp/streams/internal/logger"
	"github.com/jade-lisp/streams/internal/streamtag"
)

// File owns a file handle, a bound name (or none), and a "don't close"
// flag.
type File struct {
	streamtag.Marker

	id ulid.ULID

	handle     *os.File
	name       string
	bound      bool
	dontClose  bool
	readBuf    *bufReader
	registered bool

	marked bool
}

// ID is a debug identifier distinguishing file objects that happen to be
// reopened on the same path, surfaced in sweep trace logs and in the
// #<file ...> print representation's internal bookkeeping.
func (f *File) ID() ulid.ULID { return f.id }

// Bound reports whether f currently has a handle attached (file-bound-p).
func (f *File) Bound() bool { return f.bound }

// Name returns the bound name, or "" if unbound (file-binding).
func (f *File) Name() string { return f.name }

// String is the Lisp print representation (file_prin). The id suffix
// distinguishes two file objects that happen to be reopened on the same
// path, both in this representation and in sweep trace logs.
func (f *File) String() string {
	if f.bound {
		return "#<file " + f.name + " " + f.id.String() + ">"
	}
	return "#<file *unbound* " + f.id.String() + ">"
}

// Marked implements gc.Sweepable.
func (f *File) Marked() bool { return f.marked }

// ClearMark implements gc.Sweepable.
func (f *File) ClearMark() { f.marked = false }

// Mark flags f as reachable for the next sweep.
func (f *File) Mark() { f.marked = true }

// Finalize implements gc.Sweepable: close the handle unless pinned
// "don't close", matching file_sweep/streams_kill. FileRegistry.Sweep
// calls it for the files it reclaims and relinks "don't close" files (the
// pinned standard streams) without finalizing them; FileRegistry.Shutdown
// calls it for every remaining file, which unbinds a "don't close" file
// without closing its handle.
func (f *File) Finalize() {
	if f.bound && !f.dontClose {
		if err := f.handle.Close(); err != nil {
			logger.Error.Println("file finalize: close failed:", err)
		}
	}
	f.handle = nil
	f.name = ""
	f.bound = false
	f.readBuf = nil
}

// FileRegistry is the chain of live file objects swept by the garbage
// collector, held as a slice owned by the registry.
type FileRegistry struct {
	mu      sync.Mutex
	chain   []*File
	stdinF  *File
	stdoutF *File
	stderrF *File
}

// NewFileRegistry returns an empty registry.
func NewFileRegistry() *FileRegistry {
	return &FileRegistry{}
}

func (r *FileRegistry) add(f *File) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chain = append(r.chain, f)
	f.registered = true
}

// Sweep runs one mark/sweep cycle: unmarked files are finalized (closed if
// bound and not pinned) and dropped from the chain; marked files are
// relinked with their mark cleared (file_sweep). A "don't close" file
// (the pinned standard streams) always survives regardless of its mark
// bit.
func (r *FileRegistry) Sweep() {
	r.mu.Lock()
	old := r.chain
	r.chain = nil
	r.mu.Unlock()

	for _, f := range old {
		if f.marked || f.dontClose {
			f.ClearMark()
			r.mu.Lock()
			r.chain = append(r.chain, f)
			r.mu.Unlock()
			continue
		}
		logger.Trace.Println("file sweep: reclaiming", f.String())
		f.Finalize()
	}
}

// Shutdown force-closes every remaining file in the chain (streams_kill).
func (r *FileRegistry) Shutdown() {
	r.mu.Lock()
	chain := r.chain
	r.chain = nil
	r.mu.Unlock()
	for _, f := range chain {
		f.Finalize()
	}
}

// Open allocates or reuses a file object. If reuse
// is non-nil, its current handle is closed first (unless "don't close").
// Passing name == "" (or modes == "") yields an unbound file object; it
// behaves as EOF/no-op until rebound.
func Open(r *FileRegistry, name, modes string, reuse *File) (*File, error) {
	var f *File
	if reuse == nil {
		f = &File{id: ulid.Make()}
	} else {
		f = reuse
		if f.bound && !f.dontClose {
			if err := f.handle.Close(); err != nil {
				logger.Error.Println("open: close of reused file failed:", err)
			}
		}
	}
	f.handle = nil
	f.name = ""
	f.bound = false
	f.dontClose = false
	f.readBuf = nil

	if name != "" && modes != "" {
		h, err := os.OpenFile(name, openFlags(modes), 0o644)
		if err != nil {
			// A failed open never joins the live chain, reused or not.
			return nil, signalErr(KindFileError, errors.Wrap(err, "open"), err.Error(), name)
		}
		f.handle = h
		f.name = name
		f.bound = true
		setCloseOnExec(h)
	}
	if reuse == nil && !f.registered {
		r.add(f)
	}
	return f, nil
}

func openFlags(modes string) int {
	switch modes {
	case "r":
		return os.O_RDONLY
	case "r+":
		return os.O_RDWR
	case "w":
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "w+":
		return os.O_RDWR | os.O_CREATE | os.O_TRUNC
	case "a":
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "a+":
		return os.O_RDWR | os.O_CREATE | os.O_APPEND
	default:
		return os.O_RDONLY
	}
}

// Close kills the association between f and its OS file (unless
// "don't close"), clearing name and handle (cmd_close).
func Close(f *File) {
	if f.bound && !f.dontClose {
		if err := f.handle.Close(); err != nil {
			logger.Error.Println("close: failed:", err)
		}
	}
	f.handle = nil
	f.name = ""
	f.bound = false
	f.readBuf = nil
}

// Flush flushes buffered output on f, if bound (flush-file). Go's *os.File
// is unbuffered at this layer, so this is a best-effort fsync rather than
// a stdio fflush; it is a no-op on an unbound file, matching the source.
func Flush(f *File) error {
	if !f.bound {
		return nil
	}
	return f.handle.Sync()
}

// FileAtEOF reports the underlying end-of-file condition on a bound
// handle (file-eof-p). An unbound file is never "at EOF" by this
// predicate — read operations treat it as EOF directly instead.
func FileAtEOF(f *File) bool {
	if !f.bound {
		return false
	}
	return f.readBuf != nil && f.readBuf.eof
}

// ReadFileUntil reads lines (capped per config.ReadLineBufferSize) until
// one matches re, returning that line or "", false if none match
// (read-file-until).
func ReadFileUntil(env *Env, f *File, pattern string, nocase bool) (string, bool, error) {
	if !f.bound {
		return "", false, signal(KindBadArg, "File object is unbound", f)
	}
	expr := pattern
	if nocase {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return "", false, err
	}
	for {
		line, ok := readFileLine(f, env.Config.ReadLineBufferSize)
		if !ok {
			return "", false, nil
		}
		if re.MatchString(line) {
			return line, true, nil
		}
	}
}
