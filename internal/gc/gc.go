// Package gc models the two garbage-collector touchpoints the stream
// subsystem depends on: the process-wide GC-inhibit flag raised around
// callable-stream invocations,
// and the mark/sweep/root-pinning hooks the file-object chain participates
// in. The real allocator and collector are out of scope; this package is
// the narrow seam the core actually touches.
package gc

// Sweepable is implemented by objects that participate in the garbage
// collector's mark/sweep chain.
type Sweepable interface {
	// Marked reports whether the object survived the mark phase.
	Marked() bool
	// ClearMark resets the mark bit after a sweep relinks the object.
	ClearMark()
	// Finalize runs the object's close-on-reclaim action; called only for
	// unmarked (unreferenced) objects during sweep, or during interpreter
	// shutdown.
	Finalize()
}

// inhibited is the process-wide GC-inhibit flag. The host interpreter is
// single-threaded, so a bare bool is sufficient; there is no mutex here.
var inhibited bool

// Inhibited reports whether the collector is currently suppressed.
func Inhibited() bool { return inhibited }

// Inhibit raises the GC-inhibit flag and returns a function that restores
// its previous value. Callers must defer the restore so it runs on every
// exit path, including a panic unwinding through a callable stream
// invocation — the flag must be restored on unwind too.
//
//	restore := gc.Inhibit()
//	defer restore()
func Inhibit() (restore func()) {
	prev := inhibited
	inhibited = true
	return func() { inhibited = prev }
}

// Root pins an object so sweep never reclaims it; the three standard
// streams are pinned this way.
type Root struct {
	obj Sweepable
}

var roots []*Root

// Pin registers obj as a permanent GC root.
func Pin(obj Sweepable) *Root {
	r := &Root{obj: obj}
	roots = append(roots, r)
	return r
}

// Roots returns the currently pinned objects, for sweep implementations
// that want to skip them without consulting Marked().
func Roots() []Sweepable {
	out := make([]Sweepable, len(roots))
	for i, r := range roots {
		out[i] = r.obj
	}
	return out
}
