package stream

import "github.com/jade-lisp/streams/internal/streamtag"

// Callable is the 0-arg/1-arg apply collaborator the host interpreter
// supplies. A callable stream invokes arbitrary user code; Call0 is used
// when the stream is read from, Call1 when it is written to.
type Callable interface {
	// Call0 invokes the callable with no arguments (a read). ok is false
	// if the callable produced no usable result (maps to EOF).
	Call0() (result any, ok bool)
	// Call1 invokes the callable with one argument (a write). ok is false
	// if the callable's result was nil (maps to failure).
	Call1(arg any) (result any, ok bool)
}

// Func adapts a pair of Go closures to Callable. It is used both as a
// symbol's function binding (registered in Env.Functions) and directly as
// the Cdr of a (lambda . Func) stream cons.
type Func struct {
	streamtag.Marker
	F0 func() (any, bool)
	F1 func(arg any) (any, bool)
}

func (f *Func) Call0() (any, bool) {
	if f.F0 == nil {
		return nil, false
	}
	return f.F0()
}

func (f *Func) Call1(arg any) (any, bool) {
	if f.F1 == nil {
		return nil, false
	}
	return f.F1(arg)
}
