package stream

import (
	"strconv"

	"github.com/jade-lisp/streams/internal/lispval"
)

// Format is the `format` interpreter. If stream is nil, the
// output is collected into a fresh (String . Int) accumulator and returned
// as a *lispval.Str truncated to exact length; otherwise the returned
// *lispval.Str is nil and writes go straight to stream.
func Format(env *Env, streamArg any, format string, args []any) (*lispval.Str, error) {
	var out any = streamArg
	var accum *lispval.Cons
	toString := lispval.IsNil(streamArg)
	if toString {
		accum = MakeStringOutputStream()
		out = accum
	}

	argi := 0
	nextArg := func() (any, bool) {
		if argi >= len(args) {
			return nil, false
		}
		a := args[argi]
		argi++
		return a, true
	}

	literal := make([]byte, 0, len(format))
	flush := func() error {
		if len(literal) == 0 {
			return nil
		}
		if _, err := PutBytes(env, out, literal); err != nil {
			return err
		}
		literal = literal[:0]
		return nil
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			literal = append(literal, c)
			continue
		}
		i++
		if i >= len(format) {
			break
		}
		spec := format[i]
		if spec == '%' {
			literal = append(literal, '%')
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		if err := formatOne(env, out, env.Printer, spec, nextArg); err != nil {
			return nil, err
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if !toString {
		return nil, nil
	}
	return GetOutputStreamString(accum)
}

func formatOne(env *Env, out any, printer Printer, spec byte, next func() (any, bool)) error {
	switch spec {
	case 'd', 'x', 'o', 'c':
		arg, ok := next()
		if !ok {
			return signal(KindMissingArg)
		}
		n, ok := arg.(lispval.Int)
		if !ok {
			if i, ok2 := arg.(int); ok2 {
				n = lispval.Int(i)
			} else {
				return signal(KindBadArg, arg)
			}
		}
		text := formatInt(spec, int(n))
		_, err := PutBytes(env, out, []byte(text))
		return err

	case 's', 'S':
		arg, ok := next()
		if !ok {
			return signal(KindMissingArg)
		}
		if printer == nil {
			return nil
		}
		if spec == 's' {
			return printer.Princ(env, out, arg)
		}
		return printer.Print(env, out, arg)

	default:
		// Unknown specifiers are silently dropped, but the argument they
		// would have consumed still is, and running out of arguments
		// signals the same way as for a recognized specifier.
		if _, ok := next(); !ok {
			return signal(KindMissingArg)
		}
		return nil
	}
}

func formatInt(spec byte, n int) string {
	switch spec {
	case 'd':
		return strconv.Itoa(n)
	case 'x':
		return strconv.FormatInt(int64(n), 16)
	case 'o':
		return strconv.FormatInt(int64(n), 8)
	case 'c':
		return string([]byte{byte(n)})
	}
	return ""
}
