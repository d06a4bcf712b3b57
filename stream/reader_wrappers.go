package stream

// Read is the `read` wrapper: resolve the default stream,
// read one lookahead character, delegate the rest to env.Reader, and
// signal end-of-stream if EOF arrives before a complete object.
func Read(env *Env, streamArg any) (any, error) {
	s, resolved := resolveDefault(env, streamArg, true)
	if !resolved {
		return nil, signal(KindMissingArg)
	}
	c, err := GetChar(env, s)
	if err != nil {
		return nil, err
	}
	if c == EOF {
		return nil, signal(KindEndOfStream, s)
	}
	if env.Reader == nil {
		return nil, signal(KindEndOfStream, s)
	}
	v, lookahead, err := env.Reader.ReadObject(env, s, c)
	if err != nil {
		return nil, err
	}
	if lookahead != EOF {
		UngetChar(env, s, lookahead)
	}
	return v, nil
}

// Print is the `print` wrapper: a leading newline, then the readable
// representation, matching the source's print_val preamble. Like Read, a
// stream that resolves to nothing (no explicit stream and no dynamic
// binding) signals missing-arg (cmd_print/signal_arg_error).
func Print(env *Env, streamArg any, v any) error {
	s, resolved := resolveDefault(env, streamArg, false)
	if !resolved {
		return signal(KindMissingArg)
	}
	if _, err := PutChar(env, s, '\n'); err != nil {
		return err
	}
	return prin1(env, s, v)
}

// Prin1 is the `prin1` wrapper: the readable representation with no
// leading newline.
func Prin1(env *Env, streamArg any, v any) error {
	s, resolved := resolveDefault(env, streamArg, false)
	if !resolved {
		return signal(KindMissingArg)
	}
	return prin1(env, s, v)
}

// Princ is the `princ` wrapper: the unquoted representation.
func Princ(env *Env, streamArg any, v any) error {
	s, resolved := resolveDefault(env, streamArg, false)
	if !resolved {
		return signal(KindMissingArg)
	}
	if env.Printer == nil {
		return nil
	}
	return env.Printer.Princ(env, s, v)
}

func prin1(env *Env, s any, v any) error {
	if env.Printer == nil {
		return nil
	}
	return env.Printer.Print(env, s, v)
}
