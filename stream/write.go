package stream

import "github.com/jade-lisp/streams/internal/lispval"

// Write implements cmd_write's argument-shape dispatch, the Lisp-visible
// `write` binding: data may be an integer character (put-char) or a
// string-like byte run (put-bytes), with an optional explicit length
// capping how many bytes of data are written.
func Write(env *Env, streamArg any, data any, length *int) (any, error) {
	switch v := data.(type) {
	case lispval.Int:
		n, err := PutChar(env, streamArg, int(v))
		if err != nil {
			return nil, err
		}
		return lispval.Int(n), nil

	case int:
		n, err := PutChar(env, streamArg, v)
		if err != nil {
			return nil, err
		}
		return lispval.Int(n), nil

	case *lispval.Str:
		buf := v.Data()
		if length != nil && *length < len(buf) {
			buf = buf[:*length]
		}
		n, err := PutBytes(env, streamArg, buf)
		if err != nil {
			return nil, err
		}
		return lispval.Int(n), nil

	case string:
		buf := []byte(v)
		if length != nil && *length < len(buf) {
			buf = buf[:*length]
		}
		n, err := PutBytes(env, streamArg, buf)
		if err != nil {
			return nil, err
		}
		return lispval.Int(n), nil

	default:
		return nil, signal(KindBadArg, data)
	}
}
