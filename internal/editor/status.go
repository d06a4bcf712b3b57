package editor

// StatusSink receives a freshly composed status-line message when no
// interactive minibuffer is attached. See srslog_status.go for the
// concrete syslog-backed implementation.
type StatusSink interface {
	Post(message []byte)
}

// StatusLine is the editor's message-buffer collaborator backing the `t`
// stream variant. A real editor keeps this on its current
// window; this stand-in keeps one buffer and an optional fallback sink
// for when the window has no visible minibuffer, so the `t` stream still
// has somewhere to go in a headless interpreter.
type StatusLine struct {
	Message []byte
	Posted  bool
	Dirty   bool

	// Fallback, when non-nil, receives the whole current message after
	// every Append/AppendN; it is how a batch/headless run observes
	// status-line writes instead of silently posting to a minibuffer
	// nobody is looking at.
	Fallback StatusSink
}

// Append grows the posted message by one byte, or starts a fresh post.
// Mirrors stream_putc's V_Symbol/t case.
func (s *StatusLine) Append(c byte) {
	if s.Posted {
		s.Message = append(s.Message, c)
		s.Dirty = true
	} else {
		s.postMessage([]byte{c})
	}
	s.mirror()
}

// AppendN grows the posted message by buf, or starts a fresh post.
// Mirrors stream_puts's V_Symbol/t case.
func (s *StatusLine) AppendN(buf []byte) {
	if s.Posted {
		s.Message = append(s.Message, buf...)
		s.Dirty = true
	} else {
		s.postMessage(buf)
	}
	s.mirror()
}

func (s *StatusLine) postMessage(buf []byte) {
	s.Message = append([]byte(nil), buf...)
	s.Posted = true
	s.Dirty = true
}

func (s *StatusLine) mirror() {
	if s.Fallback != nil {
		s.Fallback.Post(s.Message)
	}
}
