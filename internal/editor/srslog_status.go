package editor

import (
	"github.com/RackSec/srslog"

	"github.com/jade-lisp/streams/internal/logger"
)

// SyslogStatusSink mirrors status-line writes to syslog via srslog, giving
// the `t` stream variant a real destination when the interpreter is run
// headless (no window with a visible minibuffer attached). It satisfies
// StatusSink.
type SyslogStatusSink struct {
	writer *srslog.Writer
}

// NewSyslogStatusSink dials the local syslog daemon with the given tag.
// Returns nil (and logs the failure) rather than an error, since a dead
// syslog sink should not prevent the stream subsystem from starting — the
// status line degrades to "no fallback" instead.
func NewSyslogStatusSink(tag string) *SyslogStatusSink {
	w, err := srslog.New(srslog.LOG_NOTICE|srslog.LOG_USER, tag)
	if err != nil {
		logger.Error.Println("status line: could not dial syslog, disabling fallback:", err)
		return nil
	}
	return &SyslogStatusSink{writer: w}
}

// Post implements StatusSink.
func (s *SyslogStatusSink) Post(message []byte) {
	if s == nil || s.writer == nil {
		return
	}
	if err := s.writer.Notice(string(message)); err != nil {
		logger.Error.Println("status line: syslog write failed:", err)
	}
}

// Close releases the underlying syslog connection.
func (s *SyslogStatusSink) Close() error {
	if s == nil || s.writer == nil {
		return nil
	}
	return s.writer.Close()
}
