// Package logger provides the levelled loggers used throughout this
// repository, in the shape of github.com/sysflow-telemetry/sf-apis/go/logger:
// a small set of package-level *log.Logger values selected by verbosity
// rather than a structured logging framework.
package logger

import (
	"io"
	"log"
	"os"
)

// Level selects which of the package loggers actually write output.
type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelTrace
)

var (
	// Error always logs; Info and Trace are progressively more verbose.
	Error = log.New(os.Stderr, "ERROR: ", log.LstdFlags)
	Info  = log.New(os.Stderr, "INFO: ", log.LstdFlags)
	Trace = log.New(io.Discard, "TRACE: ", log.LstdFlags)
)

// SetLevel rewires the package loggers' output according to level. Error is
// never discarded.
func SetLevel(level Level) {
	Trace.SetOutput(enabledIf(level >= LevelTrace))
	Info.SetOutput(enabledIf(level >= LevelInfo))
}

func enabledIf(on bool) io.Writer {
	if on {
		return os.Stderr
	}
	return io.Discard
}
