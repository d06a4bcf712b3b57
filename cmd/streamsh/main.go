// Command streamsh is a small demo shell that exercises the stream
// package end to end: it wires standard-input/standard-output to the
// process's stdio file objects and copies one to the other through
// copy-stream's chunked loop, the way a host interpreter's REPL would at
// startup.
package main

import (
	"flag"
	"os"

	"github.com/jade-lisp/streams/internal/config"
	"github.com/jade-lisp/streams/internal/editor"
	"github.com/jade-lisp/streams/internal/logger"
	"github.com/jade-lisp/streams/stream"
)

func main() {
	trace := flag.Bool("trace", false, "enable trace logging")
	headless := flag.Bool("headless", false, "mirror the status line to syslog instead of a minibuffer")
	flag.Parse()

	if *trace {
		logger.SetLevel(logger.LevelTrace)
	} else {
		logger.SetLevel(logger.LevelInfo)
	}

	v := config.New()
	env := stream.NewEnv()
	env.Config = config.Load(v)

	if *headless {
		if sink := editor.NewSyslogStatusSink("streamsh"); sink != nil {
			env.BindStatusLine(&editor.StatusLine{Fallback: sink})
		}
	}

	std := stream.NewStdStreams(env.Files)
	env.StandardInput = std.Stdin()
	env.StandardOutput = std.Stdout()

	logger.Info.Println("streamsh: copying standard-input to standard-output")
	n, err := stream.CopyStream(env, env.StandardInput, env.StandardOutput)
	if err != nil {
		logger.Error.Println("copy-stream failed:", err)
		os.Exit(1)
	}
	logger.Info.Println("streamsh: copied", n)

	env.Files.Shutdown()
}
