// Package procio stands in for the host subprocess layer: it exposes
// exactly the one operation the stream dispatcher needs, writing bytes
// to a running child's stdin.
package procio

import (
	"io"
	"os/exec"

	"github.com/jade-lisp/streams/internal/streamtag"
)

// Process is a write-only stream target wrapping a child process's stdin
// pipe.
type Process struct {
	streamtag.Marker

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	Name   string
	Exited bool
}

// Start launches name with args and returns a Process wired to its stdin.
func Start(name string, args ...string) (*Process, error) {
	cmd := exec.Command(name, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Process{cmd: cmd, stdin: stdin, Name: name}, nil
}

// Write writes buf to the process's stdin if it is still running,
// returning the byte count written (write_to_process in the source).
// Writing to an exited process returns 0, matching the primitives'
// general policy of returning a failure count rather than signalling on
// ordinary I/O failure.
func (p *Process) Write(buf []byte) int {
	if p.Exited || p.stdin == nil {
		return 0
	}
	n, err := p.stdin.Write(buf)
	if err != nil {
		p.Exited = true
	}
	return n
}

// Wait closes stdin and waits for the child to exit.
func (p *Process) Wait() error {
	if p.stdin != nil {
		_ = p.stdin.Close()
	}
	err := p.cmd.Wait()
	p.Exited = true
	return err
}
