//go:build !unix

package stream

import "os"

// setCloseOnExec is a no-op on hosted OSes without fcntl close-on-exec
// semantics.
func setCloseOnExec(h *os.File) {}
