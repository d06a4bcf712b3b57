//go:build unix

package stream

import (
	"os"
	"syscall"
)

// setCloseOnExec sets close-on-exec on h's descriptor "for easy process
// fork()ing", exactly as the source's cmd_open does with fcntl(F_SETFD).
func setCloseOnExec(h *os.File) {
	syscall.CloseOnExec(int(h.Fd()))
}
