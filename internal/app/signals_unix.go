//go:build !windows

package app

import (
	"os"
	"syscall"
)

// contSignals lists the signals that mean "the process was resumed";
// the loop redraws the screen when one arrives.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}
