//go:build windows

package app

import "os"

// Windows has no SIGCONT; the loop simply never gets resume signals.
func contSignals() []os.Signal {
	return nil
}
