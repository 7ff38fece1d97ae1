//go:build windows

package app

// Windows has no SIGTSTP, so Ctrl-Z cannot hand the terminal back to a
// shell. Suspend does nothing and there is never anything to resume.
func (app *Application) suspendToShell() {
}

func (app *Application) resumeAfterStop() bool {
	return false
}
