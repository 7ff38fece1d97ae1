package app

import (
	"errors"
	"os"
	"os/exec"
)

var errNoEditor = errors.New("no editor found (set $EDITOR)")
var errNoOpener = errors.New("no open handler found")

// handleEditorOpen suspends the screen and runs the editor on the
// current target. The core only resolves the path; whatever the editor
// does with it is its own business.
func (app *Application) handleEditorOpen() bool {
	pane := app.session.Views.ActivePane()
	if pane == nil {
		return false
	}
	path := pane.TargetPath()
	if path == "" {
		return false
	}
	if len(app.editorCmd) == 0 {
		app.session.LastError = errNoEditor
		return true
	}

	if err := app.screen.Suspend(); err != nil {
		app.session.LastError = err
		return true
	}

	cmd := exec.Command(app.editorCmd[0], append(app.editorCmd[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		app.session.LastError = err
		return true
	}
	app.screen.Sync()

	if runErr != nil {
		app.session.LastError = runErr
	}

	// The editor may have created or removed entries.
	if err := pane.Refresh(); err != nil {
		app.session.LastError = err
	}
	return true
}

// handleTargetOpen hands the current target to the platform opener
// without waiting for it.
func (app *Application) handleTargetOpen() bool {
	pane := app.session.Views.ActivePane()
	if pane == nil {
		return false
	}
	path := pane.TargetPath()
	if path == "" {
		return false
	}
	if len(app.openCmd) == 0 {
		app.session.LastError = errNoOpener
		return true
	}

	cmd := exec.Command(app.openCmd[0], append(app.openCmd[1:], path)...)
	if err := cmd.Start(); err != nil {
		app.session.LastError = err
		return true
	}
	go func() { _ = cmd.Wait() }()
	return false
}
