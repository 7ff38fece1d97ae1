package app

import (
	"os"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/qdir/internal/state"
	inputui "github.com/kk-code-lab/qdir/internal/ui/input"
	renderui "github.com/kk-code-lab/qdir/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	session    *statepkg.Session
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool

	// exitPath is what the shell integration receives on shutdown:
	// the original working directory for a plain quit, the active
	// pane's directory for quit-and-change.
	exitPath  string
	editorCmd []string
	openCmd   []string
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// ExitPath returns the directory to hand to the shell integration.
func (app *Application) ExitPath() string {
	return app.exitPath
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
