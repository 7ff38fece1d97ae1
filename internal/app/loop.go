package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/qdir/internal/state"
	inputui "github.com/kk-code-lab/qdir/internal/ui/input"
	renderui "github.com/kk-code-lab/qdir/internal/ui/render"
)

// NewApplication initializes the screen and a session rooted at the
// working directory. A startup read failure is returned as-is and is
// fatal for the caller.
func NewApplication() (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cwd, err := GetCwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	w, h := screen.Size()
	session, err := statepkg.NewSession(cwd, listingHeightFor(h))
	if err != nil {
		screen.Fini()
		return nil, err
	}
	session.ScreenWidth = w
	session.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetSession(session)

	editorCmd, _ := detectEditorCommand()
	openCmd, _ := detectOpenCommand()

	return &Application{
		screen:    screen,
		session:   session,
		reducer:   statepkg.NewStateReducer(),
		renderer:  renderui.NewRenderer(screen),
		input:     inputHandler,
		actionCh:  actionCh,
		exitPath:  cwd,
		editorCmd: editorCmd,
		openCmd:   openCmd,
	}, nil
}

func listingHeightFor(screenHeight int) int {
	h := screenHeight - 3
	if h < 0 {
		h = 0
	}
	return h
}

// Run is the render-then-block cycle: draw the current session, wait
// for one event, apply it, repeat. Everything is synchronous; a
// directory read blocks the loop for its duration.
func (app *Application) Run() {
	defer app.screen.Fini()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	renderPending := true
	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.session)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventResize:
		return app.input.ProcessEvent(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// processActions drains whatever the handlers queued without blocking.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false

	case statepkg.QuitAndChangeAction:
		app.quitToActiveDir()
		return false

	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true

	case statepkg.OpenEditorAction:
		return app.handleEditorOpen()

	case statepkg.OpenTargetAction:
		return app.handleTargetOpen()
	}

	app.session.LastError = nil
	changed, err := app.reducer.Reduce(app.session, action)
	if err != nil {
		// Navigation I/O failures are shown, never fatal.
		app.session.LastError = err
		changed = true
	}

	if app.session.QuitRequested {
		app.quitToActiveDir()
	}
	return changed
}

func (app *Application) quitToActiveDir() {
	if pane := app.session.Views.ActivePane(); pane != nil {
		app.exitPath = pane.CurrentDir
	}
	app.shouldQuit = true
}
