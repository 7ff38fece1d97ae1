package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/qdir/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	session    *statepkg.Session // Reference to current session for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetSession sets the session reference for mode checking
func (ih *InputHandler) SetSession(session *statepkg.Session) {
	ih.session = session
}

// ProcessEvent converts a tcell event into an Action. Returning false
// tells the loop to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ih.session != nil && ih.session.Mode() == statepkg.ModeCommand {
		return ih.processCommandModeKey(ev)
	}
	return ih.processNormalModeKey(ev)
}

// processCommandModeKey routes everything into the command buffer; only
// Enter, Escape, and Ctrl-C leave command mode.
func (ih *InputHandler) processCommandModeKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyEscape:
		ih.actionChan <- statepkg.CommandCancelAction{}
		return true

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.CommandExecuteAction{}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.CommandBackspaceAction{}
		return true

	case tcell.KeyRune:
		ih.actionChan <- statepkg.CommandCharAction{Char: ev.Rune()}
		return true
	}

	return true
}

func (ih *InputHandler) processNormalModeKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.CursorUpAction{Amount: 1}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.CursorDownAction{Amount: 1}
		return true

	case tcell.KeyLeft:
		ih.actionChan <- statepkg.GoUpAction{}
		return true

	case tcell.KeyRight, tcell.KeyEnter:
		ih.actionChan <- statepkg.EnterDirectoryAction{}
		return true

	case tcell.KeyTab:
		ih.actionChan <- statepkg.NextPaneAction{}
		return true

	case tcell.KeyBacktab:
		ih.actionChan <- statepkg.PrevPaneAction{}
		return true

	case tcell.KeyRune:
		return ih.processNormalModeRune(ev.Rune())
	}

	return true
}

func (ih *InputHandler) processNormalModeRune(r rune) bool {
	switch r {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case 'x':
		ih.actionChan <- statepkg.QuitAndChangeAction{}
		return false

	case 'k':
		ih.actionChan <- statepkg.CursorUpAction{Amount: 1}

	case 'j':
		ih.actionChan <- statepkg.CursorDownAction{Amount: 1}

	case 'h':
		ih.actionChan <- statepkg.GoUpAction{}

	case 'l':
		ih.actionChan <- statepkg.EnterDirectoryAction{}

	case '.':
		ih.actionChan <- statepkg.ToggleHiddenAction{}

	case ' ', 'm':
		ih.actionChan <- statepkg.ToggleMarkAction{}

	case '1', '2', '3', '4':
		ih.actionChan <- statepkg.SwitchPaneAction{Index: int(r - '1')}

	case ':':
		ih.actionChan <- statepkg.CommandStartAction{}

	case 'e':
		ih.actionChan <- statepkg.OpenEditorAction{}

	case 'o':
		ih.actionChan <- statepkg.OpenTargetAction{}
	}

	return true
}
