package state

import "errors"

// StateReducer applies actions to a session. It is the only place that
// mutates session state, so the app loop can treat "action handled" as
// "screen dirty".
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action and reports whether the session changed.
// Navigation into a non-directory is swallowed here: it comes from
// normal exploratory key-pressing and must not disturb the pane or the
// status line. I/O errors are returned for the caller to surface.
func (r *StateReducer) Reduce(s *Session, action Action) (bool, error) {
	pane := s.Views.ActivePane()
	if pane == nil {
		return false, errors.New("no active pane")
	}

	switch a := action.(type) {
	case CursorUpAction:
		pane.CursorUp(normalizeAmount(a.Amount))
		return true, nil

	case CursorDownAction:
		pane.CursorDown(normalizeAmount(a.Amount))
		return true, nil

	case EnterDirectoryAction:
		if err := pane.EnterChild(); err != nil {
			if errors.Is(err, ErrNotDirectory) {
				return false, nil
			}
			return false, err
		}
		return true, nil

	case GoUpAction:
		if err := pane.LeaveToParent(); err != nil {
			return false, err
		}
		return true, nil

	case ToggleHiddenAction:
		if err := pane.ToggleHidden(); err != nil {
			return false, err
		}
		return true, nil

	case ToggleMarkAction:
		path := pane.TargetPath()
		if path == "" {
			return false, nil
		}
		pane.ToggleMark(path)
		return true, nil

	case ResizeAction:
		s.ScreenWidth = a.Width
		s.ScreenHeight = a.Height
		s.Views.SetViewportHeight(listingHeight(a.Height))
		return true, nil

	case SwitchPaneAction:
		if err := s.Views.SwitchTo(a.Index); err != nil {
			return false, err
		}
		return true, nil

	case NextPaneAction:
		s.Views.Next()
		return true, refreshActive(s)

	case PrevPaneAction:
		s.Views.Prev()
		return true, refreshActive(s)

	case CommandStartAction:
		s.EnterCommandMode()
		return true, nil

	case CommandCharAction:
		s.AppendCommand(a.Char)
		return true, nil

	case CommandBackspaceAction:
		s.BackspaceCommand()
		return true, nil

	case CommandExecuteAction:
		text := s.TakeCommand()
		if err := executeCommand(s, text); err != nil {
			return true, err
		}
		return true, nil

	case CommandCancelAction:
		s.CancelCommand()
		return true, nil
	}

	return false, nil
}

// refreshActive re-reads the newly active pane after a cycle switch. On
// failure the pane keeps its previous snapshot and the error is shown.
func refreshActive(s *Session) error {
	if pane := s.Views.ActivePane(); pane != nil {
		return pane.Refresh()
	}
	return nil
}

func normalizeAmount(amount int) int {
	if amount < 1 {
		return 1
	}
	return amount
}

// listingHeight converts a screen height into rows available for the
// listing: one row for the header, one for the status line, one spare.
func listingHeight(screenHeight int) int {
	h := screenHeight - 3
	if h < 0 {
		h = 0
	}
	return h
}
