package state

import "strings"

// executeCommand runs a command-mode line against the active pane.
// Unknown commands are ignored, consistent with the silent treatment
// of navigation misfires.
func executeCommand(s *Session, text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	pane := s.Views.ActivePane()
	if pane == nil {
		return nil
	}

	switch fields[0] {
	case "cd":
		if len(fields) < 2 {
			return nil
		}
		return pane.ChangeDirectory(strings.Join(fields[1:], " "))

	case "hidden":
		return pane.ToggleHidden()

	case "mark":
		pane.ToggleMark(pane.TargetPath())

	case "clear":
		pane.Marks = map[string]bool{}

	case "q", "quit":
		s.QuitRequested = true
	}

	return nil
}
