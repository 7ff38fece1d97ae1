package render

import (
	"fmt"

	statepkg "github.com/kk-code-lab/qdir/internal/state"
)

// paneIndicator renders the active pane position, e.g. "[2/4]".
func paneIndicator(views *statepkg.Views) string {
	if views == nil || views.ActivePane() == nil {
		return fmt.Sprintf("[-/%d]", statepkg.PaneCount)
	}
	return fmt.Sprintf("[%d/%d]", views.Active+1, statepkg.PaneCount)
}

// formatStatus builds the status line. Command mode shows the buffer
// being typed; normal mode shows listing facts, or the last error if
// one is pending.
func formatStatus(session *statepkg.Session) string {
	if session.Mode() == statepkg.ModeCommand {
		return ":" + session.CommandText()
	}

	if session.LastError != nil {
		return fmt.Sprintf("error: %v", session.LastError)
	}

	pane := session.Views.ActivePane()
	if pane == nil {
		return ""
	}

	status := fmt.Sprintf("%d entries", len(pane.Directory))
	if n := len(pane.Marks); n > 0 {
		status += fmt.Sprintf("  %d marked", n)
	}
	if pane.ShowHidden() {
		status += "  hidden shown"
	}
	return status
}
