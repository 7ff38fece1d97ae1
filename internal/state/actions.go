package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type CursorUpAction struct {
	Amount int
}
type CursorDownAction struct {
	Amount int
}
type EnterDirectoryAction struct{}
type GoUpAction struct{}

// ===== VIEW ACTIONS =====

type ToggleHiddenAction struct{}
type ToggleMarkAction struct{}
type ResizeAction struct {
	Width  int
	Height int
}

// ===== PANE ACTIONS =====

type SwitchPaneAction struct {
	Index int
}
type NextPaneAction struct{}
type PrevPaneAction struct{}

// ===== COMMAND MODE ACTIONS =====

type CommandStartAction struct{}
type CommandCharAction struct {
	Char rune
}
type CommandBackspaceAction struct{}
type CommandExecuteAction struct{}
type CommandCancelAction struct{}

// ===== APPLICATION ACTIONS =====

type OpenEditorAction struct{}
type OpenTargetAction struct{}
type SuspendAction struct{}
type QuitAction struct{}          // q - shell returns to the original directory
type QuitAndChangeAction struct{} // x - shell changes to the active pane's directory
