package state

// Mode selects how keystrokes are interpreted.
type Mode int

const (
	// ModeNormal dispatches keys to pane navigation.
	ModeNormal Mode = iota
	// ModeCommand accumulates keys into the command buffer.
	ModeCommand
)

// Session owns the pane set and the input mode machine. The command
// buffer belongs to the session, not to any pane, and is readable only
// while in command mode.
type Session struct {
	Views *Views

	// LastError is surfaced on the status line; it is informational
	// and never stops the session.
	LastError error

	// QuitRequested is set by the quit command and consumed by the
	// application loop.
	QuitRequested bool

	ScreenWidth  int
	ScreenHeight int

	inputMode Mode
	command   []rune
}

// NewSession builds a session with all panes rooted at dir.
func NewSession(dir string, viewportHeight int) (*Session, error) {
	views, err := NewViews(dir, viewportHeight)
	if err != nil {
		return nil, err
	}
	return &Session{Views: views}, nil
}

// Mode returns the current input mode.
func (s *Session) Mode() Mode {
	return s.inputMode
}

// EnterCommandMode switches to command mode with an empty buffer.
func (s *Session) EnterCommandMode() {
	s.inputMode = ModeCommand
	s.command = s.command[:0]
}

// CommandText returns the accumulated command text. Outside command
// mode the buffer is not readable and this returns "".
func (s *Session) CommandText() string {
	if s.inputMode != ModeCommand {
		return ""
	}
	return string(s.command)
}

// AppendCommand adds a character to the command buffer. Ignored outside
// command mode.
func (s *Session) AppendCommand(r rune) {
	if s.inputMode != ModeCommand {
		return
	}
	s.command = append(s.command, r)
}

// BackspaceCommand erases the last buffered character. Ignored outside
// command mode.
func (s *Session) BackspaceCommand() {
	if s.inputMode != ModeCommand || len(s.command) == 0 {
		return
	}
	s.command = s.command[:len(s.command)-1]
}

// TakeCommand returns the buffered text and transitions back to normal
// mode, clearing the buffer.
func (s *Session) TakeCommand() string {
	text := s.CommandText()
	s.CancelCommand()
	return text
}

// CancelCommand discards the buffer and returns to normal mode.
func (s *Session) CancelCommand() {
	s.inputMode = ModeNormal
	s.command = s.command[:0]
}
