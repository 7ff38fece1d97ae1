package state

import "testing"

func newTestSession(panes ...*Pane) *Session {
	s := &Session{Views: &Views{}}
	for i := range s.Views.Panes {
		if i < len(panes) {
			s.Views.Panes[i] = panes[i]
			continue
		}
		s.Views.Panes[i] = newTestPane(nil, 10)
	}
	return s
}

func TestSessionStartsInNormalMode(t *testing.T) {
	s := newTestSession()

	if s.Mode() != ModeNormal {
		t.Errorf("expected normal mode, got %v", s.Mode())
	}
}

func TestCommandBufferUnreadableInNormalMode(t *testing.T) {
	s := newTestSession()

	s.AppendCommand('x')
	if got := s.CommandText(); got != "" {
		t.Errorf("buffer readable outside command mode: %q", got)
	}
}

func TestCommandBufferAccumulates(t *testing.T) {
	s := newTestSession()
	s.EnterCommandMode()

	for _, r := range "cd /tmp" {
		s.AppendCommand(r)
	}
	if got := s.CommandText(); got != "cd /tmp" {
		t.Errorf("expected %q, got %q", "cd /tmp", got)
	}

	s.BackspaceCommand()
	if got := s.CommandText(); got != "cd /tm" {
		t.Errorf("expected %q after backspace, got %q", "cd /tm", got)
	}
}

func TestBackspaceOnEmptyBuffer(t *testing.T) {
	s := newTestSession()
	s.EnterCommandMode()

	s.BackspaceCommand()

	if s.Mode() != ModeCommand {
		t.Error("backspace on empty buffer must not leave command mode")
	}
	if got := s.CommandText(); got != "" {
		t.Errorf("expected empty buffer, got %q", got)
	}
}

func TestTakeCommandReturnsToNormalAndClears(t *testing.T) {
	s := newTestSession()
	s.EnterCommandMode()
	s.AppendCommand('q')

	if got := s.TakeCommand(); got != "q" {
		t.Errorf("expected %q, got %q", "q", got)
	}
	if s.Mode() != ModeNormal {
		t.Error("expected normal mode after take")
	}

	s.EnterCommandMode()
	if got := s.CommandText(); got != "" {
		t.Errorf("buffer not cleared between command entries: %q", got)
	}
}

func TestCancelCommandClears(t *testing.T) {
	s := newTestSession()
	s.EnterCommandMode()
	s.AppendCommand('r')
	s.AppendCommand('m')

	s.CancelCommand()

	if s.Mode() != ModeNormal {
		t.Error("expected normal mode after cancel")
	}
	s.EnterCommandMode()
	if got := s.CommandText(); got != "" {
		t.Errorf("canceled text leaked into next command entry: %q", got)
	}
}
