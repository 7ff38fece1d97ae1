package app

import (
	"errors"
	"testing"
)

func fakeLookPath(available map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := available[name]; ok {
			return path, nil
		}
		return "", errors.New("not found")
	}
}

func fakeGetenv(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestDetectEditorPrefersVisual(t *testing.T) {
	env := map[string]string{"VISUAL": "myvisual", "EDITOR": "myeditor"}
	look := fakeLookPath(map[string]string{
		"myvisual": "/usr/bin/myvisual",
		"myeditor": "/usr/bin/myeditor",
	})

	cmd, ok := detectEditorCommandInternal("linux", fakeGetenv(env), look)
	if !ok {
		t.Fatal("expected an editor")
	}
	if cmd[0] != "/usr/bin/myvisual" {
		t.Errorf("expected VISUAL to win, got %v", cmd)
	}
}

func TestDetectEditorFallsBackToDefaults(t *testing.T) {
	look := fakeLookPath(map[string]string{"vim": "/usr/bin/vim"})

	cmd, ok := detectEditorCommandInternal("linux", fakeGetenv(nil), look)
	if !ok {
		t.Fatal("expected vim fallback")
	}
	if cmd[0] != "/usr/bin/vim" {
		t.Errorf("expected /usr/bin/vim, got %v", cmd)
	}
}

func TestDetectEditorKeepsArguments(t *testing.T) {
	env := map[string]string{"EDITOR": `code --wait`}
	look := fakeLookPath(map[string]string{"code": "/usr/bin/code"})

	cmd, ok := detectEditorCommandInternal("linux", fakeGetenv(env), look)
	if !ok {
		t.Fatal("expected an editor")
	}
	if len(cmd) != 2 || cmd[1] != "--wait" {
		t.Errorf("arguments lost: %v", cmd)
	}
}

func TestDetectEditorNothingAvailable(t *testing.T) {
	if _, ok := detectEditorCommandInternal("linux", fakeGetenv(nil), fakeLookPath(nil)); ok {
		t.Error("expected no editor")
	}
}

func TestDetectOpenCommandLinux(t *testing.T) {
	look := fakeLookPath(map[string]string{"xdg-open": "/usr/bin/xdg-open"})

	cmd, ok := detectOpenCommandInternal("linux", look)
	if !ok || cmd[0] != "/usr/bin/xdg-open" {
		t.Errorf("expected xdg-open, got %v (ok=%v)", cmd, ok)
	}
}

func TestDetectOpenCommandDarwin(t *testing.T) {
	look := fakeLookPath(map[string]string{"open": "/usr/bin/open"})

	cmd, ok := detectOpenCommandInternal("darwin", look)
	if !ok || cmd[0] != "/usr/bin/open" {
		t.Errorf("expected open, got %v (ok=%v)", cmd, ok)
	}
}

func TestParseCommandLineQuoting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "vim", []string{"vim"}},
		{"with flag", "code --wait", []string{"code", "--wait"}},
		{"double quoted", `"my editor" -f`, []string{"my editor", "-f"}},
		{"single quoted", `'my editor'`, []string{"my editor"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCommandLine(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}
