package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

func detectEditorCommand() ([]string, bool) {
	return detectEditorCommandInternal(runtime.GOOS, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(goos string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := []string{getenv("VISUAL"), getenv("EDITOR")}

	for _, candidate := range candidates {
		args := parseCommandLine(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, ok := resolveExecutable(args[0], lookPath); ok {
			args[0] = resolved
			return args, true
		}
	}

	var defaults [][]string
	if strings.EqualFold(goos, "windows") {
		defaults = [][]string{
			{"code", "--wait"},
			{"notepad.exe"},
		}
	} else {
		defaults = [][]string{
			{"vim"},
			{"nano"},
		}
	}

	for _, def := range defaults {
		if resolved, ok := resolveExecutable(def[0], lookPath); ok {
			args := append([]string{resolved}, def[1:]...)
			return args, true
		}
	}

	return nil, false
}

// detectOpenCommand finds the platform "open this path" handler used
// for non-directory targets the editor should not own.
func detectOpenCommand() ([]string, bool) {
	return detectOpenCommandInternal(runtime.GOOS, exec.LookPath)
}

func detectOpenCommandInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	var candidates [][]string
	switch {
	case strings.EqualFold(goos, "darwin"):
		candidates = [][]string{{"open"}}
	case strings.EqualFold(goos, "windows"):
		candidates = [][]string{{"cmd", "/C", "start", ""}}
		// cmd is a shell builtin host; resolve cmd itself.
		if resolved, err := lookPath("cmd"); err == nil && resolved != "" {
			candidates[0][0] = resolved
			return candidates[0], true
		}
		return nil, false
	default:
		candidates = [][]string{{"xdg-open"}}
	}

	for _, c := range candidates {
		if resolved, ok := resolveExecutable(c[0], lookPath); ok {
			args := append([]string{resolved}, c[1:]...)
			return args, true
		}
	}
	return nil, false
}

// parseCommandLine splits an EDITOR-style value, honoring single and
// double quotes so values like `code --wait "my editor"` survive.
func parseCommandLine(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch r {
		case '\'':
			if inDouble {
				current.WriteRune(r)
			} else {
				inSingle = !inSingle
			}
			continue
		case '"':
			if inSingle {
				current.WriteRune(r)
			} else {
				inDouble = !inDouble
			}
			continue
		default:
			if !inSingle && !inDouble && unicode.IsSpace(r) {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
				continue
			}
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}

	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	sep := path[1]
	if sep != '/' && sep != '\\' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}

func resolveExecutable(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}

	if expanded := expandUserPath(cmd); expanded != cmd {
		cmd = expanded
	}

	path, err := lookPath(cmd)
	if err != nil {
		return "", false
	}
	return path, true
}
