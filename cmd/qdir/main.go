package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/qdir/internal/app"
	"github.com/kk-code-lab/qdir/internal/shellsetup"
)

const usage = `qdir - Terminal-based directory browser

USAGE:
    qdir [OPTIONS]

OPTIONS:
    -h, --help            Show this help message and exit
    -s, --setup [SHELL]   Output shell integration snippet (optionally force SHELL)
`

var parentShellDetector = shellsetup.DetectParentShellName

// handleArgs deals with the non-interactive invocations. It returns
// true when the process should exit instead of starting the browser.
func handleArgs(args []string) bool {
	if len(args) == 0 {
		return false
	}

	switch arg := args[0]; {
	case arg == "-h" || arg == "--help":
		fmt.Print(usage)
		return true

	case arg == "-s" || arg == "--setup":
		shellOverride := ""
		if len(args) > 1 {
			shellOverride = args[1]
		}
		printSetup(shellOverride)
		return true

	case strings.HasPrefix(arg, "--setup="):
		printSetup(strings.TrimPrefix(arg, "--setup="))
		return true
	}

	return false
}

func printSetup(shellOverride string) {
	shellsetup.PrintSetup(shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
}

func main() {
	// UTF-8 fallback so entry names render on terminals with odd locales
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if handleArgs(os.Args[1:]) {
		return
	}

	app, err := apppkg.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()

	// The shell wrapper installed by --setup reads this file to decide
	// where to cd after the browser exits. PID keeps concurrent sessions
	// from clobbering each other.
	if path := app.ExitPath(); path != "" {
		resultFile := filepath.Join(os.TempDir(), fmt.Sprintf("qdir_result_%d.txt", os.Getpid()))
		if err := os.WriteFile(resultFile, []byte(path), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write result file: %v\n", err)
		}
	}
}
