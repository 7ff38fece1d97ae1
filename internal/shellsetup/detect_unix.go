//go:build !windows

package shellsetup

import (
	"fmt"
	"os"
	"strings"
)

// DetectParentShellName reports the command name of the parent process.
// Only Linux exposes /proc; elsewhere detection falls back to $SHELL.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", ppid))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}
