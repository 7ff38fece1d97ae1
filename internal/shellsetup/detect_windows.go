//go:build windows

package shellsetup

import (
	"os"
	"path"
	"strings"

	"golang.org/x/sys/windows"
)

// DetectParentShellName reports the executable name of the parent
// process, lowercased and without the .exe suffix. Empty on any
// failure; detection then falls back to environment variables.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(ppid))
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(handle)

	exePath := queryImageName(handle)
	if exePath == "" {
		return ""
	}

	name := path.Base(strings.ReplaceAll(exePath, "\\", "/"))
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}

func queryImageName(handle windows.Handle) string {
	for size := uint32(512); size <= 32768; size *= 2 {
		buffer := make([]uint16, size)
		length := size
		err := windows.QueryFullProcessImageName(handle, 0, &buffer[0], &length)
		if err == nil {
			return windows.UTF16ToString(buffer[:length])
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER {
			return ""
		}
	}
	return ""
}
