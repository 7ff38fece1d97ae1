//go:build windows

package fs

import (
	"strings"

	"golang.org/x/sys/windows"
)

// IsHidden reports whether an entry is hidden. On Windows the hidden
// file attribute decides; when the attributes cannot be read the
// dot-prefix convention is used instead.
func IsHidden(fullPath string, name string) bool {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return false
	}

	if attrs, err := fileAttributes(target); err == nil {
		return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
	}
	return strings.HasPrefix(name, ".")
}

func fileAttributes(path string) (uint32, error) {
	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return windows.GetFileAttributes(ptr)
}
