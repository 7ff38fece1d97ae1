//go:build !windows

package fs

import "strings"

// IsHidden reports whether an entry is hidden. On Unix-like systems
// hidden means a dot-prefixed name; the full path is unused.
func IsHidden(_ string, name string) bool {
	return strings.HasPrefix(name, ".")
}
