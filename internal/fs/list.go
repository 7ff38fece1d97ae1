package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// ReadDirectory reads the immediate children of dirPath. The read is
// synchronous and attempted exactly once; I/O errors are returned
// unchanged for the caller to handle. Entries whose metadata cannot be
// read are skipped rather than failing the whole listing.
func ReadDirectory(dirPath string) ([]Entry, error) {
	children, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, c := range children {
		info, err := c.Info()
		if err != nil {
			continue
		}

		rawName := c.Name()
		fullPath := filepath.Join(dirPath, rawName)

		isDir := c.IsDir()
		isSymlink := (info.Mode() & os.ModeSymlink) != 0

		// Symlinks count as directories only if the target resolves to
		// one; a broken link stays a plain file.
		if isSymlink {
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
		})
	}

	return entries, nil
}
