package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadDirectoryClassifiesEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadDirectory(dir)
	if err != nil {
		t.Fatalf("ReadDirectory failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	if !byName["sub"].IsDir {
		t.Errorf("sub should be a directory")
	}
	if byName["file.txt"].IsDir {
		t.Errorf("file.txt should not be a directory")
	}
	if byName["sub"].FullPath != filepath.Join(dir, "sub") {
		t.Errorf("unexpected full path %q", byName["sub"].FullPath)
	}
}

func TestReadDirectoryPropagatesError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	if _, err := ReadDirectory(missing); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestReadDirectorySymlinkToDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries, err := ReadDirectory(dir)
	if err != nil {
		t.Fatalf("ReadDirectory failed: %v", err)
	}

	for _, e := range entries {
		if e.Name == "link" {
			if !e.IsSymlink {
				t.Errorf("link not flagged as symlink")
			}
			if !e.IsDir {
				t.Errorf("symlink to directory should classify as directory")
			}
			return
		}
	}
	t.Fatal("link entry not found")
}

func TestReadDirectoryBrokenSymlinkIsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries, err := ReadDirectory(dir)
	if err != nil {
		t.Fatalf("ReadDirectory failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected dangling link in listing, got %d entries", len(entries))
	}
	if entries[0].IsDir {
		t.Errorf("broken symlink should classify as a file")
	}
}
