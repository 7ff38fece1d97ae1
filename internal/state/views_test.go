package state

import (
	"os"
	"path/filepath"
	"testing"
)

func newDiskViews(t *testing.T) (*Views, string) {
	t.Helper()
	root := buildTree(t)
	views, err := NewViews(root, 10)
	if err != nil {
		t.Fatalf("NewViews failed: %v", err)
	}
	return views, root
}

func TestNewViewsRootsAllPanesAtStartDirectory(t *testing.T) {
	views, root := newDiskViews(t)

	for i, pane := range views.Panes {
		if pane == nil {
			t.Fatalf("pane %d missing", i)
		}
		if pane.CurrentDir != root {
			t.Errorf("pane %d rooted at %q, expected %q", i, pane.CurrentDir, root)
		}
	}
	if views.Active != 0 {
		t.Errorf("expected pane 0 active, got %d", views.Active)
	}
}

func TestSwitchToOutOfRange(t *testing.T) {
	views, _ := newDiskViews(t)

	if err := views.SwitchTo(PaneCount); err == nil {
		t.Error("expected error for index past the end")
	}
	if err := views.SwitchTo(-1); err == nil {
		t.Error("expected error for negative index")
	}
	if views.Active != 0 {
		t.Errorf("failed switch changed active index to %d", views.Active)
	}
}

func TestSwitchToRefreshesSnapshot(t *testing.T) {
	views, root := newDiskViews(t)

	// Change the filesystem while pane 1 is inactive.
	if err := os.WriteFile(filepath.Join(root, "new.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := views.SwitchTo(1); err != nil {
		t.Fatalf("SwitchTo failed: %v", err)
	}

	pane := views.ActivePane()
	found := false
	for _, e := range pane.Directory {
		if e.Name == "new.txt" {
			found = true
		}
	}
	if !found {
		t.Error("newly active pane did not pick up external change")
	}
}

func TestNextPrevCycle(t *testing.T) {
	views, _ := newDiskViews(t)

	for i := 0; i < PaneCount; i++ {
		views.Next()
	}
	if views.Active != 0 {
		t.Errorf("Next did not cycle back to 0, got %d", views.Active)
	}

	views.Prev()
	if views.Active != PaneCount-1 {
		t.Errorf("Prev from 0 should wrap to %d, got %d", PaneCount-1, views.Active)
	}
}

func TestActivePaneFailsClosed(t *testing.T) {
	views, _ := newDiskViews(t)
	views.Active = PaneCount + 3

	if views.ActivePane() != nil {
		t.Error("out-of-range active index must yield no pane")
	}
}

func TestPanesAreIndependent(t *testing.T) {
	views, root := newDiskViews(t)

	if err := views.Panes[0].ChangeDirectory("sub"); err != nil {
		t.Fatal(err)
	}
	views.Panes[0].ToggleMark(filepath.Join(root, "sub", "inner.txt"))

	if views.Panes[1].CurrentDir != root {
		t.Errorf("pane 1 moved when pane 0 navigated: %q", views.Panes[1].CurrentDir)
	}
	if len(views.Panes[1].Marks) != 0 {
		t.Error("pane 1 observed pane 0's marks")
	}
}
