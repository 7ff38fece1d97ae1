package state

import "testing"

func rowText(row Row) string {
	out := ""
	for _, seg := range row {
		out += seg.Text
	}
	return out
}

func TestListingWindowAndHighlight(t *testing.T) {
	pane := newTestPane(syntheticEntries(30), 5)
	pane.Scroll = 10
	pane.Cursor = 2

	rows := pane.Listing()

	if len(rows) != 6 { // viewport_height+1 rows fit the window
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if rowText(rows[0]) != "file10.txt" {
		t.Errorf("window does not start at scroll offset: %q", rowText(rows[0]))
	}

	for i, row := range rows {
		want := StyleFile
		if i == 2 {
			want = StyleFileHighlighted
		}
		if row[0].Style != want {
			t.Errorf("row %d: expected style %v, got %v", i, want, row[0].Style)
		}
	}
}

func TestListingDirectorySuffix(t *testing.T) {
	pane := newTestPane([]FileEntry{
		{Name: "docs", FullPath: "/test/docs", IsDir: true},
		{Name: "readme", FullPath: "/test/readme"},
	}, 10)

	rows := pane.Listing()

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	dir := rows[0]
	if dir[0].Style != StyleDirectoryHighlighted {
		t.Errorf("cursor row directory should be highlighted, got %v", dir[0].Style)
	}
	last := dir[len(dir)-1]
	if last.Text != "/" || last.Style != StylePlain {
		t.Errorf("expected plain / suffix, got %q (%v)", last.Text, last.Style)
	}
	if file := rows[1]; file[0].Style != StyleFile {
		t.Errorf("expected plain file style, got %v", file[0].Style)
	}
}

func TestListingMarkedEntries(t *testing.T) {
	pane := newTestPane(syntheticEntries(3), 10)
	pane.ToggleMark("/test/file01.txt")

	rows := pane.Listing()

	marked := rows[1]
	if marked[0].Style != StyleMarked {
		t.Errorf("expected leading marked segment, got %v", marked[0].Style)
	}
	if rows[0][0].Style == StyleMarked {
		t.Error("unmarked row carries a mark segment")
	}
}

func TestListingEmptyDirectory(t *testing.T) {
	pane := newTestPane(nil, 10)

	if rows := pane.Listing(); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestListingShortDirectoryIgnoresViewport(t *testing.T) {
	pane := newTestPane(syntheticEntries(2), 40)

	if rows := pane.Listing(); len(rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(rows))
	}
}
