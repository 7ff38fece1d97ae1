package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/qdir/internal/fs"
)

// Pane is one independent directory-browsing context. Directory is the
// sorted, filtered snapshot of the current directory; Cursor is a
// position inside the visible window, so the targeted entry sits at
// Directory[Scroll+Cursor]. Each pane owns its snapshot, its mark set,
// and its per-directory memory; nothing is shared between panes.
type Pane struct {
	CurrentDir     string
	Directory      []FileEntry
	Cursor         int
	Scroll         int
	ViewportHeight int
	Marks          map[string]bool

	memory map[string]DirMemory
}

// NewPane creates a pane rooted at dir and loads its listing. A failed
// initial read is returned to the caller, which treats it as fatal.
func NewPane(dir string, viewportHeight int) (*Pane, error) {
	p := &Pane{
		CurrentDir:     dir,
		ViewportHeight: viewportHeight,
		Marks:          map[string]bool{},
		memory:         map[string]DirMemory{},
	}
	if err := p.ReadDirectory(); err != nil {
		return nil, err
	}
	return p, nil
}

// ShowHidden reports the active hidden-entry flag for the current
// directory. The flag lives in per-directory memory, so each directory
// keeps its own setting.
func (p *Pane) ShowHidden() bool {
	return p.memory[p.CurrentDir].ShowHidden
}

// ReadDirectory refreshes the snapshot from disk under the current
// hidden flag. The pane state is untouched when the read fails.
func (p *Pane) ReadDirectory() error {
	raw, err := fsutil.ReadDirectory(p.CurrentDir)
	if err != nil {
		return err
	}
	p.Directory = fsutil.SortVisible(raw, p.ShowHidden())
	return nil
}

// Refresh re-reads the current directory and keeps the cursor on a
// valid entry. Used when a pane becomes active again after the
// filesystem may have changed underneath its snapshot.
func (p *Pane) Refresh() error {
	if err := p.ReadDirectory(); err != nil {
		return err
	}
	p.ClampCursor()
	return nil
}

func (p *Pane) saveMemory() {
	p.memory[p.CurrentDir] = DirMemory{
		Cursor:     p.Cursor,
		Scroll:     p.Scroll,
		ShowHidden: p.ShowHidden(),
		Marks:      cloneMarks(p.Marks),
	}
}

func (p *Pane) restoreMemory() {
	if m, ok := p.memory[p.CurrentDir]; ok {
		p.Cursor = m.Cursor
		p.Scroll = m.Scroll
		p.Marks = cloneMarks(m.Marks)
		return
	}
	p.Cursor = 0
	p.Scroll = 0
	p.Marks = map[string]bool{}
}

// visibleCount is the number of entries inside the current window.
func (p *Pane) visibleCount() int {
	n := len(p.Directory) - p.Scroll
	if n < 0 {
		n = 0
	}
	if n > p.ViewportHeight+1 {
		n = p.ViewportHeight + 1
	}
	return n
}

// Target returns the entry under the cursor, or nil when the window has
// no entry at that position. Nil means "nothing to act on", never an
// error.
func (p *Pane) Target() *FileEntry {
	if p.Cursor < 0 || p.Cursor >= p.visibleCount() {
		return nil
	}
	return &p.Directory[p.Scroll+p.Cursor]
}

// TargetPath returns the absolute path of the current target, or ""
// when there is none. External collaborators (editor, opener) consume
// this by path.
func (p *Pane) TargetPath() string {
	if t := p.Target(); t != nil {
		return t.FullPath
	}
	return ""
}

// EnterChild navigates into the targeted directory. The old directory's
// viewport state is saved first and the new one's restored afterwards.
// Navigation is all-or-nothing: if the new directory cannot be read the
// pane stays where it was.
func (p *Pane) EnterChild() error {
	target := p.Target()
	if target == nil || !target.IsDir {
		return ErrNotDirectory
	}
	return p.changeTo(target.FullPath)
}

// LeaveToParent navigates to the parent directory. At the root the path
// is unchanged but the listing is still re-read, which makes the
// operation idempotent.
func (p *Pane) LeaveToParent() error {
	return p.changeTo(filepath.Dir(p.CurrentDir))
}

// ChangeDirectory navigates to an arbitrary path. Relative paths are
// resolved against the pane's current directory.
func (p *Pane) ChangeDirectory(path string) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.CurrentDir, path)
	}
	return p.changeTo(filepath.Clean(path))
}

func (p *Pane) changeTo(dir string) error {
	p.saveMemory()

	// Read before committing the path change, so a failed read leaves
	// the pane in its previous directory with its previous snapshot.
	raw, err := fsutil.ReadDirectory(dir)
	if err != nil {
		return err
	}

	p.CurrentDir = dir
	p.Directory = fsutil.SortVisible(raw, p.ShowHidden())
	p.restoreMemory()
	p.ClampCursor()
	return nil
}

// CursorUp moves the cursor toward the top of the listing. When the
// move would leave the window, the window scrolls up by the fixed
// paging step instead. At the very top this is a no-op.
func (p *Pane) CursorUp(amount int) {
	if p.Cursor < amount && p.Scroll > 0 {
		p.Scroll -= pagingStep
		if p.Scroll < 0 {
			p.Scroll = 0
		}
		p.Cursor += pagingStep
		if p.Cursor > p.ViewportHeight {
			p.Cursor = p.ViewportHeight
		}
		return
	}
	p.Cursor -= amount
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// CursorDown moves the cursor toward the bottom, scrolling by the fixed
// paging step when the move would leave the window. The absolute
// position is clamped to the last entry, so moving past the end is a
// no-op.
func (p *Pane) CursorDown(amount int) {
	if p.Cursor+amount > p.ViewportHeight {
		p.Cursor -= pagingStep
		if p.Cursor < 0 {
			p.Cursor = 0
		}
		p.Scroll += pagingStep
	} else {
		p.Cursor += amount
	}

	last := len(p.Directory) - 1
	if last < 0 {
		p.Cursor = 0
		p.Scroll = 0
		return
	}
	if p.Scroll > last {
		p.Scroll = last
	}
	if p.Scroll+p.Cursor > last {
		p.Cursor = last - p.Scroll
	}
}

// ClampCursor repositions the cursor after anything that may have
// shrunk the listing (filter toggle, directory change). When no entry
// exists at the current position, the window resets to the top and the
// cursor lands on the last valid visible index, or 0 for an empty
// directory.
func (p *Pane) ClampCursor() {
	if p.Target() != nil {
		return
	}
	p.Scroll = 0
	p.Cursor = p.visibleCount() - 1
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// ToggleHidden flips the hidden-entry flag for the current directory in
// per-directory memory, re-reads the listing under the new flag, and
// restores the remembered position. A failed read rolls the flag back.
func (p *Pane) ToggleHidden() error {
	p.saveMemory()
	m := p.memory[p.CurrentDir]
	m.ShowHidden = !m.ShowHidden
	p.memory[p.CurrentDir] = m

	if err := p.ReadDirectory(); err != nil {
		m.ShowHidden = !m.ShowHidden
		p.memory[p.CurrentDir] = m
		return err
	}
	p.restoreMemory()
	p.ClampCursor()
	return nil
}

// ToggleMark flips membership of path in the active mark set. Cursor
// and scroll are unaffected.
func (p *Pane) ToggleMark(path string) {
	if path == "" {
		return
	}
	if p.Marks[path] {
		delete(p.Marks, path)
		return
	}
	p.Marks[path] = true
}

// IsMarked reports whether path is in the active mark set.
func (p *Pane) IsMarked(path string) bool {
	return p.Marks[path]
}
