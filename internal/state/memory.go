package state

// DirMemory remembers how a directory was being viewed the last time a
// pane left it. Entries are created lazily, keyed by absolute path, and
// live for the rest of the process; a missing entry means defaults
// (top of the listing, hidden entries filtered, nothing marked).
type DirMemory struct {
	Cursor     int
	Scroll     int
	ShowHidden bool
	Marks      map[string]bool
}

func cloneMarks(marks map[string]bool) map[string]bool {
	out := make(map[string]bool, len(marks))
	for path, on := range marks {
		if on {
			out[path] = true
		}
	}
	return out
}
