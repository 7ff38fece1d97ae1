package fs

import "sort"

// SortVisible produces the listing sequence for a directory snapshot:
// directories before files, non-hidden before hidden within each group,
// then byte-wise name order. When showHidden is false, hidden entries
// are dropped entirely. The input slice is not modified.
func SortVisible(entries []Entry, showHidden bool) []Entry {
	visible := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !showHidden && e.IsHidden() {
			continue
		}
		visible = append(visible, e)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].IsDir != visible[j].IsDir {
			return visible[i].IsDir
		}
		hi, hj := visible[i].IsHidden(), visible[j].IsHidden()
		if hi != hj {
			return !hi
		}
		return visible[i].Name < visible[j].Name
	})

	return visible
}
