package state

// StyleTag is a semantic style for a listing segment. The renderer maps
// tags to concrete terminal styles; the core never knows about colors.
type StyleTag int

const (
	StylePlain StyleTag = iota
	StyleFile
	StyleFileHighlighted
	StyleDirectory
	StyleDirectoryHighlighted
	StyleMarked
)

// Segment is a chunk of row text with an associated style tag.
type Segment struct {
	Text  string
	Style StyleTag
}

// Row is one listing line, rendered positionally: row index corresponds
// to position within the current scroll window.
type Row []Segment

// Listing produces the styled rows for the pane's visible window.
// Directories carry a trailing plain "/" segment; marked entries a
// leading "*" segment; the cursor row uses the highlighted variants.
func (p *Pane) Listing() []Row {
	count := p.visibleCount()
	rows := make([]Row, 0, count)

	for line := 0; line < count; line++ {
		entry := p.Directory[p.Scroll+line]
		highlight := line == p.Cursor

		var row Row
		if p.IsMarked(entry.FullPath) {
			row = append(row, Segment{Text: "* ", Style: StyleMarked})
		}

		style := StyleFile
		switch {
		case entry.IsDir && highlight:
			style = StyleDirectoryHighlighted
		case entry.IsDir:
			style = StyleDirectory
		case highlight:
			style = StyleFileHighlighted
		}
		row = append(row, Segment{Text: entry.Name, Style: style})

		if entry.IsDir {
			row = append(row, Segment{Text: "/", Style: StylePlain})
		}

		rows = append(rows, row)
	}

	return rows
}
