package state

import "fmt"

// PaneCount is the fixed number of independent panes in a session.
const PaneCount = 4

// Views is the fixed set of panes plus the index of the one receiving
// input. Panes never share state; they only observe the same
// filesystem.
type Views struct {
	Panes  [PaneCount]*Pane
	Active int
}

// NewViews creates all panes rooted at dir. A failed read of the
// initial directory is fatal and propagates to the caller.
func NewViews(dir string, viewportHeight int) (*Views, error) {
	v := &Views{}
	for i := range v.Panes {
		p, err := NewPane(dir, viewportHeight)
		if err != nil {
			return nil, err
		}
		v.Panes[i] = p
	}
	return v, nil
}

// ActivePane returns the pane currently receiving input, or nil if the
// active index is somehow out of range. Callers treat nil as "no pane",
// never index the array directly.
func (v *Views) ActivePane() *Pane {
	if v.Active < 0 || v.Active >= PaneCount {
		return nil
	}
	return v.Panes[v.Active]
}

// SwitchTo activates the pane at index and refreshes its snapshot so
// filesystem changes made while it was inactive become visible. On a
// failed refresh the pane keeps its prior snapshot and the error is
// reported.
func (v *Views) SwitchTo(index int) error {
	if index < 0 || index >= PaneCount {
		return fmt.Errorf("pane index %d out of range", index)
	}
	v.Active = index
	return v.Panes[index].Refresh()
}

// Next cycles to the following pane.
func (v *Views) Next() {
	v.Active = (v.Active + 1) % PaneCount
}

// Prev cycles to the preceding pane.
func (v *Views) Prev() {
	v.Active = (v.Active + PaneCount - 1) % PaneCount
}

// SetViewportHeight propagates a resize to every pane and keeps each
// cursor on a valid entry.
func (v *Views) SetViewportHeight(h int) {
	if h < 0 {
		h = 0
	}
	for _, p := range v.Panes {
		if p == nil {
			continue
		}
		p.ViewportHeight = h
		p.ClampCursor()
	}
}
