package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/qdir/internal/state"
	textutil "github.com/kk-code-lab/qdir/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// Renderer draws a session onto a tcell screen. The state package
// produces positionally ordered rows of semantic style tags; this is
// the only place where tags meet colors.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on session state
func (r *Renderer) Render(session *statepkg.Session) {
	r.screen.Clear()

	w, h := r.screen.Size()

	r.drawHeader(session, w)
	r.drawListing(session, w, h)
	r.drawStatusLine(session, w, h)

	r.screen.Show()
}

func (r *Renderer) drawHeader(session *statepkg.Session, w int) {
	headerStyle := tcell.StyleDefault.
		Background(r.theme.HeaderBg).
		Foreground(r.theme.HeaderFg)

	x := r.drawTextLine(0, 0, w, "qdir ", headerStyle)
	x = r.drawTextLine(x, 0, w-x, paneIndicator(session.Views), headerStyle.Foreground(r.theme.PaneActiveFg))
	if x < w {
		r.screen.SetContent(x, 0, ' ', nil, headerStyle)
		x++
	}

	if pane := session.Views.ActivePane(); pane != nil && x < w {
		path := textutil.SanitizeTerminalText(pane.CurrentDir)
		path = r.truncateTextToWidth(path, w-x)
		x = r.drawTextLine(x, 0, w-x, path, headerStyle.Bold(true))
	}

	for ; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, headerStyle)
	}
}

func (r *Renderer) drawListing(session *statepkg.Session, w, h int) {
	pane := session.Views.ActivePane()
	if pane == nil {
		return
	}

	bottom := h - 1 // status line owns the last row
	for i, row := range pane.Listing() {
		y := 1 + i
		if y >= bottom {
			break
		}
		x := 0
		for _, seg := range row {
			if x >= w {
				break
			}
			text := textutil.SanitizeTerminalText(seg.Text)
			text = r.truncateTextToWidth(text, w-x)
			x = r.drawTextLine(x, y, w-x, text, r.styleFor(seg.Style))
		}
	}
}

func (r *Renderer) drawStatusLine(session *statepkg.Session, w, h int) {
	if h < 2 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.
		Background(r.theme.StatusBg).
		Foreground(r.theme.StatusFg)
	if session.Mode() == statepkg.ModeNormal && session.LastError != nil {
		style = style.Foreground(r.theme.ErrorFg)
	}

	text := textutil.SanitizeTerminalText(formatStatus(session))
	text = r.truncateTextToWidth(text, w)
	x := r.drawTextLine(0, y, w, text, style)
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// styleFor maps a semantic listing tag onto the theme.
func (r *Renderer) styleFor(tag statepkg.StyleTag) tcell.Style {
	base := tcell.StyleDefault.Background(r.theme.Background)
	switch tag {
	case statepkg.StyleFile:
		return base.Foreground(r.theme.FileFg)
	case statepkg.StyleFileHighlighted:
		return base.Foreground(r.theme.FileSelFg).Background(r.theme.FileSelBg)
	case statepkg.StyleDirectory:
		return base.Foreground(r.theme.DirectoryFg).Bold(true)
	case statepkg.StyleDirectoryHighlighted:
		return base.Foreground(r.theme.DirSelFg).Background(r.theme.DirSelBg).Bold(true)
	case statepkg.StyleMarked:
		return base.Foreground(r.theme.MarkedFg).Bold(true)
	default:
		return base
	}
}

// drawTextLine writes text at (x, y) within maxWidth cells and returns
// the x position after the last drawn cell.
func (r *Renderer) drawTextLine(x, y, maxWidth int, text string, style tcell.Style) int {
	if maxWidth <= 0 {
		return x
	}
	limit := x + maxWidth
	for _, ru := range text {
		rw := runewidth.RuneWidth(ru)
		if rw == 0 {
			continue
		}
		if x+rw > limit {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += rw
	}
	return x
}

// truncateTextToWidth fits text into width cells, ending with an
// ellipsis when anything was cut.
func (r *Renderer) truncateTextToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
