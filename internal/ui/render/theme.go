package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background   tcell.Color
	HeaderFg     tcell.Color
	HeaderBg     tcell.Color
	FileFg       tcell.Color
	FileSelFg    tcell.Color
	FileSelBg    tcell.Color
	DirectoryFg  tcell.Color
	DirSelFg     tcell.Color
	DirSelBg     tcell.Color
	MarkedFg     tcell.Color
	StatusFg     tcell.Color
	StatusBg     tcell.Color
	ErrorFg      tcell.Color
	PaneActiveFg tcell.Color
}

// GetColorTheme returns the default color scheme: white files and bold
// blue directories, inverted under the cursor.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:   tcell.ColorDefault,
		HeaderFg:     tcell.ColorLightGreen,
		HeaderBg:     tcell.ColorDefault,
		FileFg:       tcell.ColorWhite,
		FileSelFg:    tcell.ColorBlack,
		FileSelBg:    tcell.ColorWhite,
		DirectoryFg:  tcell.ColorBlue,
		DirSelFg:     tcell.ColorBlack,
		DirSelBg:     tcell.ColorBlue,
		MarkedFg:     tcell.ColorYellow,
		StatusFg:     tcell.ColorDefault,
		StatusBg:     tcell.ColorDefault,
		ErrorFg:      tcell.ColorRed,
		PaneActiveFg: tcell.ColorLightGreen,
	}
}
