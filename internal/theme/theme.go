package theme

import "github.com/gdamore/tcell/v2"

// Theme holds the color palette for the viewer's widgets.
type Theme struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	SelectedFg tcell.Color
	SelectedBg tcell.Color
	StatusBg   tcell.Color
	StatusFg   tcell.Color

	// Owned is the highlight for locations held by the configured
	// faction; Stub marks synthesized placeholder sectors.
	Owned tcell.Color
	Stub  tcell.Color
}

var current = Theme{
	Background: tcell.ColorBlack,
	Foreground: tcell.ColorSilver,
	Border:     tcell.ColorTeal,
	Title:      tcell.ColorYellow,
	SelectedFg: tcell.ColorBlack,
	SelectedBg: tcell.ColorTeal,
	StatusBg:   tcell.ColorNavy,
	StatusFg:   tcell.ColorWhite,
	Owned:      tcell.NewRGBColor(0x4c, 0xaf, 0x50),
	Stub:       tcell.ColorGray,
}

// Current returns the active theme.
func Current() Theme {
	return current
}

// OwnedTag is the tview color tag for owned locations.
func OwnedTag() string {
	return "[#4caf50]"
}
