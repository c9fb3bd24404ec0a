package components

import (
	"fmt"

	"github.com/rivo/tview"

	"starchart/internal/galaxy"
	"starchart/internal/theme"
)

// StatusBar shows load statistics and the active faction on one line.
type StatusBar struct {
	view    *tview.TextView
	faction string
}

// NewStatusBar creates the status bar.
func NewStatusBar(faction string) *StatusBar {
	return &StatusBar{view: theme.NewStatusBar(), faction: faction}
}

// GetView returns the tview component.
func (sb *StatusBar) GetView() *tview.TextView {
	return sb.view
}

// Update redraws the bar from the latest reload.
func (sb *StatusBar) Update(stats galaxy.Stats, owned int, warnings []string) {
	text := fmt.Sprintf(" %d sectors | %d subsectors | %d systems | %d planets | %s%s[-]: %d locations",
		stats.Sectors, stats.Subsectors, stats.Systems, stats.Planets,
		theme.OwnedTag(), sb.faction, owned)
	if len(warnings) > 0 {
		text += fmt.Sprintf(" | [red]%d load warnings[-]", len(warnings))
	}
	text += "  [gray](1-4 level, Enter select, z/x slice, r reload, q quit)[-]"
	sb.view.SetText(text)
}
