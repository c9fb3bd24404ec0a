package components

import (
	"fmt"

	"github.com/rivo/tview"

	"starchart/internal/galaxy"
	"starchart/internal/theme"
)

// ListPanel shows every record at one hierarchy level and lets the user
// pick one. Owned locations are tinted with the faction highlight.
type ListPanel struct {
	view     *tview.List
	repo     *galaxy.Repository
	level    galaxy.Level
	ids      []int
	onSelect func(level galaxy.Level, id int)
}

// NewListPanel creates the list panel at sector level.
func NewListPanel(repo *galaxy.Repository) *ListPanel {
	lp := &ListPanel{
		view:  theme.NewList(),
		repo:  repo,
		level: galaxy.LevelSector,
	}
	lp.view.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		if lp.onSelect != nil && index >= 0 && index < len(lp.ids) {
			lp.onSelect(lp.level, lp.ids[index])
		}
	})
	lp.Refresh()
	return lp
}

// GetView returns the tview component.
func (lp *ListPanel) GetView() *tview.List {
	return lp.view
}

// SetSelectHandler registers the callback fired when an entry is
// chosen.
func (lp *ListPanel) SetSelectHandler(fn func(level galaxy.Level, id int)) {
	lp.onSelect = fn
}

// Level returns the currently displayed hierarchy level.
func (lp *ListPanel) Level() galaxy.Level {
	return lp.level
}

// SetLevel switches the panel to another hierarchy level.
func (lp *ListPanel) SetLevel(level galaxy.Level) {
	if level == galaxy.LevelUnknown || level == lp.level {
		return
	}
	lp.level = level
	lp.Refresh()
}

// Refresh rebuilds the list from the repository.
func (lp *ListPanel) Refresh() {
	lp.view.Clear()
	lp.ids = lp.ids[:0]
	records := lp.repo.Collection(lp.level)
	lp.view.SetTitle(fmt.Sprintf(" %ss (%d) ", lp.level, len(records)))

	for _, rec := range records {
		lp.ids = append(lp.ids, rec.ID())
		lp.view.AddItem(lp.itemText(rec), "", 0, nil)
	}
}

func (lp *ListPanel) itemText(rec galaxy.Record) string {
	code := rec.Location()
	label := galaxy.FormatLocation(code)
	if label == "" {
		label = fmt.Sprintf("(no location, id %d)", rec.ID())
	}
	if name := rec.Str("name"); name != "" {
		label = fmt.Sprintf("%s  %s", label, name)
	} else if nav := rec.Str("nav"); nav != "" {
		label = fmt.Sprintf("%s  %s", label, nav)
	}
	if lp.repo.IsOwned(code) {
		return theme.OwnedTag() + label + "[-]"
	}
	return label
}
