package theme

import (
	"github.com/rivo/tview"
)

// Factory helpers create widgets with the theme already applied, so the
// components never set colors ad hoc.

// NewList creates a themed selection list.
func NewList() *tview.List {
	list := tview.NewList()
	list.SetBackgroundColor(current.Background)
	list.SetMainTextColor(current.Foreground)
	list.SetSelectedTextColor(current.SelectedFg)
	list.SetSelectedBackgroundColor(current.SelectedBg)
	list.SetBorderColor(current.Border)
	list.SetTitleColor(current.Title)
	list.SetBorder(true)
	list.ShowSecondaryText(false)
	return list
}

// NewPanelView creates a themed text view for side panels.
func NewPanelView() *tview.TextView {
	view := tview.NewTextView()
	view.SetBackgroundColor(current.Background)
	view.SetTextColor(current.Foreground)
	view.SetBorderColor(current.Border)
	view.SetTitleColor(current.Title)
	view.SetDynamicColors(true)
	view.SetBorder(true)
	return view
}

// NewStatusBar creates a themed single-line status view.
func NewStatusBar() *tview.TextView {
	view := tview.NewTextView()
	view.SetBackgroundColor(current.StatusBg)
	view.SetTextColor(current.StatusFg)
	view.SetDynamicColors(true)
	return view
}

// NewFlex creates a themed flex container.
func NewFlex() *tview.Flex {
	flex := tview.NewFlex()
	flex.SetBackgroundColor(current.Background)
	return flex
}
