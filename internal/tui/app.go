package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"starchart/internal/galaxy"
	"starchart/internal/log"
	"starchart/internal/theme"
	"starchart/internal/tui/components"
)

// App is the tview application shell around the chart repository. It
// owns no resolution logic: every lookup goes through the repository's
// query surface, on the single interactive goroutine.
type App struct {
	app  *tview.Application
	repo *galaxy.Repository

	listPanel   *components.ListPanel
	detailPanel *components.DetailPanel
	sliceMap    *components.SliceMapComponent
	statusBar   *components.StatusBar

	warnings []string
}

// NewApp wires the viewer. The repository must have been loaded once
// already; warnings from that load are shown in the status bar.
func NewApp(repo *galaxy.Repository, faction string, warnings []string) *App {
	a := &App{
		app:      tview.NewApplication(),
		repo:     repo,
		warnings: warnings,
	}

	a.listPanel = components.NewListPanel(repo)
	a.detailPanel = components.NewDetailPanel(repo)
	a.sliceMap = components.NewSliceMapComponent(repo)
	a.statusBar = components.NewStatusBar(faction)

	a.listPanel.SetSelectHandler(a.onSelect)

	right := theme.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.detailPanel.GetView(), 0, 2, false).
		AddItem(a.sliceMap.GetView(), 13, 0, false)

	main := theme.NewFlex().
		AddItem(a.listPanel.GetView(), 34, 0, true).
		AddItem(right, 0, 1, false)

	root := theme.NewFlex().SetDirection(tview.FlexRow).
		AddItem(main, 0, 1, true).
		AddItem(a.statusBar.GetView(), 1, 0, false)

	a.app.SetRoot(root, true)
	a.app.SetInputCapture(a.handleKey)
	a.updateStatus()
	return a
}

// Run starts the event loop and blocks until quit.
func (a *App) Run() error {
	return a.app.Run()
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case '1':
		a.listPanel.SetLevel(galaxy.LevelSector)
	case '2':
		a.listPanel.SetLevel(galaxy.LevelSubsector)
	case '3':
		a.listPanel.SetLevel(galaxy.LevelSystem)
	case '4':
		a.listPanel.SetLevel(galaxy.LevelPlanet)
	case 'z':
		a.sliceMap.ShiftSlice(-1)
	case 'x':
		a.sliceMap.ShiftSlice(1)
	case 'r':
		a.reload()
	case 'q':
		a.app.Stop()
	default:
		return event
	}
	return nil
}

// onSelect shows the chosen record and retargets the slice map at its
// sector.
func (a *App) onSelect(level galaxy.Level, id int) {
	a.detailPanel.Show(level, id)
	if rec := a.repo.GetByID(level, id); rec != nil {
		a.sliceMap.ShowSector(rec.Location())
	}
}

// reload re-reads the chart and rebuilds every panel. When the store
// cannot be reached the repository keeps its previous collections and
// the failure shows up in the status bar.
func (a *App) reload() {
	warnings, err := a.repo.Reload()
	a.warnings = warnings
	if err != nil {
		log.Error("reload failed", "error", err)
		a.warnings = append(a.warnings, err.Error())
	}
	a.listPanel.Refresh()
	a.updateStatus()
}

func (a *App) updateStatus() {
	a.statusBar.Update(a.repo.Stats(), a.repo.OwnedCount(), a.warnings)
}
