package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"starchart/internal/galaxy"
	"starchart/internal/theme"
)

// SliceMapComponent draws one z-slice of a sector's 9x9x9 subsector
// grid as text. Cells with a loaded subsector show their system count;
// owned subsectors use the faction highlight.
type SliceMapComponent struct {
	view   *tview.TextView
	repo   *galaxy.Repository
	sector string
	slice  int
}

// NewSliceMapComponent creates the map panel with no sector selected.
func NewSliceMapComponent(repo *galaxy.Repository) *SliceMapComponent {
	view := theme.NewPanelView()
	view.SetTitle(" Slice Map ")
	view.SetTextAlign(tview.AlignCenter)
	view.SetText("\n[yellow]Select a sector to see its subsector grid[-]")
	return &SliceMapComponent{view: view, repo: repo}
}

// GetView returns the tview component.
func (smc *SliceMapComponent) GetView() *tview.TextView {
	return smc.view
}

// ShowSector points the map at a sector and redraws it.
func (smc *SliceMapComponent) ShowSector(code string) {
	smc.sector = galaxy.ParentSectorCode(code)
	smc.draw()
}

// ShiftSlice moves the displayed z-slice by delta, clamped to 0..8.
func (smc *SliceMapComponent) ShiftSlice(delta int) {
	smc.slice += delta
	if smc.slice < 0 {
		smc.slice = 0
	}
	if smc.slice > 8 {
		smc.slice = 8
	}
	smc.draw()
}

func (smc *SliceMapComponent) draw() {
	if smc.sector == "" {
		return
	}
	smc.view.SetTitle(fmt.Sprintf(" %s slice z=%d ", smc.sector, smc.slice+1))

	// cells[y][x] holds the subsector at that grid position, if any.
	var cells [9][9]galaxy.Record
	for _, sub := range smc.repo.Children(galaxy.LevelSubsector, smc.sector) {
		coords := galaxy.SubsectorCoordsOf(sub.Location())
		if coords.SZ == smc.slice {
			cells[coords.SY][coords.SX] = sub
		}
	}

	var b strings.Builder
	b.WriteString("\n    1 2 3 4 5 6 7 8 9\n")
	for y := 0; y < 9; y++ {
		fmt.Fprintf(&b, "  %d ", y+1)
		for x := 0; x < 9; x++ {
			b.WriteString(smc.cellText(cells[y][x]))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	smc.view.SetText(b.String())
}

func (smc *SliceMapComponent) cellText(sub galaxy.Record) string {
	if sub == nil {
		return "[gray]·[-]"
	}
	systems := len(smc.repo.Children(galaxy.LevelSystem, sub.Location()))
	mark := "▪"
	if systems > 0 && systems <= 9 {
		mark = fmt.Sprintf("%d", systems)
	}
	if smc.repo.IsOwned(sub.Location()) {
		return theme.OwnedTag() + mark + "[-]"
	}
	return "[white]" + mark + "[-]"
}
