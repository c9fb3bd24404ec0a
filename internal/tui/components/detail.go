package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rivo/tview"

	"starchart/internal/galaxy"
	"starchart/internal/theme"
)

// DetailPanel renders the selected record: its attributes, resolved
// parents and children. Everything it shows comes from the repository's
// query surface; no resolution happens here.
type DetailPanel struct {
	view *tview.TextView
	repo *galaxy.Repository
}

// NewDetailPanel creates an empty detail panel.
func NewDetailPanel(repo *galaxy.Repository) *DetailPanel {
	view := theme.NewPanelView()
	view.SetTitle(" Details ")
	view.SetText("\n[yellow]Select an entry to see details[-]")
	return &DetailPanel{view: view, repo: repo}
}

// GetView returns the tview component.
func (dp *DetailPanel) GetView() *tview.TextView {
	return dp.view
}

// Show renders the identified record.
func (dp *DetailPanel) Show(level galaxy.Level, id int) {
	var b strings.Builder
	switch level {
	case galaxy.LevelSector:
		dp.writeSector(&b, id)
	case galaxy.LevelSubsector:
		dp.writeSubsector(&b, id)
	case galaxy.LevelSystem:
		dp.writeSystem(&b, id)
	case galaxy.LevelPlanet:
		dp.writePlanet(&b, id)
	}
	if b.Len() == 0 {
		b.WriteString("[red]Record not found[-]")
	}
	dp.view.SetText(b.String())
	dp.view.ScrollToBeginning()
}

func (dp *DetailPanel) writeSector(b *strings.Builder, id int) {
	details := dp.repo.SectorDetails(id)
	if details == nil {
		return
	}
	code := details.Sector.Location()
	dp.writeHeader(b, "Sector", details.Sector)
	coords := galaxy.SectorCoordsOf(code)
	fmt.Fprintf(b, "Coordinates: (%d, %d, %d)\n", coords.X, coords.Y, coords.Z)
	dp.writeAttributes(b, details.Sector)
	dp.writeChildren(b, "Subsectors", details.Subsectors)
}

func (dp *DetailPanel) writeSubsector(b *strings.Builder, id int) {
	details := dp.repo.SubsectorDetails(id)
	if details == nil {
		return
	}
	code := details.Subsector.Location()
	dp.writeHeader(b, "Subsector", details.Subsector)
	coords := galaxy.SubsectorCoordsOf(code)
	fmt.Fprintf(b, "Coordinates: (%d, %d, %d) offset (%d, %d, %d)\n",
		coords.X, coords.Y, coords.Z, coords.SX, coords.SY, coords.SZ)
	dp.writeParent(b, "Sector", details.Sector)
	dp.writeAttributes(b, details.Subsector)
	dp.writeChildren(b, "Systems", details.Systems)
}

func (dp *DetailPanel) writeSystem(b *strings.Builder, id int) {
	details := dp.repo.SystemDetails(id)
	if details == nil {
		return
	}
	code := details.System.Location()
	dp.writeHeader(b, "System", details.System)
	coords := galaxy.SystemCoordsOf(code)
	fmt.Fprintf(b, "Coordinates: (%d, %d, %d) offset (%d, %d, %d) position %d\n",
		coords.X, coords.Y, coords.Z, coords.SX, coords.SY, coords.SZ, coords.Pos)
	dp.writeParent(b, "Subsector", details.Subsector)
	dp.writeAttributes(b, details.System)
	dp.writeChildren(b, "Planets", details.Planets)
}

func (dp *DetailPanel) writePlanet(b *strings.Builder, id int) {
	details := dp.repo.PlanetDetails(id)
	if details == nil {
		return
	}
	dp.writeHeader(b, "Planet", details.Planet)
	dp.writeParent(b, "System", details.System)
	dp.writeAttributes(b, details.Planet)
}

func (dp *DetailPanel) writeHeader(b *strings.Builder, kind string, rec galaxy.Record) {
	code := rec.Location()
	tag := "[yellow]"
	if dp.repo.IsOwned(code) {
		tag = theme.OwnedTag()
	}
	fmt.Fprintf(b, "%s%s %s[-]\n\n", tag, kind, galaxy.FormatLocation(code))
}

func (dp *DetailPanel) writeParent(b *strings.Builder, kind string, parent galaxy.Record) {
	if parent == nil {
		fmt.Fprintf(b, "%s: [gray]unresolved[-]\n", kind)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", kind, galaxy.FormatLocation(parent.Location()))
}

// writeAttributes lists every stored column except the ones already
// rendered, sorted for a stable display.
func (dp *DetailPanel) writeAttributes(b *strings.Builder, rec galaxy.Record) {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		if key == "id" || key == "location" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	b.WriteString("\n")
	for _, key := range keys {
		fmt.Fprintf(b, "[teal]%s:[-] %v\n", key, rec[key])
	}
}

func (dp *DetailPanel) writeChildren(b *strings.Builder, title string, children []galaxy.Record) {
	fmt.Fprintf(b, "\n[yellow]%s (%d)[-]\n", title, len(children))
	for _, child := range children {
		line := galaxy.FormatLocation(child.Location())
		if name := child.Str("name"); name != "" {
			line += "  " + name
		}
		if dp.repo.IsOwned(child.Location()) {
			line = theme.OwnedTag() + line + "[-]"
		}
		b.WriteString(line + "\n")
	}
}
