package galaxy

import (
	"fmt"

	"starchart/internal/log"
)

// RowSource is the read contract against the backing store. The four
// chart tables come back as flat column-to-value rows; a missing table
// is an empty collection, not an error.
type RowSource interface {
	HasTable(name string) (bool, error)
	LoadTable(name string) ([]map[string]any, error)
	Close() error
}

// OpenFunc acquires a RowSource for one load cycle. The repository
// closes the source before Reload returns, on every exit path.
type OpenFunc func() (RowSource, error)

var tableNames = map[Level]string{
	LevelSector:    "sectors",
	LevelSubsector: "subsectors",
	LevelSystem:    "systems",
	LevelPlanet:    "planets",
}

// Repository owns the four in-memory collections, the code indexes,
// the synthesized stub sectors and the ownership cache. All state is
// rebuilt from scratch by Reload; nothing is mutated between loads.
// It is single-threaded by design, like the viewer that drives it.
type Repository struct {
	open        OpenFunc
	ownerMarker string

	collections map[Level][]Record
	byCode      map[Level]map[string]int
	owned       map[string]struct{}
	nextID      int
}

// Stats is the per-level record count after the last reload.
type Stats struct {
	Sectors    int
	Subsectors int
	Systems    int
	Planets    int
}

// NewRepository creates an empty repository. ownerMarker is the faction
// text matched against planet owners when the ownership cache is built.
// Call Reload before querying.
func NewRepository(open OpenFunc, ownerMarker string) *Repository {
	r := &Repository{open: open, ownerMarker: ownerMarker}
	r.reset()
	return r
}

func (r *Repository) reset() {
	r.collections = make(map[Level][]Record)
	r.byCode = make(map[Level]map[string]int)
	for level := range tableNames {
		r.byCode[level] = make(map[string]int)
	}
	r.owned = make(map[string]struct{})
	r.nextID = 1
}

// Reload re-reads all four collections, repairs missing ancestors and
// rebuilds the ownership cache. Recoverable problems (a table missing
// or unreadable) empty the affected collection and come back as
// warnings; only a failure to reach the store at all is an error.
// Reload is idempotent: with unchanged backing data, two consecutive
// calls produce identical collections and cache contents.
func (r *Repository) Reload() ([]string, error) {
	src, err := r.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open chart store: %w", err)
	}
	defer src.Close()

	r.reset()
	var warnings []string

	for _, level := range []Level{LevelSector, LevelSubsector, LevelSystem, LevelPlanet} {
		table := tableNames[level]
		ok, err := src.HasTable(table)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not probe table %q: %v", table, err))
			continue
		}
		if !ok {
			log.Warn("chart table not found, treating as empty", "table", table)
			warnings = append(warnings, fmt.Sprintf("table %q not found", table))
			continue
		}
		rows, err := src.LoadTable(table)
		if err != nil {
			log.Warn("chart table unreadable, treating as empty", "table", table, "error", err)
			warnings = append(warnings, fmt.Sprintf("could not read table %q: %v", table, err))
			continue
		}
		r.ingest(level, rows)
	}

	if err := r.synthesizeStubs(); err != nil {
		return warnings, err
	}
	r.owned = buildOwnership(r.collections[LevelPlanet], r.ownerMarker)

	stats := r.Stats()
	log.Info("chart reloaded",
		"sectors", stats.Sectors, "subsectors", stats.Subsectors,
		"systems", stats.Systems, "planets", stats.Planets,
		"owned_locations", len(r.owned), "warnings", len(warnings))
	return warnings, nil
}

// ingest normalizes raw rows into Records and indexes them by code.
// Unknown columns pass through untouched; a malformed location is kept
// as the empty string and simply never resolves.
func (r *Repository) ingest(level Level, rows []map[string]any) {
	for _, row := range rows {
		rec := Record(row)
		if b, ok := row["location"].([]byte); ok {
			row["location"] = string(b)
		}
		if _, ok := row["location"].(string); !ok {
			row["location"] = ""
		}
		r.collections[level] = append(r.collections[level], rec)
		if code := rec.Location(); code != "" {
			r.byCode[level][code] = rec.ID()
		}
		if id := rec.ID(); level == LevelSector && id >= r.nextID {
			r.nextID = id + 1
		}
	}
}

// Collection returns the loaded records at one level. The slice is
// owned by the repository; callers must not modify it.
func (r *Repository) Collection(level Level) []Record {
	return r.collections[level]
}

// GetByID finds a record by its synthetic identifier, nil on a miss.
func (r *Repository) GetByID(level Level, id int) Record {
	if id == 0 {
		return nil
	}
	for _, rec := range r.collections[level] {
		if rec.ID() == id {
			return rec
		}
	}
	return nil
}

// GetByCode finds a record by its location code, trying the code index
// first and scanning the collection when the index misses. Nil on a
// miss or empty input.
func (r *Repository) GetByCode(level Level, code string) Record {
	if code == "" {
		return nil
	}
	if id, ok := r.byCode[level][code]; ok {
		if rec := r.GetByID(level, id); rec != nil {
			return rec
		}
	}
	for _, rec := range r.collections[level] {
		if rec.Location() == code {
			return rec
		}
	}
	return nil
}

// Stats reports record counts per level.
func (r *Repository) Stats() Stats {
	return Stats{
		Sectors:    len(r.collections[LevelSector]),
		Subsectors: len(r.collections[LevelSubsector]),
		Systems:    len(r.collections[LevelSystem]),
		Planets:    len(r.collections[LevelPlanet]),
	}
}
