package galaxy

import (
	"fmt"
	"sort"
	"time"

	"starchart/internal/log"
)

const (
	stubNav  = "Unexplored Sector"
	stubNote = "Automatically generated stub sector"
)

// synthesizeStubs repairs the prefix-containment invariant after a
// load: every subsector, system and planet location implies a sector
// code, and any implied sector with no real record gets a placeholder
// one. After this pass ParentSectorCode always resolves for every
// location in the dataset. Runs once per reload; stubs are
// session-local and never written back to the store.
func (r *Repository) synthesizeStubs() error {
	missing := make(map[string]struct{})
	for _, level := range []Level{LevelSubsector, LevelSystem, LevelPlanet} {
		for _, rec := range r.collections[level] {
			loc := rec.Location()
			if loc == "" {
				continue
			}
			code := ParentSectorCode(loc)
			if code == "" {
				continue
			}
			if _, ok := r.byCode[LevelSector][code]; !ok {
				missing[code] = struct{}{}
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	// Sorted for deterministic ids across reloads.
	codes := make([]string, 0, len(missing))
	for code := range missing {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	log.Info("synthesizing stub sectors", "count", len(codes))
	for _, code := range codes {
		if _, err := r.insertStubSector(code); err != nil {
			return err
		}
	}
	return nil
}

// insertStubSector creates one placeholder sector record. A duplicate
// id here means the monotonic counter was broken upstream, which is an
// internal-consistency fault, not a data problem: synthesis aborts.
func (r *Repository) insertStubSector(code string) (Record, error) {
	id := r.nextID
	for _, rec := range r.collections[LevelSector] {
		if rec.ID() == id {
			return nil, fmt.Errorf("stub sector id collision: id %d already assigned", id)
		}
	}
	r.nextID++

	stub := Record{
		"id":       id,
		"location": code,
		"nav":      stubNav,
		"note":     stubNote,
		"date":     time.Now().UTC().Format("2006-01-02T15:04:05.000000Z"),
	}
	r.collections[LevelSector] = append(r.collections[LevelSector], stub)
	r.byCode[LevelSector][code] = id
	log.Debug("created stub sector", "code", code, "id", id)
	return stub, nil
}

// EnsureSector returns the sector record for code, synthesizing a
// stub when no record exists. Used for targeted repair of a single
// named sector; the bulk pass in synthesizeStubs covers everything
// reachable from loaded data.
func (r *Repository) EnsureSector(code string) (Record, error) {
	if code == "" {
		return nil, nil
	}
	if rec := r.GetByCode(LevelSector, code); rec != nil {
		return rec, nil
	}
	return r.insertStubSector(code)
}
