package galaxy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is an in-memory RowSource for driving reloads without a
// chart file.
type fakeSource struct {
	tables    map[string][]map[string]any
	readErrs  map[string]error
	closed    int
}

func (f *fakeSource) HasTable(name string) (bool, error) {
	if _, ok := f.readErrs[name]; ok {
		return true, nil
	}
	_, ok := f.tables[name]
	return ok, nil
}

func (f *fakeSource) LoadTable(name string) ([]map[string]any, error) {
	if err, ok := f.readErrs[name]; ok {
		return nil, err
	}
	// Fresh copies, since the repository normalizes rows in place.
	var out []map[string]any
	for _, row := range f.tables[name] {
		copied := make(map[string]any, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out = append(out, copied)
	}
	return out, nil
}

func (f *fakeSource) Close() error {
	f.closed++
	return nil
}

func row(id int, location string, extra ...any) map[string]any {
	m := map[string]any{"id": int64(id), "location": location}
	for i := 0; i+1 < len(extra); i += 2 {
		m[extra[i].(string)] = extra[i+1]
	}
	return m
}

func newTestRepo(t *testing.T, src *fakeSource) (*Repository, []string) {
	t.Helper()
	repo := NewRepository(func() (RowSource, error) { return src, nil }, "WYVERN SUPREMACY")
	warnings, err := repo.Reload()
	require.NoError(t, err)
	return repo, warnings
}

func galaxyFixture() *fakeSource {
	return &fakeSource{tables: map[string][]map[string]any{
		"sectors": {
			row(1, "MMM", "name", "Core"),
			row(2, "NNN"),
		},
		"subsectors": {
			row(1, "MMM222"),
			row(2, "MMM333"),
			row(3, "NNN111"),
		},
		"systems": {
			row(1, "MMM2221"),
			row(2, "MMM3331"),
		},
		"planets": {
			row(1, "MMM22213", "owner", "Wyvern Supremacy Fleet Command", "name", "Homeworld"),
			row(2, "MMM33311", "owner", "Free Traders"),
		},
	}}
}

func TestReloadLoadsAllCollections(t *testing.T) {
	repo, warnings := newTestRepo(t, galaxyFixture())
	assert.Empty(t, warnings)
	assert.Equal(t, Stats{Sectors: 2, Subsectors: 3, Systems: 2, Planets: 2}, repo.Stats())
}

func TestReloadMissingTablesAreWarningsNotErrors(t *testing.T) {
	src := &fakeSource{tables: map[string][]map[string]any{
		"planets": {row(1, "MMM22213")},
	}}
	repo, warnings := newTestRepo(t, src)

	assert.Len(t, warnings, 3)
	assert.Equal(t, 1, repo.Stats().Planets)
	assert.Equal(t, 0, repo.Stats().Subsectors)
	assert.Equal(t, 0, repo.Stats().Systems)
	// The sector collection is not empty: the stub pass repaired it.
	assert.Equal(t, 1, repo.Stats().Sectors)
}

func TestReloadUnreadableTableIsWarning(t *testing.T) {
	src := galaxyFixture()
	src.readErrs = map[string]error{"systems": errors.New("disk exploded")}
	repo, warnings := newTestRepo(t, src)

	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "systems")
	assert.Equal(t, 0, repo.Stats().Systems)
	assert.Equal(t, 2, repo.Stats().Planets, "other tables load normally")
}

func TestReloadStoreFailurePropagates(t *testing.T) {
	repo := NewRepository(func() (RowSource, error) {
		return nil, errors.New("no such file")
	}, "WYVERN SUPREMACY")
	_, err := repo.Reload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
}

func TestReloadClosesSource(t *testing.T) {
	src := galaxyFixture()
	repo, _ := newTestRepo(t, src)
	assert.Equal(t, 1, src.closed)

	// Closed again on the next cycle, including with read failures.
	src.readErrs = map[string]error{"sectors": errors.New("boom")}
	_, err := repo.Reload()
	require.NoError(t, err)
	assert.Equal(t, 2, src.closed)
}

func TestReloadIdempotent(t *testing.T) {
	src := galaxyFixture()
	delete(src.tables, "sectors") // force stub synthesis into the mix
	repo, _ := newTestRepo(t, src)

	first := repo.Stats()
	firstOwned := repo.OwnedCount()
	firstStubID := repo.GetByCode(LevelSector, "MMM").ID()

	_, err := repo.Reload()
	require.NoError(t, err)

	assert.Equal(t, first, repo.Stats())
	assert.Equal(t, firstOwned, repo.OwnedCount())
	assert.Equal(t, firstStubID, repo.GetByCode(LevelSector, "MMM").ID())
}

func TestMalformedLocationTreatedAsEmpty(t *testing.T) {
	src := &fakeSource{tables: map[string][]map[string]any{
		"sectors": {
			{"id": int64(1), "location": nil},
			{"id": int64(2), "location": int64(42)},
			{"id": int64(3), "location": []byte("MMM")},
		},
	}}
	repo, _ := newTestRepo(t, src)

	assert.Equal(t, 3, repo.Stats().Sectors)
	assert.Equal(t, "", repo.GetByID(LevelSector, 1).Location())
	assert.Equal(t, "", repo.GetByID(LevelSector, 2).Location())
	assert.Equal(t, "MMM", repo.GetByID(LevelSector, 3).Location(), "BLOB text is decoded")
}

func TestUnknownColumnsPassThrough(t *testing.T) {
	src := &fakeSource{tables: map[string][]map[string]any{
		"sectors": {row(1, "MMM", "mineral_index", int64(7), "survey_notes", "rich belt")},
	}}
	repo, _ := newTestRepo(t, src)

	sector := repo.GetByCode(LevelSector, "MMM")
	require.NotNil(t, sector)
	assert.Equal(t, 7, sector.Int("mineral_index"))
	assert.Equal(t, "rich belt", sector.Str("survey_notes"))
}

func TestGetByID(t *testing.T) {
	repo, _ := newTestRepo(t, galaxyFixture())

	require.NotNil(t, repo.GetByID(LevelSector, 2))
	assert.Equal(t, "NNN", repo.GetByID(LevelSector, 2).Location())

	assert.Nil(t, repo.GetByID(LevelSector, 99))
	assert.Nil(t, repo.GetByID(LevelPlanet, 0))
}

func TestGetByCode(t *testing.T) {
	repo, _ := newTestRepo(t, galaxyFixture())

	require.NotNil(t, repo.GetByCode(LevelSubsector, "MMM333"))
	assert.Equal(t, 2, repo.GetByCode(LevelSubsector, "MMM333").ID())

	assert.Nil(t, repo.GetByCode(LevelSubsector, "ZZZ999"))
	assert.Nil(t, repo.GetByCode(LevelSubsector, ""))
}
