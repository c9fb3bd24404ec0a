package galaxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubSynthesizedForMissingSector(t *testing.T) {
	// Sector table absent entirely; one system-level planet code still
	// forces its sector into existence.
	src := &fakeSource{tables: map[string][]map[string]any{
		"planets": {row(1, "ANM1231")},
	}}
	repo, _ := newTestRepo(t, src)

	stub := repo.GetByCode(LevelSector, "ANM")
	require.NotNil(t, stub)
	assert.Equal(t, "Unexplored Sector", stub.Str("nav"))
	assert.Contains(t, stub.Str("note"), "Automatically generated")
	assert.NotEmpty(t, stub.Str("date"))
}

func TestStubIDsContinueAfterRealIDs(t *testing.T) {
	src := &fakeSource{tables: map[string][]map[string]any{
		"sectors":    {row(7, "MMM")},
		"subsectors": {row(1, "AAA111"), row(2, "BBB111"), row(3, "CCC111")},
	}}
	repo, _ := newTestRepo(t, src)

	assert.Equal(t, 4, repo.Stats().Sectors)

	// Sorted synthesis gives deterministic, strictly increasing ids
	// starting above the highest real id.
	assert.Equal(t, 8, repo.GetByCode(LevelSector, "AAA").ID())
	assert.Equal(t, 9, repo.GetByCode(LevelSector, "BBB").ID())
	assert.Equal(t, 10, repo.GetByCode(LevelSector, "CCC").ID())
}

func TestStubsFromAllThreeLevels(t *testing.T) {
	src := &fakeSource{tables: map[string][]map[string]any{
		"subsectors": {row(1, "AAA111")},
		"systems":    {row(1, "BBB1111")},
		"planets":    {row(1, "CCC11111")},
	}}
	repo, _ := newTestRepo(t, src)

	for _, code := range []string{"AAA", "BBB", "CCC"} {
		assert.NotNil(t, repo.GetByCode(LevelSector, code), "sector %s", code)
	}
}

func TestStubFromDelimitedCode(t *testing.T) {
	src := &fakeSource{tables: map[string][]map[string]any{
		"planets": {row(1, "QQQ/222/1/3")},
	}}
	repo, _ := newTestRepo(t, src)

	assert.NotNil(t, repo.GetByCode(LevelSector, "QQQ"))
}

func TestNoStubForPresentSector(t *testing.T) {
	repo, _ := newTestRepo(t, galaxyFixture())

	sector := repo.GetByCode(LevelSector, "MMM")
	require.NotNil(t, sector)
	assert.Equal(t, "Core", sector.Str("name"), "real record kept, no stub overwrote it")
	assert.Equal(t, 2, repo.Stats().Sectors)
}

func TestShortAndEmptyLocationsAreSkipped(t *testing.T) {
	src := &fakeSource{tables: map[string][]map[string]any{
		"planets": {
			row(1, ""),
			row(2, "XY"),
			row(3, "DDD11111"),
		},
	}}
	repo, _ := newTestRepo(t, src)

	assert.Equal(t, 1, repo.Stats().Sectors)
	assert.NotNil(t, repo.GetByCode(LevelSector, "DDD"))
}

func TestPrefixContainmentInvariantAfterReload(t *testing.T) {
	src := &fakeSource{tables: map[string][]map[string]any{
		"subsectors": {row(1, "MMM222"), row(2, "XXX444")},
		"systems":    {row(1, "MMM2221"), row(2, "YYY5551")},
		"planets":    {row(1, "MMM22213"), row(2, "ZZZ/666/1/2")},
	}}
	repo, _ := newTestRepo(t, src)

	for _, level := range []Level{LevelSubsector, LevelSystem, LevelPlanet} {
		for _, rec := range repo.Collection(level) {
			code := ParentSectorCode(rec.Location())
			require.NotEmpty(t, code)
			assert.NotNil(t, repo.GetByCode(LevelSector, code),
				"sector %s implied by %s must exist", code, rec.Location())
		}
	}
}

func TestEnsureSector(t *testing.T) {
	repo, _ := newTestRepo(t, galaxyFixture())

	// An existing sector comes back unchanged.
	existing, err := repo.EnsureSector("MMM")
	require.NoError(t, err)
	assert.Equal(t, 1, existing.ID())

	// A new code gets a stub.
	created, err := repo.EnsureSector("ANM")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "ANM", created.Location())
	assert.Contains(t, created.Str("note"), "stub")
	assert.Equal(t, 3, repo.Stats().Sectors)

	// Empty input is a no-op.
	none, err := repo.EnsureSector("")
	require.NoError(t, err)
	assert.Nil(t, none)
}
