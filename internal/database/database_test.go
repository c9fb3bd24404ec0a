package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createChart writes a small chart file and returns its path.
func createChart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	statements := []string{
		`CREATE TABLE sectors (id INTEGER PRIMARY KEY, location TEXT, nav TEXT)`,
		`CREATE TABLE planets (id INTEGER PRIMARY KEY, location TEXT, owner TEXT, mineral_index INTEGER)`,
		`INSERT INTO sectors (id, location, nav) VALUES (1, 'MMM', 'Core Sector')`,
		`INSERT INTO planets (id, location, owner, mineral_index) VALUES (1, 'MMM22213', 'Wyvern Supremacy', 7)`,
		`INSERT INTO planets (id, location, owner, mineral_index) VALUES (2, 'NNN11111', NULL, NULL)`,
	}
	for _, stmt := range statements {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTablesAndHasTable(t *testing.T) {
	store, err := Open(createChart(t))
	require.NoError(t, err)
	defer store.Close()

	tables, err := store.Tables()
	require.NoError(t, err)
	assert.Contains(t, tables, "sectors")
	assert.Contains(t, tables, "planets")

	ok, err := store.HasTable("sectors")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.HasTable("subsectors")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadTable(t *testing.T) {
	store, err := Open(createChart(t))
	require.NoError(t, err)
	defer store.Close()

	rows, err := store.LoadTable("planets")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "MMM22213", rows[0]["location"])
	assert.Equal(t, "Wyvern Supremacy", rows[0]["owner"])
	assert.EqualValues(t, 7, rows[0]["mineral_index"])

	// NULL columns come through as nil, not as an error.
	assert.Nil(t, rows[1]["owner"])
}

func TestLoadTableUnknownColumnsPassThrough(t *testing.T) {
	store, err := Open(createChart(t))
	require.NoError(t, err)
	defer store.Close()

	rows, err := store.LoadTable("sectors")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Core Sector", rows[0]["nav"])
}

func TestSchema(t *testing.T) {
	store, err := Open(createChart(t))
	require.NoError(t, err)
	defer store.Close()

	schema, err := store.Schema()
	require.NoError(t, err)

	cols, ok := schema["planets"]
	require.True(t, ok)

	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	assert.Equal(t, []string{"id", "location", "owner", "mineral_index"}, names)
}

func TestCloseIsIdempotent(t *testing.T) {
	store, err := Open(createChart(t))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
