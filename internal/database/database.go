package database

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"starchart/internal/log"
)

// Store is a read-only handle on the SQLite chart file. It is opened
// once per load cycle and closed when the load finishes; the viewer
// holds no connection between reloads.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the chart file and verifies the connection. A missing
// file is an error here: connectivity failure is the one condition the
// loader propagates instead of recovering from.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("chart file not found: %s", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart file: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping chart file: %w", err)
	}

	log.Debug("chart store opened", "path", path)
	return &Store{db: db, path: path}, nil
}

// Close releases the connection. Safe to call on an already closed
// store.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	log.Debug("chart store closed", "path", s.path)
	return err
}

// Tables lists the table names present in the chart file.
func (s *Store) Tables() ([]string, error) {
	rows, err := squirrel.Select("name").
		From("sqlite_master").
		Where(squirrel.Eq{"type": "table"}).
		RunWith(s.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// HasTable reports whether the named table exists.
func (s *Store) HasTable(name string) (bool, error) {
	var count int
	err := squirrel.Select("COUNT(*)").
		From("sqlite_master").
		Where(squirrel.Eq{"type": "table", "name": name}).
		RunWith(s.db).
		QueryRow().
		Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to probe table %q: %w", name, err)
	}
	return count > 0, nil
}

// LoadTable reads every row of a table as a column-to-value map. The
// schema is not fixed: whatever columns the table has come through,
// which keeps the loader working when the chart format grows columns.
func (s *Store) LoadTable(name string) ([]map[string]any, error) {
	rows, err := squirrel.Select("*").From(name).RunWith(s.db).Query()
	if err != nil {
		return nil, fmt.Errorf("failed to read table %q: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns of %q: %w", name, err)
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %q: %w", name, err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Column describes one column of a chart table.
type Column struct {
	Name string
	Type string
}

// Schema returns the column layout of every table, for the viewer's
// schema display.
func (s *Store) Schema() (map[string][]Column, error) {
	tables, err := s.Tables()
	if err != nil {
		return nil, err
	}

	schema := make(map[string][]Column, len(tables))
	for _, table := range tables {
		cols, err := s.tableColumns(table)
		if err != nil {
			return nil, err
		}
		schema[table] = cols
	}
	return schema, nil
}

func (s *Store) tableColumns(table string) ([]Column, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %q: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column of %q: %w", table, err)
		}
		cols = append(cols, Column{Name: name, Type: typ})
	}
	return cols, rows.Err()
}
