package galaxy

import (
	"strconv"
	"strings"
)

// Level identifies a rung of the location hierarchy.
type Level int

const (
	LevelUnknown Level = iota
	LevelSector
	LevelSubsector
	LevelSystem
	LevelPlanet
)

func (l Level) String() string {
	switch l {
	case LevelSector:
		return "sector"
	case LevelSubsector:
		return "subsector"
	case LevelSystem:
		return "system"
	case LevelPlanet:
		return "planet"
	default:
		return "unknown"
	}
}

// Child returns the level one step down the hierarchy, or LevelUnknown
// for planets and unknown input.
func (l Level) Child() Level {
	switch l {
	case LevelSector:
		return LevelSubsector
	case LevelSubsector:
		return LevelSystem
	case LevelSystem:
		return LevelPlanet
	default:
		return LevelUnknown
	}
}

// LevelOfCode classifies a location code by shape. Fixed-width codes
// are classified by length, "/"-delimited codes by part count.
func LevelOfCode(code string) Level {
	if strings.Contains(code, "/") {
		switch strings.Count(code, "/") {
		case 1:
			return LevelSubsector
		case 2:
			return LevelSystem
		case 3:
			return LevelPlanet
		}
		return LevelUnknown
	}
	switch len(code) {
	case 3:
		return LevelSector
	case 6:
		return LevelSubsector
	case 7:
		return LevelSystem
	case 8:
		return LevelPlanet
	}
	return LevelUnknown
}

// Record is one row of chart data: an open mapping of column name to
// value. Every record carries an "id" and a "location"; everything else
// is passed through from the backing store untouched.
type Record map[string]any

// ID returns the record's synthetic identifier, 0 if absent.
func (r Record) ID() int {
	return r.Int("id")
}

// Location returns the record's location code, "" if absent or
// malformed.
func (r Record) Location() string {
	return r.Str("location")
}

// Str returns the named attribute as a string, "" when missing or not
// text-like.
func (r Record) Str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// Int returns the named attribute as an int, 0 when missing or not
// numeric. The store hands back int64; synthesized records carry int.
func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Has reports whether the attribute is present and non-nil.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}
