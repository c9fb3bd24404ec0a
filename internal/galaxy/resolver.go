package galaxy

import "strings"

// Parent codes are pure prefix arithmetic: a location code always
// embeds every ancestor's code. Fixed-width codes are sliced at the
// 3/6/7 boundaries; "/"-delimited codes are rejoined part by part.
// An empty return means the input is too short to have that ancestor.

// ParentSectorCode returns the sector code embedded in any location
// code, or "" when the input is shorter than a sector code.
func ParentSectorCode(code string) string {
	if strings.Contains(code, "/") {
		return strings.SplitN(code, "/", 2)[0]
	}
	if len(code) < 3 {
		return ""
	}
	return code[:3]
}

// ParentSubsectorCode returns the subsector code embedded in a system
// or planet code, or "" when none is present.
func ParentSubsectorCode(code string) string {
	if strings.Contains(code, "/") {
		parts := strings.Split(code, "/")
		if len(parts) < 2 {
			return ""
		}
		return parts[0] + parts[1]
	}
	if len(code) < 6 {
		return ""
	}
	return code[:6]
}

// ParentSystemCode returns the system code embedded in a planet code,
// or "" when none is present.
func ParentSystemCode(code string) string {
	if strings.Contains(code, "/") {
		parts := strings.Split(code, "/")
		if len(parts) < 3 {
			return ""
		}
		return parts[0] + parts[1] + parts[2]
	}
	if len(code) < 7 {
		return ""
	}
	return code[:7]
}

// parentCode returns the code of the ancestor at the given level.
func parentCode(code string, level Level) string {
	switch level {
	case LevelSector:
		return ParentSectorCode(code)
	case LevelSubsector:
		return ParentSubsectorCode(code)
	case LevelSystem:
		return ParentSystemCode(code)
	default:
		return ""
	}
}

// Children returns every record at childLevel whose location starts
// with parentCode. The collections are small and session-lived, so a
// linear scan is fine; no index beyond the code maps is kept.
func (r *Repository) Children(childLevel Level, parentCode string) []Record {
	if parentCode == "" {
		return nil
	}
	var out []Record
	for _, rec := range r.Collection(childLevel) {
		loc := rec.Location()
		if loc != "" && strings.HasPrefix(loc, parentCode) {
			out = append(out, rec)
		}
	}
	return out
}

// GetChildren returns the records one level down from the identified
// record. Absence of children is a normal outcome, not an error.
func (r *Repository) GetChildren(level Level, parentID int) []Record {
	parent := r.GetByID(level, parentID)
	if parent == nil {
		return nil
	}
	return r.Children(level.Child(), parent.Location())
}

// hint columns carried by some backing rows. They are an optional
// shortcut, never a source of truth: resolution falls back to the
// code prefix when the hint is absent, null, or dangling. When a hint
// resolves but disagrees with the prefix, the hint wins silently,
// matching the source data's historical behavior.
var parentHintColumn = map[Level]string{
	LevelSector:    "sector_id",
	LevelSubsector: "subsector_id",
	LevelSystem:    "system_id",
}

// Parent resolves a record's ancestor at parentLevel, trying the stored
// hint id first and deriving from the code prefix otherwise. Returns
// nil when no ancestor record exists at that level; callers must not
// synthesize one (stubs are created in bulk at load time only).
func (r *Repository) Parent(rec Record, parentLevel Level) Record {
	if rec == nil {
		return nil
	}
	if col, ok := parentHintColumn[parentLevel]; ok && rec.Has(col) {
		if hinted := r.GetByID(parentLevel, rec.Int(col)); hinted != nil {
			return hinted
		}
	}
	return r.GetByCode(parentLevel, parentCode(rec.Location(), parentLevel))
}

// AncestorChain is a record's resolved ancestry, outermost first.
// Levels above the record's own level are nil; so is any level whose
// record is genuinely missing.
type AncestorChain struct {
	Sector    Record
	Subsector Record
	System    Record
}

// Ancestors walks a record's full parent chain, one Parent call per
// level above it.
func (r *Repository) Ancestors(level Level, id int) AncestorChain {
	rec := r.GetByID(level, id)
	if rec == nil {
		return AncestorChain{}
	}
	var chain AncestorChain
	if level > LevelSector {
		chain.Sector = r.Parent(rec, LevelSector)
	}
	if level > LevelSubsector {
		chain.Subsector = r.Parent(rec, LevelSubsector)
	}
	if level > LevelSystem {
		chain.System = r.Parent(rec, LevelSystem)
	}
	return chain
}
