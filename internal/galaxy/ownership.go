package galaxy

import "strings"

// buildOwnership derives the set of location codes held by the faction
// whose marker text appears in a planet's owner field. A planet owns
// its own code and marks every ancestor prefix as held, so ownership
// is monotonic up the hierarchy: an owned planet always implies an
// owned sector. Both code encodings feed the same set, since the
// source data mixes them. The set is rebuilt whole on every reload.
func buildOwnership(planets []Record, marker string) map[string]struct{} {
	owned := make(map[string]struct{})
	if marker == "" {
		return owned
	}
	marker = strings.ToUpper(marker)

	for _, planet := range planets {
		loc := planet.Location()
		owner := planet.Str("owner")
		if loc == "" || owner == "" || !strings.Contains(strings.ToUpper(owner), marker) {
			continue
		}

		owned[loc] = struct{}{}
		if len(loc) >= 7 {
			owned[loc[:7]] = struct{}{}
		}
		if len(loc) >= 6 {
			owned[loc[:6]] = struct{}{}
		}
		if len(loc) >= 3 {
			owned[loc[:3]] = struct{}{}
		}

		if strings.Contains(loc, "/") {
			parts := strings.Split(loc, "/")
			owned[parts[0]] = struct{}{}
			if len(parts) >= 2 {
				owned[parts[0]+parts[1]] = struct{}{}
			}
			if len(parts) >= 3 {
				owned[parts[0]+parts[1]+parts[2]] = struct{}{}
			}
		}
	}
	return owned
}

// IsOwned reports whether a location code is held by the configured
// faction, directly or through a descendant planet. False for empty
// input; never fails.
func (r *Repository) IsOwned(code string) bool {
	if code == "" {
		return false
	}
	_, ok := r.owned[code]
	return ok
}

// OwnedCount returns the size of the ownership cache.
func (r *Repository) OwnedCount() int {
	return len(r.owned)
}
