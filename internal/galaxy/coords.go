package galaxy

import (
	"math"
	"strings"
)

// SectorCoords is a sector's position in the 26x26x26 galaxy grid.
// Each axis is one letter of the sector code, A=0 through Z=25.
type SectorCoords struct {
	X, Y, Z int
}

// SubsectorCoords extends SectorCoords with the 9x9x9 offsets inside
// the sector, 0-indexed (the code digits are 1-indexed).
type SubsectorCoords struct {
	SectorCoords
	SX, SY, SZ int
}

// SystemCoords extends SubsectorCoords with the system's 0-indexed
// position inside the subsector.
type SystemCoords struct {
	SubsectorCoords
	Pos int
}

// SectorCoordsOf decodes the sector portion of a location code.
// Short or empty input decodes to the origin; this never fails.
func SectorCoordsOf(code string) SectorCoords {
	if len(code) < 3 {
		return SectorCoords{}
	}
	return SectorCoords{
		X: letterAxis(code[0]),
		Y: letterAxis(code[1]),
		Z: letterAxis(code[2]),
	}
}

// Code re-encodes the coordinates as a 3-letter sector code.
func (c SectorCoords) Code() string {
	return string([]byte{axisLetter(c.X), axisLetter(c.Y), axisLetter(c.Z)})
}

// SubsectorCoordsOf decodes a subsector code (sector letters plus three
// digits). Non-digit offsets decode to zero; the sector portion still
// decodes whenever it is present.
func SubsectorCoordsOf(code string) SubsectorCoords {
	coords := SubsectorCoords{SectorCoords: SectorCoordsOf(code)}
	if len(code) < 6 {
		return coords
	}
	coords.SX = digitAxis(code[3])
	coords.SY = digitAxis(code[4])
	coords.SZ = digitAxis(code[5])
	return coords
}

// SystemCoordsOf decodes a system code (subsector code plus one digit).
func SystemCoordsOf(code string) SystemCoords {
	coords := SystemCoords{SubsectorCoords: SubsectorCoordsOf(code)}
	if len(code) >= 7 {
		coords.Pos = digitAxis(code[6])
	}
	return coords
}

// Distance returns the Euclidean distance between two sectors in sector
// units. Subsector offsets are ignored. Empty input yields 0.
func Distance(codeA, codeB string) float64 {
	if codeA == "" || codeB == "" {
		return 0
	}
	a := SectorCoordsOf(codeA)
	b := SectorCoordsOf(codeB)
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	dz := float64(b.Z - a.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// FormatLocation renders a location code with dash separators between
// hierarchy levels. Codes that fit no known level are returned as-is.
func FormatLocation(code string) string {
	if code == "" {
		return ""
	}
	if strings.Contains(code, "/") {
		return strings.Join(strings.Split(code, "/"), "-")
	}
	switch len(code) {
	case 3:
		return code
	case 6:
		return code[:3] + "-" + code[3:]
	case 7:
		return code[:3] + "-" + code[3:6] + "-" + code[6:]
	case 8:
		return code[:3] + "-" + code[3:6] + "-" + code[6:7] + "-" + code[7:]
	}
	return code
}

// letterAxis maps A..Z (case-insensitive) to 0..25, clamped.
func letterAxis(ch byte) int {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	v := int(ch) - 'A'
	if v < 0 {
		return 0
	}
	if v > 25 {
		return 25
	}
	return v
}

func axisLetter(v int) byte {
	if v < 0 {
		v = 0
	}
	if v > 25 {
		v = 25
	}
	return byte('A' + v)
}

// digitAxis maps the 1-indexed code digits 1..9 to 0..8, clamped.
// Anything that is not a digit decodes to 0.
func digitAxis(ch byte) int {
	if ch < '0' || ch > '9' {
		return 0
	}
	v := int(ch) - '1'
	if v < 0 {
		return 0
	}
	if v > 8 {
		return 8
	}
	return v
}
