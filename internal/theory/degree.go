package theory

import "strings"

// Unresolved is the symbol for a note no tier of the resolver could name.
const Unresolved = "?"

// Resolve names a chromatic note relative to scale. Scale members get their
// degree symbol directly. Other notes borrow the symbol of their natural base
// note with the accidental appended, so C# in C major becomes "1#".
func Resolve(n Note, scale ScaleTable) string {
	if sym, ok := scale.Degree(n); ok {
		return sym
	}
	if sym, ok := accidentalDegree(n, scale, sharpMarker); ok {
		return sym
	}
	if sym, ok := accidentalDegree(n, scale, flatMarker); ok {
		return sym
	}
	return Unresolved
}

// accidentalDegree strips marker from the canonical name of n and looks the
// remaining base note up in scale.
func accidentalDegree(n Note, scale ScaleTable, marker string) (string, bool) {
	name := n.Name()
	i := strings.Index(name, marker)
	if i < 0 {
		return "", false
	}
	base, ok := IndexOf(name[:i])
	if !ok {
		return "", false
	}
	sym, ok := scale.Degree(base)
	if !ok {
		return "", false
	}
	return sym + marker, true
}
