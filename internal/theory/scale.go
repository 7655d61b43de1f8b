package theory

// DegreeCount is the number of degrees in a major scale.
const DegreeCount = 7

// whole, whole, half, whole, whole, whole, half
var majorIntervals = [DegreeCount]int{0, 2, 4, 5, 7, 9, 11}

var degreeSymbols = [DegreeCount]string{"1", "2", "3", "4", "5", "6", "7"}

// ScaleTable maps the chromatic notes of a major scale to their numbered
// notation degree symbols. It is immutable once built.
type ScaleTable struct {
	degrees map[Note]string
	order   []Note
}

// BuildScale builds the major scale table rooted at the canonical root name.
// An unknown root yields an empty table.
func BuildScale(root string) ScaleTable {
	rootIndex, ok := IndexOf(root)
	if !ok {
		return ScaleTable{}
	}

	table := ScaleTable{
		degrees: make(map[Note]string, DegreeCount),
		order:   make([]Note, 0, DegreeCount),
	}
	for i, offset := range majorIntervals {
		n := rootIndex.Transpose(offset)
		table.degrees[n] = degreeSymbols[i]
		table.order = append(table.order, n)
	}
	return table
}

// Degree returns the degree symbol of n if n is a member of the scale.
func (s ScaleTable) Degree(n Note) (string, bool) {
	sym, ok := s.degrees[n]
	return sym, ok
}

// Len returns the number of notes in the table: 7, or 0 for a failed build.
func (s ScaleTable) Len() int {
	return len(s.degrees)
}

// Empty reports whether the build failed.
func (s ScaleTable) Empty() bool {
	return len(s.degrees) == 0
}

// Notes returns the scale members in degree order, starting at the tonic.
func (s ScaleTable) Notes() []Note {
	return append([]Note(nil), s.order...)
}
