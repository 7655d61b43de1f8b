package theory

import "fmt"

const (
	// Positions is the number of hand positions charted.
	Positions = 4
	// FingerSlots covers the open string and fingers 1 to 4.
	FingerSlots = 5

	// each position shifts the hand up a fifth
	positionShift = 7
)

// Semitones above the position's base pitch for fingers 1-4. Slot 0 is the
// open string, which only takes the position shift.
var fingerIntervals = [FingerSlots]int{0, 2, 4, 5, 7}

// String identifies one of the two strings of the instrument.
type String int

const (
	Inner String = iota
	Outer
)

// Strings lists both strings in chart order.
var Strings = [...]String{Inner, Outer}

// Open tuning, inner D and outer A.
var openNotes = [...]Note{Inner: D, Outer: A}

// Open returns the pitch of the unstopped string.
func (s String) Open() Note {
	return openNotes[s]
}

func (s String) String() string {
	switch s {
	case Inner:
		return "inner"
	case Outer:
		return "outer"
	default:
		return fmt.Sprintf("String(%d)", int(s))
	}
}

// PitchAt returns the note sounded on s at the given position and finger
// slot. Out of range slots panic like any array index.
func PitchAt(s String, position, finger int) Note {
	base := s.Open().Transpose(positionShift * position)
	if finger == 0 {
		return base
	}
	return base.Transpose(fingerIntervals[finger])
}

// Grid holds the degree symbols of one string, indexed [position][finger].
type Grid [Positions][FingerSlots]string

// Matrix is the full fingering chart for a key. It is a value type, so
// copies never share cells.
type Matrix struct {
	Key   Key
	Scale ScaleTable
	grids [len(Strings)]Grid
}

// Cell returns the symbol for one string, position and finger slot.
func (m Matrix) Cell(s String, position, finger int) string {
	return m.grids[s][position][finger]
}

// Grid returns a copy of the symbols for one string.
func (m Matrix) Grid(s String) Grid {
	return m.grids[s]
}

// OpenDegrees returns the degree symbols of both open strings.
func (m Matrix) OpenDegrees() (inner, outer string) {
	return m.grids[Inner][0][0], m.grids[Outer][0][0]
}

// Generate builds the fingering chart for a raw key spelling. The only error
// is ErrInvalidKey; cells that cannot be named hold Unresolved.
func Generate(rawKey string) (Matrix, error) {
	key, err := NewKey(rawKey)
	if err != nil {
		return Matrix{}, err
	}
	return GenerateKey(key)
}

// GenerateKey builds the fingering chart for an already parsed key.
func GenerateKey(key Key) (Matrix, error) {
	scale := BuildScale(Normalize(key.Spelling))
	if scale.Empty() {
		return Matrix{}, fmt.Errorf("%w: %q", ErrInvalidKey, key.Spelling)
	}

	m := Matrix{Key: key, Scale: scale}
	for _, s := range Strings {
		for p := 0; p < Positions; p++ {
			for f := 0; f < FingerSlots; f++ {
				m.grids[s][p][f] = Resolve(PitchAt(s, p, f), scale)
			}
		}
	}
	return m, nil
}
