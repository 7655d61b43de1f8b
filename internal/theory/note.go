package theory

import "strings"

// Note is a pitch class in 12-tone equal temperament, 0 = C through 11 = B.
type Note uint8

const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// PitchClasses is the number of notes in the chromatic scale.
const PitchClasses = 12

const (
	sharpMarker = "#"
	flatMarker  = "b"
)

// Canonical spellings, sharps only. Flat names are never members.
var chromaticNames = [PitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// IndexOf looks up a canonical note name. The match is exact and
// case-sensitive.
func IndexOf(name string) (Note, bool) {
	for i, n := range chromaticNames {
		if n == name {
			return Note(i), true
		}
	}
	return 0, false
}

// Name returns the canonical spelling of the note.
func (n Note) Name() string {
	return chromaticNames[n%PitchClasses]
}

func (n Note) String() string {
	return n.Name()
}

// Transpose shifts the note by the given number of semitones, wrapping
// around the octave in either direction.
func (n Note) Transpose(semitones int) Note {
	idx := (int(n%PitchClasses) + semitones%PitchClasses + PitchClasses) % PitchClasses
	return Note(idx)
}

// IsAccidental reports whether the canonical spelling carries a sharp.
func (n Note) IsAccidental() bool {
	return strings.Contains(n.Name(), sharpMarker)
}
