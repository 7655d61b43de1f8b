package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned when a key spelling cannot be resolved to one of
// the twelve canonical roots.
var ErrInvalidKey = errors.New("invalid key")

// flat spelling base letter -> canonical root
var flatSubstitutes = map[byte]string{
	'B': "A#",
	'E': "D#",
	'A': "G#",
	'D': "C#",
	'G': "F#",
	'C': "B",
	'F': "E",
}

// Key is a major key. Spelling keeps the form the user asked for (e.g. "Bb")
// while Root is the canonical pitch class used for all arithmetic.
type Key struct {
	Spelling string
	Root     Note
}

// ParseKey validates raw user input and normalizes its case. Accepted forms
// are a letter A-G (either case) optionally followed by '#' or a flat marker
// ('b' or 'B'). The result is "D", "C#" or "Bb" style.
func ParseKey(input string) (string, error) {
	s := strings.TrimSpace(input)
	if len(s) == 0 || len(s) > 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, input)
	}

	base := s[0]
	if base >= 'a' && base <= 'z' {
		base -= 'a' - 'A'
	}
	if base < 'A' || base > 'G' {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, input)
	}
	if len(s) == 1 {
		return string(base), nil
	}

	switch s[1] {
	case '#':
		return string(base) + sharpMarker, nil
	case 'b', 'B':
		return string(base) + flatMarker, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, input)
	}
}

// Normalize maps a flat-spelled key to its canonical sharp or natural
// spelling. Sharp and bare spellings pass through, as does a flat on a base
// letter outside the substitution table.
func Normalize(key string) string {
	if len(key) > 1 && key[1:2] == flatMarker {
		if canonical, ok := flatSubstitutes[key[0]]; ok {
			return canonical
		}
	}
	return key
}

// NewKey parses, normalizes and validates a key spelling.
func NewKey(raw string) (Key, error) {
	spelling, err := ParseKey(raw)
	if err != nil {
		return Key{}, err
	}
	root, ok := IndexOf(Normalize(spelling))
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, raw)
	}
	return Key{Spelling: spelling, Root: root}, nil
}

// Canonical returns the sharp/natural name of the key's root.
func (k Key) Canonical() string {
	return k.Root.Name()
}

func (k Key) String() string {
	return k.Spelling
}

// KeyGroup is a labelled set of key spellings.
type KeyGroup struct {
	Name string
	Keys []string
}

var keyGroups = []KeyGroup{
	{Name: "natural", Keys: []string{"C", "D", "E", "F", "G", "A", "B"}},
	{Name: "sharp", Keys: []string{"C#", "D#", "F#", "G#", "A#"}},
	{Name: "flat", Keys: []string{"Bb", "Eb", "Ab", "Db", "Gb"}},
}

// SupportedKeyGroups returns the advertised key spellings grouped by
// accidental.
func SupportedKeyGroups() []KeyGroup {
	groups := make([]KeyGroup, len(keyGroups))
	for i, g := range keyGroups {
		groups[i] = KeyGroup{Name: g.Name, Keys: append([]string(nil), g.Keys...)}
	}
	return groups
}

// SupportedKeys returns every advertised key spelling in display order.
func SupportedKeys() []string {
	var keys []string
	for _, g := range keyGroups {
		keys = append(keys, g.Keys...)
	}
	return keys
}
