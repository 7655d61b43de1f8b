package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"D", "D"},
		{"d", "D"},
		{"c#", "C#"},
		{"Bb", "Bb"},
		{"bb", "Bb"},
		{"BB", "Bb"},
		{"eB", "Eb"},
		{" G ", "G"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseKey_Invalid(t *testing.T) {
	for _, input := range []string{"", "H", "h", "C##", "Cx", "1", "Dbb", "#"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseKey(input)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestNormalize_Flats(t *testing.T) {
	tests := map[string]string{
		"Bb": "A#",
		"Eb": "D#",
		"Ab": "G#",
		"Db": "C#",
		"Gb": "F#",
		"Cb": "B",
		"Fb": "E",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalize_PassThrough(t *testing.T) {
	for _, in := range []string{"C", "D", "F#", "A#", "G"} {
		assert.Equal(t, in, Normalize(in))
	}
	// a flat on a base letter outside the table is left alone
	assert.Equal(t, "Hb", Normalize("Hb"))
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, k := range SupportedKeys() {
		once := Normalize(k)
		assert.Equal(t, once, Normalize(once), "key %q", k)
	}
}

func TestNewKey(t *testing.T) {
	k, err := NewKey("bb")
	require.NoError(t, err)
	assert.Equal(t, "Bb", k.Spelling)
	assert.Equal(t, ASharp, k.Root)
	assert.Equal(t, "A#", k.Canonical())

	_, err = NewKey("H")
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestSupportedKeys_AllResolve(t *testing.T) {
	keys := SupportedKeys()
	assert.Len(t, keys, 17)
	for _, k := range keys {
		_, err := NewKey(k)
		assert.NoError(t, err, k)
	}
}

func TestSupportedKeyGroups_ReturnsCopy(t *testing.T) {
	groups := SupportedKeyGroups()
	require.Len(t, groups, 3)
	groups[0].Keys[0] = "X"
	assert.Equal(t, "C", SupportedKeyGroups()[0].Keys[0])
}
