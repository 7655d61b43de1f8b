// Package hints holds the advisory text shown under a fingering chart. Hints
// are markdown files with YAML frontmatter naming the key they belong to.
package hints

import "strings"

const (
	// DefaultKey names the hint used for keys without their own entry.
	DefaultKey = "default"
	// LegendKey names the general notes printed under every chart.
	LegendKey = "legend"

	keyPlaceholder = "{key}"
)

// Hint is the advisory text for one key.
type Hint struct {
	Key    string   // key spelling as typed, e.g. "Bb"
	Title  string   // from frontmatter `title`, or the first H1
	Lines  []string // one entry per markdown list item
	Source string   // file the hint was read from
}

// forKey fills the {key} placeholder in a default hint.
func (h Hint) forKey(key string) Hint {
	r := strings.NewReplacer(keyPlaceholder, key)
	out := Hint{
		Key:    key,
		Title:  r.Replace(h.Title),
		Lines:  make([]string, len(h.Lines)),
		Source: h.Source,
	}
	for i, l := range h.Lines {
		out.Lines[i] = r.Replace(l)
	}
	return out
}
