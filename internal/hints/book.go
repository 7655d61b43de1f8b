package hints

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"erhu/internal/logs"
)

//go:embed data/*.md
var builtin embed.FS

// Book is the set of hints available for lookup. It is read-only after Load.
type Book struct {
	hints map[string]Hint
}

// Load reads the built-in hints, then every *.md file in dirs. A user file
// replaces the built-in hint with the same key. Files that cannot be read or
// parsed are logged and skipped.
func Load(dirs []string) (*Book, error) {
	b := &Book{hints: make(map[string]Hint)}

	if err := b.loadFS(builtin, "data", "builtin"); err != nil {
		return nil, fmt.Errorf("loading built-in hints: %w", err)
	}
	if _, ok := b.hints[DefaultKey]; !ok {
		return nil, fmt.Errorf("built-in hints have no %q entry", DefaultKey)
	}

	for _, dir := range dirs {
		if err := b.loadFS(os.DirFS(dir), ".", dir); err != nil {
			logs.Logger.Printf("Warning: could not read hint dir %s: %v", dir, err)
			continue
		}
	}

	return b, nil
}

// loadFS reads the hint files directly under root. label prefixes the
// Source of each hint.
func (b *Book) loadFS(fsys fs.FS, root, label string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		p := path.Join(root, entry.Name())
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			logs.Logger.Printf("Warning: could not read hint %s: %v", p, err)
			continue
		}
		h, err := Parse(content)
		if err != nil {
			logs.Logger.Printf("Warning: skipping hint %s: %v", p, err)
			continue
		}
		h.Source = filepath.Join(label, entry.Name())
		b.hints[h.Key] = h
	}

	return nil
}

// Lookup returns the hint for a key spelling, falling back to the default
// entry with the key filled in.
func (b *Book) Lookup(key string) Hint {
	if h, ok := b.hints[key]; ok {
		return h
	}
	return b.hints[DefaultKey].forKey(key)
}

// Has reports whether key has its own entry.
func (b *Book) Has(key string) bool {
	if key == DefaultKey || key == LegendKey {
		return false
	}
	_, ok := b.hints[key]
	return ok
}

// Legend returns the general notes printed under every chart.
func (b *Book) Legend() Hint {
	return b.hints[LegendKey]
}

// Keys returns the keys with their own entry, sorted.
func (b *Book) Keys() []string {
	var keys []string
	for k := range b.hints {
		if k == DefaultKey || k == LegendKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
