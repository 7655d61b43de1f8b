package hints

import (
	"bytes"
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var errNoKey = errors.New("hint has no key in frontmatter")

type hintFrontmatter struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
}

// Parse reads a hint file: YAML frontmatter with a `key` and optional
// `title`, followed by a markdown body whose list items become the hint lines.
func Parse(content []byte) (Hint, error) {
	fm, body, err := splitFrontmatter(content)
	if err != nil {
		return Hint{}, err
	}
	if strings.TrimSpace(fm.Key) == "" {
		return Hint{}, errNoKey
	}

	title, lines := parseBody(body)
	if fm.Title != "" {
		title = fm.Title
	}

	return Hint{
		Key:   strings.TrimSpace(fm.Key),
		Title: title,
		Lines: lines,
	}, nil
}

func splitFrontmatter(content []byte) (hintFrontmatter, []byte, error) {
	var fm hintFrontmatter
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return fm, content, nil
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}

	if fmEnd == 0 {
		return fm, content, nil
	}

	fmBytes := bytes.Join(lines[1:fmEnd], []byte("\n"))
	if err := yaml.Unmarshal(fmBytes, &fm); err != nil {
		return fm, nil, err
	}

	return fm, bytes.Join(lines[fmEnd+1:], []byte("\n")), nil
}

// parseBody returns the first level-1 heading and the text of every list item.
func parseBody(body []byte) (string, []string) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(body))

	var title string
	var lines []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			if n.(*ast.Heading).Level == 1 && title == "" {
				title = string(n.Text(body))
			}
			return ast.WalkSkipChildren, nil
		case ast.KindListItem:
			if item := strings.TrimSpace(string(n.Text(body))); item != "" {
				lines = append(lines, item)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return title, lines
}
