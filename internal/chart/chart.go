// Package chart renders fingering matrices as vertical box-drawn tables.
package chart

import (
	"fmt"
	"strings"

	"erhu/internal/hints"
	"erhu/internal/theory"
	"erhu/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var positionNames = [theory.Positions]string{
	"1st position", "2nd position", "3rd position", "4th position",
}

var fingerNames = [theory.FingerSlots]string{
	"open", "finger 1", "finger 2", "finger 3", "finger 4",
}

const colLabel = 0

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	symbolStyle = cellStyle.Align(lipgloss.Center)
	hintBullet  = theme.Muted.Render("•")
)

// PositionName returns the label of a hand position.
func PositionName(p int) string {
	return positionNames[p]
}

// FingerName returns the label of a finger slot.
func FingerName(f int) string {
	return fingerNames[f]
}

// StyleSymbol colors a degree symbol: the tonic, altered degrees and
// unresolved cells each stand out.
func StyleSymbol(sym string) string {
	switch {
	case sym == theory.Unresolved:
		return theme.Unresolved.Render(sym)
	case sym == "1":
		return theme.Tonic.Render(sym)
	case strings.ContainsAny(sym, "#b"):
		return theme.Altered.Render(sym)
	default:
		return theme.Degree.Render(sym)
	}
}

// Header returns the key and tuning lines shown above the table.
func Header(m theory.Matrix) string {
	keyLine := fmt.Sprintf("Key: %s (1=%s)", m.Key.Spelling, m.Key.Spelling)
	if canonical := m.Key.Canonical(); canonical != m.Key.Spelling {
		keyLine += theme.Muted.Render(fmt.Sprintf("  root %s", canonical))
	}

	inner, outer := m.OpenDegrees()
	tuning := fmt.Sprintf("Tuning: inner %s(%s)  outer %s(%s)",
		theory.Inner.Open(), StyleSymbol(inner),
		theory.Outer.Open(), StyleSymbol(outer))

	return theme.Title.Render("Erhu fingering chart") + "\n" + keyLine + "\n" + tuning
}

// Table renders the matrix with one row per position. Each row lists the open
// string and fingers 1 to 4 from top to bottom.
func Table(m theory.Matrix) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		BorderRow(true).
		Headers("Position / finger", "Inner "+theory.Inner.Open().Name(), "Outer "+theory.Outer.Open().Name()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == colLabel:
				return cellStyle
			default:
				return symbolStyle
			}
		})

	for p := 0; p < theory.Positions; p++ {
		t.Row(positionCells(m, p)...)
	}

	return t.String()
}

func positionCells(m theory.Matrix, p int) []string {
	labels := []string{theme.Position.Render(positionNames[p])}
	inner := []string{""}
	outer := []string{""}
	for f := 0; f < theory.FingerSlots; f++ {
		labels = append(labels, "  "+theme.Finger.Render(fingerNames[f]))
		inner = append(inner, StyleSymbol(m.Cell(theory.Inner, p, f)))
		outer = append(outer, StyleSymbol(m.Cell(theory.Outer, p, f)))
	}
	return []string{
		strings.Join(labels, "\n"),
		strings.Join(inner, "\n"),
		strings.Join(outer, "\n"),
	}
}

// Hint renders a hint as a titled bullet list.
func Hint(h hints.Hint) string {
	var b strings.Builder
	if h.Title != "" {
		b.WriteString(theme.Subtitle.Render(h.Title))
		b.WriteString("\n")
	}
	for _, l := range h.Lines {
		b.WriteString(hintBullet + " " + l + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Render returns the header, the table and then each hint block.
func Render(m theory.Matrix, notes ...hints.Hint) string {
	parts := []string{Header(m), Table(m)}
	for _, h := range notes {
		if h.Title == "" && len(h.Lines) == 0 {
			continue
		}
		parts = append(parts, Hint(h))
	}
	return strings.Join(parts, "\n\n")
}

// Scale renders the members of a scale as "name=degree" pairs in degree
// order.
func Scale(scale theory.ScaleTable) string {
	var pairs []string
	for _, n := range scale.Notes() {
		sym, _ := scale.Degree(n)
		pairs = append(pairs, fmt.Sprintf("%s=%s", n.Name(), StyleSymbol(sym)))
	}
	return strings.Join(pairs, "  ")
}
