package shared

import "strings"

// CenterWithBottomHints renders content vertically centered in the available
// height, with hint text pinned to the very bottom line. Empty hints center
// the content alone.
func CenterWithBottomHints(content, hints string, height int) string {
	content = strings.TrimRight(content, "\n")
	hints = strings.TrimRight(hints, "\n")

	contentLines := splitLines(content)
	hintLines := splitLines(hints)

	totalUsed := len(contentLines) + len(hintLines)
	if totalUsed >= height {
		return strings.Join(append(contentLines, hintLines...), "\n")
	}

	gap := height - totalUsed
	topPad := gap / 2
	bottomPad := gap - topPad
	if len(hintLines) == 0 {
		bottomPad = 0
	}

	lines := make([]string, 0, height)
	lines = append(lines, make([]string, topPad)...)
	lines = append(lines, contentLines...)
	lines = append(lines, make([]string, bottomPad)...)
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
