package shared

import (
	"strings"

	"erhu/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpSection is a titled group of key bindings
type HelpSection struct {
	Title string
	Binds []key.Binding
}

var (
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Width(14)
	helpDescStyle = lipgloss.NewStyle().Foreground(theme.Text)
)

// RenderHelpPopup renders a centered help popup with the given sections.
// Disabled bindings are left out.
func RenderHelpPopup(title string, sections []HelpSection, width, height int) string {
	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render(title) + "\n\n")

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Title.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			if !bind.Enabled() {
				continue
			}
			h := bind.Help()
			b.WriteString("  " + helpKeyStyle.Render(h.Key) + helpDescStyle.Render(h.Desc) + "\n")
		}
	}

	b.WriteString("\n" + theme.ModalHelp.Render("Press any key to close"))

	box := theme.ModalBox.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// ShortHelp joins bindings into a one-line hint such as "n:next  q:quit".
func ShortHelp(binds ...key.Binding) string {
	var parts []string
	for _, bind := range binds {
		if !bind.Enabled() {
			continue
		}
		h := bind.Help()
		parts = append(parts, h.Key+":"+h.Desc)
	}
	return strings.Join(parts, "  ")
}
