package picker

import (
	"fmt"
	"strings"

	"erhu/internal/theory"
	"erhu/internal/tui/messages"
	"erhu/internal/tui/shared"
	"erhu/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// KeyMap holds the picker's bindings. Letters go to the search box, so
// navigation uses arrows and control keys.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

var Keys = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/ctrl+p", "previous key")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n", "tab"), key.WithHelp("↓/ctrl+n", "next key")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show chart")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear / back to chart")),
}

// PickerModel lets the user type or fuzzy-search a key.
type PickerModel struct {
	keys      []string
	filtered  []int // indices into keys
	selected  int
	textInput textinput.Model
	width     int
	height    int
	err       error
}

func NewPickerModel(keys []string) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type a key (D, F#, Bb)..."
	ti.Focus()
	ti.CharLimit = 2
	ti.Width = 30

	m := PickerModel{
		keys:      keys,
		textInput: ti,
	}
	m.applyFilter()
	return m
}

// SetSize updates the view dimensions
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError shows err under the search box until the next keystroke.
func (m *PickerModel) SetError(err error) {
	m.err = err
}

// Reset clears the search query and any error.
func (m *PickerModel) Reset() {
	m.textInput.SetValue("")
	m.err = nil
	m.applyFilter()
}

// Selected returns the highlighted key, or "" when nothing matches.
func (m PickerModel) Selected() string {
	if len(m.filtered) == 0 {
		return ""
	}
	return m.keys[m.filtered[m.selected]]
}

// HintText returns the raw hint string for the picker.
func (m PickerModel) HintText() string {
	return shared.ShortHelp(Keys.Up, Keys.Down, Keys.Select, Keys.Back) + "  ctrl+c:quit"
}

func (m *PickerModel) applyFilter() {
	query := strings.TrimSpace(m.textInput.Value())
	if query == "" {
		m.filtered = make([]int, len(m.keys))
		for i := range m.keys {
			m.filtered[i] = i
		}
	} else {
		matches := fuzzy.Find(query, m.keys)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles picker events, returns (PickerModel, tea.Cmd) as a child view
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, Keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(keyMsg, Keys.Down):
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(keyMsg, Keys.Select):
		return m.choose()
	case key.Matches(keyMsg, Keys.Back):
		if m.textInput.Value() != "" {
			m.Reset()
			return m, nil
		}
		return m, messages.SwitchView(messages.ViewChart)
	}

	m.err = nil
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// choose prefers what was typed when it is a valid spelling, so keys outside
// the list such as "Cb" still work. Otherwise the highlighted match is used.
func (m PickerModel) choose() (PickerModel, tea.Cmd) {
	query := strings.TrimSpace(m.textInput.Value())
	if query != "" {
		if k, err := theory.NewKey(query); err == nil {
			return m, messages.SelectKey(k.Spelling)
		}
	}

	if selected := m.Selected(); selected != "" {
		return m, messages.SelectKey(selected)
	}

	m.err = fmt.Errorf("%w: %q", theory.ErrInvalidKey, query)
	return m, nil
}

func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Choose a key") + "\n\n")
	b.WriteString(m.textInput.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(theme.Muted.Render("  No matching keys") + "\n")
	}
	for i, idx := range m.filtered {
		k := m.keys[idx]
		if i == m.selected {
			b.WriteString(theme.Cursor.Render("> ") + theme.Selected.Render(k) + "\n")
		} else {
			b.WriteString("  " + k + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + theme.Error.Render(m.err.Error()) + "\n")
	}

	return shared.CenterWithBottomHints(b.String(), theme.HelpHint.Render(m.HintText()), m.height)
}
