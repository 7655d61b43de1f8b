// Package fingering is the TUI view that shows one key's fingering chart.
package fingering

import (
	"slices"
	"strings"

	"erhu/internal/chart"
	"erhu/internal/hints"
	"erhu/internal/logs"
	"erhu/internal/theory"
	"erhu/internal/tui/messages"
	"erhu/internal/tui/shared"
	"erhu/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Hints key.Binding
	Pick  key.Binding
	Up    key.Binding
	Down  key.Binding
}

var Keys = KeyMap{
	Next:  key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n/→", "next key")),
	Prev:  key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "previous key")),
	Hints: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "toggle hints")),
	Pick:  key.NewBinding(key.WithKeys("/", "enter"), key.WithHelp("/", "choose key")),
	Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
	Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
}

// ChartModel shows the chart for one key in a scrollable viewport.
type ChartModel struct {
	book      *hints.Book
	keys      []string
	showHints bool
	matrix    theory.Matrix
	loaded    bool
	viewport  viewport.Model
	width     int
	height    int
}

// NewChartModel creates an empty chart view. keys is the cycle order for
// next/previous.
func NewChartModel(book *hints.Book, keys []string, showHints bool) ChartModel {
	return ChartModel{
		book:      book,
		keys:      keys,
		showHints: showHints,
		viewport:  viewport.New(0, 0),
	}
}

// SetSize updates the view dimensions
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(0, height-1) // last line holds the hints
	m.refresh()
}

// SetKey generates the chart for a key spelling. On error the current chart
// is kept.
func (m *ChartModel) SetKey(raw string) error {
	matrix, err := theory.Generate(raw)
	if err != nil {
		return err
	}
	logs.Logger.Printf("Showing chart for %s (root %s)", matrix.Key, matrix.Key.Canonical())

	m.matrix = matrix
	m.loaded = true
	m.refresh()
	m.viewport.GotoTop()
	return nil
}

// Loaded reports whether a chart has been generated.
func (m ChartModel) Loaded() bool {
	return m.loaded
}

// Key returns the key currently charted.
func (m ChartModel) Key() theory.Key {
	return m.matrix.Key
}

// ShowHints reports whether hint text is rendered under the chart.
func (m ChartModel) ShowHints() bool {
	return m.showHints
}

// HintText returns the raw hint string for the chart view.
func (m ChartModel) HintText() string {
	return shared.ShortHelp(Keys.Next, Keys.Prev, Keys.Hints, Keys.Pick) + "  ?:help  q:quit"
}

func (m *ChartModel) refresh() {
	if !m.loaded {
		return
	}
	var notes []hints.Hint
	if m.showHints && m.book != nil {
		notes = append(notes, m.book.Lookup(m.matrix.Key.Spelling), m.book.Legend())
	}
	m.viewport.SetContent(chart.Render(m.matrix, notes...))
}

// step moves to the neighbouring key in the cycle order. A key that is not
// in the list starts from the first one.
func (m *ChartModel) step(delta int) {
	if len(m.keys) == 0 {
		return
	}
	i := slices.Index(m.keys, m.matrix.Key.Spelling)
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + len(m.keys)) % len(m.keys)
	}
	if err := m.SetKey(m.keys[i]); err != nil {
		logs.Logger.Printf("Error switching key to %s: %v", m.keys[i], err)
	}
}

func (m ChartModel) Init() tea.Cmd {
	return nil
}

// Update handles chart events, returns (ChartModel, tea.Cmd) as a child view
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, Keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(keyMsg, Keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(keyMsg, Keys.Hints):
			m.showHints = !m.showHints
			m.refresh()
			return m, nil
		case key.Matches(keyMsg, Keys.Pick):
			return m, messages.SwitchView(messages.ViewPicker)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ChartModel) View() string {
	if !m.loaded {
		return shared.CenterWithBottomHints(theme.Muted.Render("No key selected"), "", m.height)
	}
	hint := theme.HelpHint.Render(m.HintText())
	return strings.TrimRight(m.viewport.View(), "\n") + "\n" + hint
}
