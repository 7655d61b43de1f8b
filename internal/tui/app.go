package tui

import (
	"erhu/internal/config"
	"erhu/internal/hints"
	"erhu/internal/logs"
	"erhu/internal/theory"
	"erhu/internal/tui/fingering"
	"erhu/internal/tui/picker"
	"erhu/internal/tui/shared"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpKey = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "show this help"))
	quitKey = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	killKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit"))
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg         *config.Config
	currentView ViewType
	pickerView  picker.PickerModel
	chartView   fingering.ChartModel
	showHelp    bool
	width       int
	height      int
	ready       bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, book *hints.Book) AppModel {
	keys := theory.SupportedKeys()

	m := AppModel{
		cfg:         cfg,
		currentView: ViewPicker,
		pickerView:  picker.NewPickerModel(keys),
		chartView:   fingering.NewChartModel(book, keys, cfg.ShowHints),
	}

	if cfg.DefaultKey != "" {
		if err := m.chartView.SetKey(cfg.DefaultKey); err != nil {
			logs.Logger.Printf("Warning: ignoring default key: %v", err)
			m.pickerView.SetError(err)
		} else if cfg.DefaultView == config.ViewChart {
			m.currentView = ViewChart
		}
	}

	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.pickerView.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 2 // Reserve space for status bar
		m.pickerView.SetSize(msg.Width, contentHeight)
		m.chartView.SetSize(msg.Width, contentHeight)
		return m, nil

	case SelectKeyMsg:
		if err := m.chartView.SetKey(msg.Key); err != nil {
			// Stay in the picker if the key can't be charted
			m.pickerView.SetError(err)
			m.currentView = ViewPicker
			return m, nil
		}
		m.pickerView.Reset()
		m.currentView = ViewChart
		return m, nil

	case SwitchViewMsg:
		if msg.View == ViewChart && !m.chartView.Loaded() {
			return m, nil
		}
		m.currentView = msg.View
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if key.Matches(msg, killKey) {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// The picker's text input takes every other key
		if m.currentView == ViewChart {
			switch {
			case key.Matches(msg, quitKey):
				return m, tea.Quit
			case key.Matches(msg, helpKey):
				m.showHelp = true
				return m, nil
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewPicker:
		m.pickerView, cmd = m.pickerView.Update(msg)
	case ViewChart:
		m.chartView, cmd = m.chartView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var content, statusText string
	switch m.currentView {
	case ViewChart:
		content = m.chartView.View()
		statusText = "Chart | 1=" + m.chartView.Key().Spelling
		if !m.chartView.ShowHints() {
			statusText += " | hints off"
		}
	default:
		content = m.pickerView.View()
		statusText = "Key picker"
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(statusText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	sections := []shared.HelpSection{
		{
			Title: "Chart",
			Binds: []key.Binding{
				fingering.Keys.Next, fingering.Keys.Prev, fingering.Keys.Hints,
				fingering.Keys.Pick, fingering.Keys.Up, fingering.Keys.Down,
			},
		},
		{
			Title: "Key Picker",
			Binds: []key.Binding{
				picker.Keys.Up, picker.Keys.Down, picker.Keys.Select, picker.Keys.Back,
			},
		},
		{
			Title: "Global",
			Binds: []key.Binding{helpKey, quitKey, killKey},
		},
	}
	return shared.RenderHelpPopup("Erhu - Keyboard Shortcuts", sections, m.width, m.height)
}
