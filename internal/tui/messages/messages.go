package messages

import tea "github.com/charmbracelet/bubbletea"

// ViewType represents the different views in the application
type ViewType int

const (
	ViewPicker ViewType = iota
	ViewChart
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// SelectKeyMsg requests the chart for a key spelling
type SelectKeyMsg struct {
	Key string
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

func SelectKey(key string) tea.Cmd {
	return func() tea.Msg {
		return SelectKeyMsg{Key: key}
	}
}
