package tui

import (
	"strings"
	"testing"

	"erhu/internal/config"
	"erhu/internal/hints"

	tea "github.com/charmbracelet/bubbletea"
)

func newApp(t *testing.T, cfg *config.Config) AppModel {
	t.Helper()
	book, err := hints.Load(nil)
	if err != nil {
		t.Fatalf("loading hints: %v", err)
	}
	m := NewAppModel(cfg, book)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 80})
	return updated.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestNewAppModel_StartsInPicker(t *testing.T) {
	m := newApp(t, &config.Config{ShowHints: true, DefaultView: config.ViewPicker})
	if m.currentView != ViewPicker {
		t.Errorf("expected picker view, got %v", m.currentView)
	}
	if !strings.Contains(m.View(), "Choose a key") {
		t.Error("expected picker in view")
	}
}

func TestNewAppModel_DefaultKeyOpensChart(t *testing.T) {
	m := newApp(t, &config.Config{DefaultKey: "G", ShowHints: true, DefaultView: config.ViewChart})
	if m.currentView != ViewChart {
		t.Fatalf("expected chart view, got %v", m.currentView)
	}
	if !strings.Contains(m.View(), "Key: G (1=G)") {
		t.Error("expected G chart in view")
	}
}

func TestNewAppModel_BadDefaultKey(t *testing.T) {
	m := newApp(t, &config.Config{DefaultKey: "H", DefaultView: config.ViewChart})
	if m.currentView != ViewPicker {
		t.Errorf("expected picker for a bad default key, got %v", m.currentView)
	}
	if !strings.Contains(m.View(), "invalid key") {
		t.Error("expected the error in the picker")
	}
}

func TestSelectKeyMsg(t *testing.T) {
	m := newApp(t, &config.Config{ShowHints: true})

	m, _ = update(t, m, SelectKeyMsg{Key: "F"})
	if m.currentView != ViewChart {
		t.Fatalf("expected chart view, got %v", m.currentView)
	}
	if m.chartView.Key().Spelling != "F" {
		t.Errorf("expected F, got %q", m.chartView.Key().Spelling)
	}

	m, _ = update(t, m, SelectKeyMsg{Key: "H"})
	if m.currentView != ViewPicker {
		t.Errorf("expected picker after invalid key, got %v", m.currentView)
	}
}

func TestSwitchToChartNeedsKey(t *testing.T) {
	m := newApp(t, &config.Config{})
	m, _ = update(t, m, SwitchViewMsg{View: ViewChart})
	if m.currentView != ViewPicker {
		t.Errorf("expected to stay in picker, got %v", m.currentView)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newApp(t, &config.Config{DefaultKey: "D", DefaultView: config.ViewChart})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.showHelp {
		t.Fatal("expected help overlay")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("expected help popup in view")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.showHelp {
		t.Error("expected any key to dismiss help")
	}
}

func TestQuit(t *testing.T) {
	m := newApp(t, &config.Config{DefaultKey: "D", DefaultView: config.ViewChart})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestPickerTypesQ(t *testing.T) {
	m := newApp(t, &config.Config{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.currentView != ViewPicker {
		t.Errorf("expected to stay in picker, got %v", m.currentView)
	}
}
