package fingering

import (
	"strings"
	"testing"

	"erhu/internal/hints"
	"erhu/internal/theory"
	"erhu/internal/tui/messages"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(t *testing.T) ChartModel {
	t.Helper()
	book, err := hints.Load(nil)
	if err != nil {
		t.Fatalf("loading hints: %v", err)
	}
	m := NewChartModel(book, []string{"C", "D", "G"}, true)
	m.SetSize(80, 200)
	return m
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestChartModel_EmptyView(t *testing.T) {
	m := newModel(t)
	if m.Loaded() {
		t.Fatal("expected no chart before SetKey")
	}
	if !strings.Contains(m.View(), "No key selected") {
		t.Error("expected placeholder text")
	}
}

func TestChartModel_SetKey(t *testing.T) {
	m := newModel(t)
	if err := m.SetKey("d"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := m.View()
	for _, want := range []string{"Key: D (1=D)", "1st position", "D major (1=D)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestChartModel_SetKeyInvalidKeepsChart(t *testing.T) {
	m := newModel(t)
	if err := m.SetKey("G"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.SetKey("H"); err == nil {
		t.Fatal("expected error for H")
	}
	if m.Key().Spelling != "G" {
		t.Errorf("expected G kept, got %q", m.Key().Spelling)
	}
}

func TestChartModel_NextPrevWrap(t *testing.T) {
	m := newModel(t)
	if err := m.SetKey("G"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, _ = m.Update(keyPress("n"))
	if m.Key().Spelling != "C" {
		t.Errorf("expected wrap to C, got %q", m.Key().Spelling)
	}
	m, _ = m.Update(keyPress("p"))
	if m.Key().Spelling != "G" {
		t.Errorf("expected wrap back to G, got %q", m.Key().Spelling)
	}
	m, _ = m.Update(keyPress("p"))
	if m.Key().Spelling != "D" {
		t.Errorf("expected D, got %q", m.Key().Spelling)
	}
}

func TestChartModel_StepFromUnlistedKey(t *testing.T) {
	m := newModel(t)
	if err := m.SetKey("Cb"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, _ = m.Update(keyPress("n"))
	if m.Key().Spelling != "C" {
		t.Errorf("expected first key, got %q", m.Key().Spelling)
	}
}

func TestChartModel_ToggleHints(t *testing.T) {
	m := newModel(t)
	if err := m.SetKey("D"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, _ = m.Update(keyPress("i"))
	if m.ShowHints() {
		t.Error("expected hints off")
	}
	if strings.Contains(m.View(), "Reading the chart") {
		t.Error("expected legend hidden")
	}
}

func TestChartModel_PickSwitchesView(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(keyPress("/"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	sw, ok := cmd().(messages.SwitchViewMsg)
	if !ok || sw.View != messages.ViewPicker {
		t.Errorf("expected switch to picker, got %#v", cmd())
	}
}

func TestChartModel_KeyIsMatrixKey(t *testing.T) {
	m := newModel(t)
	if err := m.SetKey("Bb"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Key().Root != theory.ASharp {
		t.Errorf("expected root A#, got %s", m.Key().Root)
	}
}
