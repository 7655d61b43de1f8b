package shared

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestCenterWithBottomHints(t *testing.T) {
	out := CenterWithBottomHints("a\nb", "hint", 9)
	lines := strings.Split(out, "\n")

	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if lines[3] != "a" || lines[4] != "b" {
		t.Errorf("expected content centered at lines 3-4, got %q", lines)
	}
	if lines[8] != "hint" {
		t.Errorf("expected hint on last line, got %q", lines[8])
	}
}

func TestCenterWithBottomHints_NoHints(t *testing.T) {
	out := CenterWithBottomHints("a", "", 5)
	lines := strings.Split(out, "\n")

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (2 pad + content), got %d: %q", len(lines), lines)
	}
	if lines[2] != "a" {
		t.Errorf("expected content on line 2, got %q", lines[2])
	}
}

func TestCenterWithBottomHints_Overflow(t *testing.T) {
	out := CenterWithBottomHints("a\nb\nc", "hint", 2)
	if out != "a\nb\nc\nhint" {
		t.Errorf("expected content and hints joined, got %q", out)
	}
}

func TestShortHelp(t *testing.T) {
	next := key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next"))
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))

	if got := ShortHelp(next, off, quit); got != "n:next  q:quit" {
		t.Errorf("unexpected short help %q", got)
	}
}

func TestRenderHelpPopup(t *testing.T) {
	sections := []HelpSection{{
		Title: "Chart",
		Binds: []key.Binding{key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next key"))},
	}}

	out := RenderHelpPopup("Keys", sections, 60, 20)
	for _, want := range []string{"Keys", "Chart", "next key", "Press any key to close"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in popup", want)
		}
	}
}
