package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesFile(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer Close()

	Logger.Printf("hello from test")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("expected log line in file, got %q", string(data))
	}
	if !strings.Contains(string(data), "[erhu] ") {
		t.Errorf("expected prefix in file, got %q", string(data))
	}
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	before := Logger
	if err := Initialize(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Logger != before {
		t.Error("expected logger to be unchanged")
	}
}

func TestClose_Twice(t *testing.T) {
	if err := Initialize(t.TempDir()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("unexpected error on first close: %v", err)
	}
	if err := Close(); err != nil {
		t.Errorf("expected second close to be a no-op, got %v", err)
	}
}
