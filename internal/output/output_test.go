package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatBlocks(t *testing.T) {
	got := Format([]Block{
		{Font: "standard", Art: " _\n|_|\n\n"},
		{Font: "slant", Art: "  /\n"},
	})
	want := "### FONT: standard ###\n _\n|_|\n\n### FONT: slant ###\n  /\n\n"
	if got != want {
		t.Fatalf("format mismatch\n got %q\nwant %q", got, want)
	}
}

func TestWriteOverwritesAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "art.txt")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("stale content that is longer\n"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	written, err := Write(path, []Block{{Font: "big", Art: "BIG"}})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if written != path {
		t.Fatalf("expected %s, got %s", path, written)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "### FONT: big ###\nBIG\n\n" {
		t.Fatalf("unexpected file content %q", data)
	}

	nested := filepath.Join(t.TempDir(), "a", "b", "c.txt")
	if _, err := Write(nested, []Block{{Font: "big", Art: "BIG"}}); err != nil {
		t.Fatalf("write nested: %v", err)
	}
}

func TestWriteRejectsEmptyInput(t *testing.T) {
	if _, err := Write("", []Block{{Font: "big"}}); err == nil {
		t.Fatalf("expected error for empty path")
	}
	path := filepath.Join(t.TempDir(), "none.txt")
	if _, err := Write(path, nil); err == nil {
		t.Fatalf("expected error for no blocks")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should be written, stat err=%v", err)
	}
}
