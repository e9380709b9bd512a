package wordsource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteWordsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "en.txt")
	if err := WriteWords(path, []string{"the", "of", "and"}); err != nil {
		t.Fatalf("write words: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != "the\nof\nand\n" {
		t.Fatalf("unexpected file contents: %q", data)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be gone, found %d entries", len(entries))
	}
}

func TestLoadWordsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	if err := os.WriteFile(path, []byte("\n  \n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadWords(path); !errors.Is(err, ErrEmptyWordSource) {
		t.Fatalf("expected ErrEmptyWordSource, got %v", err)
	}
}
