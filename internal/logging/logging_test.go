package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	if err != nil || lvl != zerolog.InfoLevel {
		t.Fatalf("expected info default, got %v (%v)", lvl, err)
	}
	lvl, err = ParseLevel(" DEBUG ")
	if err != nil || lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %v (%v)", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWriterFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, zerolog.InfoLevel)
	log.Debug().Msg("hidden")
	log.Info().Str("lang", "en").Msg("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered: %s", out)
	}
	if !strings.Contains(out, `"lang":"en"`) || !strings.Contains(out, "visible") {
		t.Fatalf("expected info message with field: %s", out)
	}
}

func TestNewAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "typer.log")
	log, closer, err := New(path, zerolog.DebugLevel)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info().Msg("first")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "first") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}
