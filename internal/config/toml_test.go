package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Practice.Lang != nil || cfg.LogLevel != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `log-level = "debug"

[practice]
lang = "en"
range-start = 200
words = 30
history = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel == nil || *cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if cfg.Practice.RangeStart == nil || *cfg.Practice.RangeStart != 200 {
		t.Fatalf("unexpected range-start: %v", cfg.Practice.RangeStart)
	}
	if cfg.Practice.Words == nil || *cfg.Practice.Words != 30 {
		t.Fatalf("unexpected words: %v", cfg.Practice.Words)
	}
	if cfg.Practice.History == nil || *cfg.Practice.History {
		t.Fatalf("expected history=false")
	}
	if cfg.Practice.RowWidth != nil {
		t.Fatalf("expected row-width unset")
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice]\nlanguage = \"en\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "practice.language") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestXDGPathsHonorEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "typer", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "typer", "typer.db") {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/state", "typer", "typer.log") {
		t.Fatalf("unexpected log path %q", got)
	}
	if got := DefaultWordListDir(); got != filepath.Join("/cfg", "typer", "wordlists") {
		t.Fatalf("unexpected wordlist dir %q", got)
	}
}

func TestLogLevelOr(t *testing.T) {
	if got := (FileConfig{}).LogLevelOr("info"); got != "info" {
		t.Fatalf("expected fallback, got %q", got)
	}
	level := "warn"
	if got := (FileConfig{LogLevel: &level}).LogLevelOr("info"); got != "warn" {
		t.Fatalf("expected configured level, got %q", got)
	}
}
