// Package config provides configuration helpers and TOML parsing.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Nil fields were not
// set in the file.
type FileConfig struct {
	LogLevel *string        `toml:"log-level"`
	Practice PracticeConfig `toml:"practice"`
}

// PracticeConfig maps the [practice] table.
type PracticeConfig struct {
	Lang       *string  `toml:"lang"`
	RangeStart *int     `toml:"range-start"`
	RangeSize  *int     `toml:"range-size"`
	Words      *int     `toml:"words"`
	CapsPct    *float64 `toml:"caps"`
	PunctPct   *float64 `toml:"punct"`
	PunctSet   *string  `toml:"punct-set"`
	RowWidth   *int     `toml:"row-width"`
	History    *bool    `toml:"history"`
}

// LogLevelOr returns the configured log level, or fallback when unset.
func (c FileConfig) LogLevelOr(fallback string) string {
	if c.LogLevel == nil {
		return fallback
	}
	return *c.LogLevel
}

// LoadConfig reads a TOML config from path. A missing file yields an empty
// config; keys the file sets that typer does not know are rejected.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return FileConfig{}, nil
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}
