package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typer/internal/config"
	"github.com/verte-zerg/typer/internal/logging"
	"github.com/verte-zerg/typer/internal/model"
)

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	if cfg.RowWidth < minRowWidth {
		return fmt.Errorf("--row-width must be >= %d", minRowWidth)
	}
	if cfg.RangeSize <= 0 {
		return fmt.Errorf("--range-size must be > 0")
	}
	if cfg.RangeStart < 0 {
		return fmt.Errorf("--range-start must be >= 0")
	}
	return nil
}

// openLogger opens the file logger at the configured level.
func openLogger(fileCfg config.FileConfig) (zerolog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(fileCfg.LogLevelOr(logging.DefaultLevel))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log-level: %w", err)
	}
	logger, closer, err := logging.New(config.DefaultLogPath(), level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, closer, nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typer configuration
# Uncomment a value to enable it. CLI flags override config values.

# log-level = %q          # debug, info, warn or error

[practice]
# lang = %q               # Language preselected in the menu
# range-start = %d         # First word rank preselected in the menu
# range-size = %d        # Words per difficulty range
# words = %d              # Words per session
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set
# row-width = %d          # Maximum characters per row
# history = %t          # Store finished sessions
`,
		logging.DefaultLevel,
		defaultLang,
		defaultRangeStart,
		defaultRangeSize,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultRowWidth,
		defaultHistory,
	)
}
