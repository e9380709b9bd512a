// Package main provides the CLI entrypoint for typer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/typer/internal/config"
	"github.com/verte-zerg/typer/internal/generator"
	"github.com/verte-zerg/typer/internal/model"
	"github.com/verte-zerg/typer/internal/store"
	"github.com/verte-zerg/typer/internal/tui"
	"github.com/verte-zerg/typer/internal/wordsource"
)

const (
	defaultLang       = "en"
	defaultRangeStart = 0
	defaultRangeSize  = 100
	defaultWords      = 30
	defaultCaps       = 0.0
	defaultPunct      = 0.0
	defaultRowWidth   = 50
	defaultHistory    = true
	defaultWindow     = 10
	minRowWidth       = 10
)

const defaultPunctSet = ".,!?;:"

var (
	practiceLang       string
	practiceRangeStart int
	practiceRangeSize  int
	practiceWords      int
	practiceCaps       float64
	practicePunct      float64
	practicePunctSet   string
	practiceRowWidth   int
	practiceHistory    bool

	statsLang   string
	statsSince  string
	statsLast   int
	statsWindow int
	statsPlain  bool

	wordlistLang  string
	wordlistForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typer",
		Short:         "Terminal typing practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language preselected in the menu")
	rootCmd.Flags().IntVar(&practiceRangeStart, "range-start", defaultRangeStart, "first word rank preselected in the menu")
	rootCmd.Flags().IntVar(&practiceRangeSize, "range-size", defaultRangeSize, "words per difficulty range")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per session")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().IntVar(&practiceRowWidth, "row-width", defaultRowWidth, "maximum characters per row")
	rootCmd.Flags().BoolVar(&practiceHistory, "history", defaultHistory, "store finished sessions")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newWordlistCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyIntConfig(cmd, "range-start", &practiceRangeStart, fileCfg.Practice.RangeStart)
	applyIntConfig(cmd, "range-size", &practiceRangeSize, fileCfg.Practice.RangeSize)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)
	applyIntConfig(cmd, "row-width", &practiceRowWidth, fileCfg.Practice.RowWidth)
	applyBoolConfig(cmd, "history", &practiceHistory, fileCfg.Practice.History)

	cfg := model.Config{
		Lang:       practiceLang,
		RangeStart: practiceRangeStart,
		RangeSize:  practiceRangeSize,
		Words:      practiceWords,
		CapsPct:    practiceCaps,
		PunctPct:   practicePunct,
		PunctSet:   practicePunctSet,
		RowWidth:   practiceRowWidth,
		History:    practiceHistory,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, closer, err := openLogger(fileCfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	src := wordsource.NewSource(config.DefaultWordListDir())
	langs := make([]string, 0)
	for _, l := range src.Languages() {
		langs = append(langs, l.Code)
	}

	env := tui.Env{
		Config:    cfg,
		Languages: langs,
		Source:    src,
		Generator: generator.New(),
		Logger:    logger,
	}
	if cfg.History {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		env.Recorder = st
	}

	logger.Info().Str("lang", cfg.Lang).Int("words", cfg.Words).Bool("history", cfg.History).Msg("typer started")
	if err := tui.Run(env); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
