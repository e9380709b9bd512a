// Package wordsource provides ranked practice corpora per language.
package wordsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Language describes one supported corpus.
type Language struct {
	Code    string
	Name    string
	Fetcher Fetcher
}

// DefaultLanguages is the built-in registry.
func DefaultLanguages() []Language {
	return []Language{
		{
			Code: "en",
			Name: "English",
			Fetcher: Scraper{
				URL:    "https://1000mostcommonwords.com/1000-most-common-english-words",
				Class:  "entry-content",
				Filter: FilterForLang("en"),
			},
		},
	}
}

// Source serves word lists from a cache directory, falling back to the
// embedded static lists when nothing has been downloaded.
type Source struct {
	dir       string
	languages map[string]Language
}

// Option configures a Source.
type Option func(*Source)

// WithLanguages replaces the language registry.
func WithLanguages(langs ...Language) Option {
	return func(s *Source) {
		s.languages = make(map[string]Language, len(langs))
		for _, l := range langs {
			s.languages[normalize(l.Code)] = l
		}
	}
}

// NewSource returns a Source caching lists under dir.
func NewSource(dir string, opts ...Option) *Source {
	s := &Source{dir: dir}
	WithLanguages(DefaultLanguages()...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Languages returns the registry sorted by code.
func (s *Source) Languages() []Language {
	out := make([]Language, 0, len(s.languages))
	for _, l := range s.languages {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Path returns the cache file path for lang.
func (s *Source) Path(lang string) string {
	return filepath.Join(s.dir, normalize(lang)+".txt")
}

// Cached reports whether a downloaded list exists for lang.
func (s *Source) Cached(lang string) bool {
	info, err := os.Stat(s.Path(lang))
	return err == nil && !info.IsDir()
}

// FetchWords returns the full ranked corpus for lang.
func (s *Source) FetchWords(ctx context.Context, lang string) ([]string, error) {
	l, err := s.lookup(lang)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	words, err := LoadWords(s.Path(l.Code))
	if err == nil {
		return words, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s word list: %w", l.Code, err)
	}
	if fallback := staticWords(normalize(l.Code)); len(fallback) > 0 {
		return fallback, nil
	}
	return nil, fmt.Errorf("%s word list not downloaded: %w", l.Code, ErrEmptyWordSource)
}

// GetWordRange returns ranks [start, end) of the corpus, clipped to its
// length. A range selecting nothing is ErrEmptyWordSource.
func (s *Source) GetWordRange(ctx context.Context, lang string, start, end int) ([]string, error) {
	words, err := s.FetchWords(ctx, lang)
	if err != nil {
		return nil, err
	}
	if start < 0 || end <= start || start >= len(words) {
		return nil, fmt.Errorf("range %d-%d of %d %s words: %w", start, end, len(words), normalize(lang), ErrEmptyWordSource)
	}
	end = min(end, len(words))
	return append([]string(nil), words[start:end]...), nil
}

// Download fetches lang from its remote source and replaces the cache file.
// It returns the number of words written.
func (s *Source) Download(ctx context.Context, lang string) (int, error) {
	l, err := s.lookup(lang)
	if err != nil {
		return 0, err
	}
	if l.Fetcher == nil {
		return 0, fmt.Errorf("%s has no remote source: %w", l.Code, ErrUnsupportedLanguage)
	}
	words, err := l.Fetcher.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	if err := WriteWords(s.Path(l.Code), words); err != nil {
		return 0, err
	}
	return len(words), nil
}

func (s *Source) lookup(lang string) (Language, error) {
	l, ok := s.languages[normalize(lang)]
	if !ok {
		return Language{}, fmt.Errorf("language %q: %w", lang, ErrUnsupportedLanguage)
	}
	return l, nil
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
