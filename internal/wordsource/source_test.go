package wordsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	words []string
	err   error
	calls int
}

func (f *stubFetcher) Fetch(context.Context) ([]string, error) {
	f.calls++
	return f.words, f.err
}

func TestFetchWordsFallsBackToStatic(t *testing.T) {
	src := NewSource(t.TempDir())
	words, err := src.FetchWords(context.Background(), "EN")
	require.NoError(t, err)
	require.NotEmpty(t, words)
	assert.False(t, src.Cached("en"))
	for _, w := range words {
		assert.True(t, FilterForLang("en")(w), "static word %q", w)
	}
}

func TestFetchWordsPrefersCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.txt"), []byte("alpha\n\nbeta\n"), 0o644))
	src := NewSource(dir)
	words, err := src.FetchWords(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, words)
	assert.True(t, src.Cached("en"))
}

func TestFetchWordsUnsupportedLanguage(t *testing.T) {
	src := NewSource(t.TempDir())
	_, err := src.FetchWords(context.Background(), "xx")
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage), "got %v", err)
	_, err = src.GetWordRange(context.Background(), "xx", 0, 10)
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage), "got %v", err)
}

func TestFetchWordsWithoutListIsEmpty(t *testing.T) {
	src := NewSource(t.TempDir(), WithLanguages(Language{Code: "zz", Name: "Test"}))
	_, err := src.FetchWords(context.Background(), "zz")
	assert.True(t, errors.Is(err, ErrEmptyWordSource), "got %v", err)
}

func TestGetWordRange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteWords(filepath.Join(dir, "en.txt"), []string{"a", "b", "c", "d", "e"}))
	src := NewSource(dir)
	ctx := context.Background()

	words, err := src.GetWordRange(ctx, "en", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, words)

	words, err = src.GetWordRange(ctx, "en", 3, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e"}, words)

	for _, r := range [][2]int{{5, 10}, {2, 2}, {3, 1}, {-1, 2}} {
		_, err := src.GetWordRange(ctx, "en", r[0], r[1])
		assert.True(t, errors.Is(err, ErrEmptyWordSource), "range %v: %v", r, err)
	}
}

func TestDownloadWritesCache(t *testing.T) {
	dir := t.TempDir()
	fetcher := &stubFetcher{words: []string{"one", "two"}}
	src := NewSource(dir, WithLanguages(Language{Code: "en", Name: "English", Fetcher: fetcher}))

	n, err := src.Download(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, fetcher.calls)

	words, err := src.FetchWords(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, words)
}

func TestDownloadKeepsCacheOnFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteWords(filepath.Join(dir, "en.txt"), []string{"kept"}))
	boom := errors.New("boom")
	src := NewSource(dir, WithLanguages(Language{Code: "en", Fetcher: &stubFetcher{err: boom}}))

	_, err := src.Download(context.Background(), "en")
	require.ErrorIs(t, err, boom)
	words, err := src.FetchWords(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, words)
}

func TestLanguagesSorted(t *testing.T) {
	src := NewSource(t.TempDir(), WithLanguages(Language{Code: "pl"}, Language{Code: "de"}, Language{Code: "en"}))
	langs := src.Languages()
	require.Len(t, langs, 3)
	assert.Equal(t, "de", langs[0].Code)
	assert.Equal(t, "pl", langs[2].Code)
}
