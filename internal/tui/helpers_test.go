package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typer/internal/generator"
	"github.com/verte-zerg/typer/internal/model"
	"github.com/verte-zerg/typer/internal/wordsource"
)

type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

type fakeSource struct {
	words map[string][]string
}

func (s fakeSource) GetWordRange(_ context.Context, lang string, start, end int) ([]string, error) {
	words, ok := s.words[lang]
	if !ok {
		return nil, wordsource.ErrUnsupportedLanguage
	}
	if start >= len(words) {
		return nil, wordsource.ErrEmptyWordSource
	}
	return words[start:min(end, len(words))], nil
}

type fakeRecorder struct {
	recs  []model.SessionRecord
	words [][]model.WordResult
	err   error
}

func (r *fakeRecorder) InsertSession(_ context.Context, rec model.SessionRecord, words []model.WordResult) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.recs = append(r.recs, rec)
	r.words = append(r.words, words)
	return int64(len(r.recs)), nil
}

var errSaveFailed = errors.New("disk full")

func testEnv(rec *fakeRecorder) Env {
	env := Env{
		Config: model.Config{
			Lang:      "en",
			RangeSize: 100,
			Words:     3,
			RowWidth:  40,
		},
		Languages: []string{"de", "en"},
		Source:    fakeSource{words: map[string][]string{"en": {"the", "quick", "brown"}}},
		Generator: generator.NewSeeded(1),
		Logger:    zerolog.Nop(),
		Clock:     &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), step: time.Second},
	}
	if rec != nil {
		env.Recorder = rec
	}
	return env
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func newTestGame(t *testing.T, env Env, words []string) *Game {
	t.Helper()
	g, err := NewGame(env, words)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

// send feeds msg to screen and returns the next screen and command.
func send(t *testing.T, s Screen, msg tea.Msg) (Screen, tea.Cmd) {
	t.Helper()
	return s.Update(msg)
}
