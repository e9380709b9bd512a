package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func newTestEngine(t *testing.T, words []string, width int) (*Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0), step: time.Second}
	e, err := New(words, width, WithClock(clock))
	require.NoError(t, err)
	return e, clock
}

func typeWord(t *testing.T, e *Engine, text string) {
	t.Helper()
	for _, r := range text {
		require.NoError(t, e.HandleEvent(Append(r)))
	}
	require.NoError(t, e.HandleEvent(Submit()))
}

func TestNewRejectsEmptyWords(t *testing.T) {
	_, err := New(nil, 50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wordsource.ErrEmptyWordSource))
}

func TestEndToEndScenario(t *testing.T) {
	e, _ := newTestEngine(t, []string{"the", "quick", "brown"}, 50)
	assert.Equal(t, NotStarted, e.State())

	typeWord(t, e, "the")
	assert.Equal(t, InProgress, e.State())
	typeWord(t, e, "quikc")
	typeWord(t, e, "brown")

	assert.Equal(t, Complete, e.State())
	assert.True(t, e.IsComplete())
	assert.Equal(t, 3, e.Current())

	records := e.Records()
	require.Len(t, records, 3)
	assert.Equal(t, []bool{true, false, true}, []bool{records[0].Correct, records[1].Correct, records[2].Correct})
	assert.Equal(t, "quikc", records[1].Typed)
	assert.Equal(t, "quick", records[1].Expected)

	summary, err := e.Summary()
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "brown"}, summary.CorrectWords)
	assert.Equal(t, []string{"quikc"}, summary.IncorrectWords)
	assert.Len(t, summary.Timestamps, 4)
	assert.Len(t, summary.Mistakes(), 1)
}

func TestFirstEventStartsTimer(t *testing.T) {
	e, _ := newTestEngine(t, []string{"go"}, 50)
	require.NoError(t, e.HandleEvent(Backspace()))
	assert.Equal(t, InProgress, e.State())
	assert.Len(t, e.Timestamps(), 1)
	assert.Equal(t, "", e.Typed())
	assert.Equal(t, 0, e.Cursor())
}

func TestBackspace(t *testing.T) {
	e, _ := newTestEngine(t, []string{"hello"}, 50)
	for _, r := range "hel" {
		require.NoError(t, e.HandleEvent(Append(r)))
	}
	require.NoError(t, e.HandleEvent(Backspace()))
	assert.Equal(t, "he", e.Typed())
	assert.Equal(t, 2, e.Cursor())

	require.NoError(t, e.HandleEvent(Backspace()))
	require.NoError(t, e.HandleEvent(Backspace()))
	require.NoError(t, e.HandleEvent(Backspace()))
	assert.Equal(t, "", e.Typed())
	assert.Equal(t, 0, e.Cursor())
}

func TestAppendKeepsCaseAndHasNoCap(t *testing.T) {
	e, _ := newTestEngine(t, []string{"Go"}, 2)
	for _, r := range "GoGoGoGo" {
		require.NoError(t, e.HandleEvent(Append(r)))
	}
	assert.Equal(t, "GoGoGoGo", e.Typed())
	assert.Equal(t, 8, e.Cursor())
}

func TestInvalidEventsIgnored(t *testing.T) {
	e, _ := newTestEngine(t, []string{"go"}, 50)
	require.NoError(t, e.HandleEvent(Event{}))
	require.NoError(t, e.HandleEvent(Append('\x1b')))
	require.NoError(t, e.HandleEvent(Append(' ')))
	assert.Equal(t, NotStarted, e.State())
	assert.Empty(t, e.Timestamps())
	assert.Equal(t, "", e.Typed())
}

func TestEventAfterCompletion(t *testing.T) {
	e, _ := newTestEngine(t, []string{"a", "b"}, 50)
	typeWord(t, e, "a")
	typeWord(t, e, "x")
	before, err := e.Summary()
	require.NoError(t, err)

	for _, ev := range []Event{Append('z'), Backspace(), Submit()} {
		err := e.HandleEvent(ev)
		assert.ErrorIs(t, err, ErrEventAfterCompletion)
	}
	after, err := e.Summary()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 2, e.Current())
}

func TestSummaryBeforeCompletion(t *testing.T) {
	e, _ := newTestEngine(t, []string{"a", "b"}, 50)
	_, err := e.Summary()
	assert.ErrorIs(t, err, ErrNotComplete)
	typeWord(t, e, "a")
	_, err = e.Summary()
	assert.ErrorIs(t, err, ErrNotComplete)
}

func TestSummaryIsACopy(t *testing.T) {
	e, _ := newTestEngine(t, []string{"a"}, 50)
	typeWord(t, e, "a")
	s, err := e.Summary()
	require.NoError(t, err)
	s.CorrectWords[0] = "mutated"
	again, err := e.Summary()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.CorrectWords)
}

func TestRecordsAndTimestampsInvariants(t *testing.T) {
	words := []string{"one", "two", "three", "four", "five", "six"}
	e, _ := newTestEngine(t, words, 8)
	for i, w := range words {
		assert.Equal(t, i, e.Current())
		assert.Len(t, e.Records(), e.Current())
		for _, r := range w {
			require.NoError(t, e.HandleEvent(Append(r)))
			assert.Len(t, e.Records(), e.Current())
		}
		require.NoError(t, e.HandleEvent(Submit()))
		assert.Equal(t, i+1, e.Current())
		assert.Len(t, e.Timestamps(), e.Current()+1)
	}
	assert.True(t, e.IsComplete())
}

func TestRowAdvancesOnFirstWordOfRow(t *testing.T) {
	// Width 8: rows are [one two] [three] [four five] [six].
	e, _ := newTestEngine(t, []string{"one", "two", "three", "four", "five", "six"}, 8)
	wantRows := []int{0, 1, 2, 2, 3}
	for i, want := range wantRows {
		typeWord(t, e, "x")
		assert.Equal(t, want, e.Row(), "after word %d", i)
	}
}

func TestDurationFromTimestamps(t *testing.T) {
	e, _ := newTestEngine(t, []string{"a", "b"}, 50)
	typeWord(t, e, "a")
	typeWord(t, e, "b")
	s, err := e.Summary()
	require.NoError(t, err)
	// Only the start and each submit read the clock.
	assert.Equal(t, s.EndedAt().Sub(s.StartedAt()), s.Duration())
	assert.Equal(t, 2*time.Second, s.Duration())
}

func TestWordFollowsActiveIndex(t *testing.T) {
	e, _ := newTestEngine(t, []string{"the", "temperature"}, 10)
	assert.Equal(t, "the", e.Word())
	typeWord(t, e, "the")
	assert.Equal(t, "temperature", e.Word())
	typeWord(t, e, "temperature")
	assert.Equal(t, "", e.Word())
	assert.True(t, e.IsComplete())
}
