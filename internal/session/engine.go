// Package session implements the typing-session state machine.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/typer/internal/layout"
	"github.com/verte-zerg/typer/internal/wordsource"
)

var (
	// ErrEventAfterCompletion is returned when an event reaches a completed engine.
	// The event is dropped and the engine state is left untouched.
	ErrEventAfterCompletion = errors.New("event after session completion")
	// ErrNotComplete is returned when a summary is requested before the last word was submitted.
	ErrNotComplete = errors.New("session not complete")
)

// State is the engine lifecycle phase.
type State int

const (
	NotStarted State = iota // no event received yet
	InProgress              // started, words remaining
	Complete                // every word submitted
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// WordRecord is the outcome of one submitted word.
type WordRecord struct {
	Index       int
	Expected    string
	Typed       string
	Correct     bool
	SubmittedAt time.Time
}

// Engine owns the state of one typing session. It is not safe for
// concurrent use; the host loop feeds it one event at a time.
type Engine struct {
	words  []string
	layout layout.Assignment
	clock  Clock

	state      State
	current    int
	row        int
	typed      []rune
	cursor     int
	timestamps []time.Time
	records    []WordRecord
	summary    Summary
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// New builds an engine for words laid out in rows of maxWidth columns.
// The word slice is copied; an empty slice is rejected before the session
// can start.
func New(words []string, maxWidth int, opts ...Option) (*Engine, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("cannot start session: %w", wordsource.ErrEmptyWordSource)
	}
	e := &Engine{
		words: append([]string(nil), words...),
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.layout = layout.Layout(e.words, maxWidth, 0)
	return e, nil
}

// HandleEvent applies one event. Events the engine does not understand are
// ignored. Once the session is complete every event returns
// ErrEventAfterCompletion without changing state.
func (e *Engine) HandleEvent(ev Event) error {
	if e.state == Complete {
		return ErrEventAfterCompletion
	}
	if !ev.valid() {
		return nil
	}
	if e.state == NotStarted {
		e.state = InProgress
		e.timestamps = append(e.timestamps, e.clock.Now())
	}
	switch ev.Kind {
	case EventBackspace:
		e.backspace()
	case EventAppend:
		e.typed = append(e.typed, ev.Char)
		e.cursor++
	case EventSubmit:
		e.submit()
	}
	return nil
}

func (e *Engine) backspace() {
	if len(e.typed) == 0 {
		return
	}
	e.typed = e.typed[:len(e.typed)-1]
	e.cursor--
}

func (e *Engine) submit() {
	now := e.clock.Now()
	expected := e.words[e.current]
	typed := string(e.typed)
	e.records = append(e.records, WordRecord{
		Index:       e.current,
		Expected:    expected,
		Typed:       typed,
		Correct:     typed == expected,
		SubmittedAt: now,
	})
	e.timestamps = append(e.timestamps, now)
	e.typed = e.typed[:0]
	e.cursor = 0
	e.current++

	if e.current == len(e.words) {
		e.state = Complete
		e.summary = newSummary(e.timestamps, e.records)
		return
	}
	if e.layout.IsFirstInRow(e.current) {
		e.row++
	}
}

// State returns the lifecycle phase.
func (e *Engine) State() State {
	return e.state
}

// IsComplete reports whether every word has been submitted.
func (e *Engine) IsComplete() bool {
	return e.state == Complete
}

// Current returns the index of the active word; it equals Len once complete.
func (e *Engine) Current() int {
	return e.current
}

// Len returns the number of words in the session.
func (e *Engine) Len() int {
	return len(e.words)
}

// Row returns the row index of the first visible row.
func (e *Engine) Row() int {
	return e.row
}

// Word returns the expected text of the active word, or "" once complete.
func (e *Engine) Word() string {
	if e.current >= len(e.words) {
		return ""
	}
	return e.words[e.current]
}

// Typed returns the in-progress buffer for the active word.
func (e *Engine) Typed() string {
	return string(e.typed)
}

// Cursor returns the cursor offset from the start of the input row.
func (e *Engine) Cursor() int {
	return e.cursor
}

// Records returns a copy of the submitted word records in submission order.
func (e *Engine) Records() []WordRecord {
	return append([]WordRecord(nil), e.records...)
}

// Timestamps returns a copy of the recorded timestamps.
func (e *Engine) Timestamps() []time.Time {
	return append([]time.Time(nil), e.timestamps...)
}

// Summary returns the frozen session summary. It fails with ErrNotComplete
// until the last word is submitted.
func (e *Engine) Summary() (Summary, error) {
	if e.state != Complete {
		return Summary{}, ErrNotComplete
	}
	return e.summary.clone(), nil
}
