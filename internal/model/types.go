// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Lang       string
	RangeStart int
	RangeSize  int
	Words      int
	CapsPct    float64
	PunctPct   float64
	PunctSet   string
	RowWidth   int
	History    bool
}

// RangeEnd returns the exclusive end rank of the configured range.
func (c Config) RangeEnd() int {
	return c.RangeStart + c.RangeSize
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Lang   string
	Since  *time.Time
	Last   int
	Window int
}

// SessionRecord captures a completed typing session for persistence.
type SessionRecord struct {
	StartedAt      time.Time
	EndedAt        time.Time
	Lang           string
	RangeStart     int
	RangeEnd       int
	Words          int
	CorrectWords   int
	IncorrectWords int
	CorrectScore   int
	IncorrectScore int
	DurationMs     int64
}

// WordResult stores the outcome of one submitted word.
type WordResult struct {
	Index       int
	Expected    string
	Typed       string
	Correct     bool
	SubmittedAt time.Time
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID      int64
	EndedAt        time.Time
	Lang           string
	RangeStart     int
	RangeEnd       int
	Words          int
	CorrectScore   int
	IncorrectScore int
	DurationMs     int64
}

// WordAggregate counts attempts and misses of an expected word across sessions.
type WordAggregate struct {
	Word     string
	Attempts int
	Misses   int
}
