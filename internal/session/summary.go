package session

import "time"

// Summary is the immutable snapshot of a completed session.
type Summary struct {
	Timestamps     []time.Time
	Records        []WordRecord
	CorrectWords   []string // expected text of correctly typed words
	IncorrectWords []string // typed text of mistyped words
}

func newSummary(timestamps []time.Time, records []WordRecord) Summary {
	s := Summary{
		Timestamps:     append([]time.Time(nil), timestamps...),
		Records:        append([]WordRecord(nil), records...),
		CorrectWords:   []string{},
		IncorrectWords: []string{},
	}
	for _, rec := range records {
		if rec.Correct {
			s.CorrectWords = append(s.CorrectWords, rec.Expected)
		} else {
			s.IncorrectWords = append(s.IncorrectWords, rec.Typed)
		}
	}
	return s
}

func (s Summary) clone() Summary {
	return Summary{
		Timestamps:     append([]time.Time(nil), s.Timestamps...),
		Records:        append([]WordRecord(nil), s.Records...),
		CorrectWords:   append([]string{}, s.CorrectWords...),
		IncorrectWords: append([]string{}, s.IncorrectWords...),
	}
}

// StartedAt returns the first recorded timestamp.
func (s Summary) StartedAt() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[0]
}

// EndedAt returns the last recorded timestamp.
func (s Summary) EndedAt() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[len(s.Timestamps)-1]
}

// Duration is the elapsed time between the first and last timestamp.
func (s Summary) Duration() time.Duration {
	return s.EndedAt().Sub(s.StartedAt())
}

// Mistakes returns the records of mistyped words.
func (s Summary) Mistakes() []WordRecord {
	var out []WordRecord
	for _, rec := range s.Records {
		if !rec.Correct {
			out = append(out, rec)
		}
	}
	return out
}
