package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/typer/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes WPM, CPM, and accuracy for a stored session from
// its weighted scores. A non-positive duration yields zero speed.
func SessionMetrics(correctScore, incorrectScore int, durationMs int64) (wpm, cpm, accuracy float64) {
	accuracy = accuracyFromScores(correctScore, incorrectScore)
	if durationMs <= 0 {
		return 0, 0, accuracy
	}
	cpm = cpmFromScore(correctScore, float64(durationMs)/1000.0)
	return cpm / CharsPerWord, cpm, accuracy
}

// timed reports whether a stored session has a usable duration for speed.
func timed(s model.SessionAggregate) bool {
	return s.DurationMs > 0
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 || len(values) == 0 {
		copy(out, values)
		return out
	}
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Resample averages values into at most width buckets.
func Resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return append([]float64(nil), values...)
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// Series returns per-session WPM and accuracy (percent) smoothed over window.
// Sessions without a positive duration contribute accuracy only.
func Series(sessions []model.SessionAggregate, window int) (wpms, accs []float64) {
	wpms = make([]float64, 0, len(sessions))
	accs = make([]float64, 0, len(sessions))
	for _, s := range sessions {
		wpm, _, acc := SessionMetrics(s.CorrectScore, s.IncorrectScore, s.DurationMs)
		if timed(s) {
			wpms = append(wpms, wpm)
		}
		accs = append(accs, acc)
	}
	return MovingAverage(wpms, window), MovingAverage(accs, window)
}

// Totals summarizes a set of sessions. Speed figures cover the Timed
// sessions only.
type Totals struct {
	Sessions int
	Timed    int
	AvgWPM   float64
	BestWPM  float64
	AvgCPM   float64
	AvgAcc   float64
}

// Summarize averages metrics across sessions.
func Summarize(sessions []model.SessionAggregate) Totals {
	t := Totals{Sessions: len(sessions)}
	if len(sessions) == 0 {
		return t
	}
	for _, s := range sessions {
		wpm, cpm, acc := SessionMetrics(s.CorrectScore, s.IncorrectScore, s.DurationMs)
		t.AvgAcc += acc
		if !timed(s) {
			continue
		}
		t.Timed++
		t.AvgWPM += wpm
		t.AvgCPM += cpm
		t.BestWPM = math.Max(t.BestWPM, wpm)
	}
	t.AvgAcc /= float64(len(sessions))
	if t.Timed > 0 {
		t.AvgWPM /= float64(t.Timed)
		t.AvgCPM /= float64(t.Timed)
	}
	return t
}

// RenderSummary prints summary totals for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	t := Summarize(sessions)
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", t.Sessions),
		fmt.Sprintf("Avg WPM: %.2f", t.AvgWPM),
		fmt.Sprintf("Best WPM: %.2f", t.BestWPM),
		fmt.Sprintf("Avg CPM: %.2f", t.AvgCPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", t.AvgAcc),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints smoothed WPM and accuracy sparklines fitted to width.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	const label = "Accuracy "
	plotWidth := max(width-len(label), 1)
	wpms, accs := Series(sessions, window)
	lines := []string{
		fmt.Sprintf("Learning Curves (window %d)", window),
		"WPM      " + Sparkline(Resample(wpms, plotWidth)),
		label + Sparkline(Resample(accs, plotWidth)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// SessionRows formats sessions as table rows, newest first.
func SessionRows(sessions []model.SessionAggregate) [][]string {
	rows := make([][]string, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		wpm, cpm, acc := SessionMetrics(s.CorrectScore, s.IncorrectScore, s.DurationMs)
		cpmCell, wpmCell := "n/a", "n/a"
		if timed(s) {
			cpmCell, wpmCell = fmt.Sprintf("%.0f", cpm), fmt.Sprintf("%.1f", wpm)
		}
		rows = append(rows, []string{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			s.Lang,
			fmt.Sprintf("%d-%d", s.RangeStart, max(s.RangeEnd-1, s.RangeStart)),
			fmt.Sprintf("%d", s.Words),
			cpmCell,
			wpmCell,
			fmt.Sprintf("%.2f%%", acc),
		})
	}
	return rows
}

// SessionHeaders are the column titles matching SessionRows.
var SessionHeaders = []string{"Date", "Lang", "Range", "Words", "CPM", "WPM", "Accuracy"}

// RenderSessionTable prints sessions newest first.
func RenderSessionTable(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Sessions"); err != nil {
		return err
	}
	for _, line := range formatTable(columns(SessionHeaders, 3, 4, 5, 6), SessionRows(sessions)) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// MissedHeaders are the column titles matching MissedRows.
var MissedHeaders = []string{"Word", "Misses", "Attempts", "Miss Rate"}

// MissedRows formats word aggregates as table rows.
func MissedRows(aggs []model.WordAggregate) [][]string {
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, []string{
			agg.Word,
			fmt.Sprintf("%d", agg.Misses),
			fmt.Sprintf("%d", agg.Attempts),
			fmt.Sprintf("%.1f%%", missRate(agg)*100),
		})
	}
	return rows
}

// RenderMissedWords prints the most missed words.
func RenderMissedWords(w io.Writer, aggs []model.WordAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No missed words.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Most Missed Words"); err != nil {
		return err
	}
	for _, line := range formatTable(columns(MissedHeaders, 1, 2, 3), MissedRows(aggs)) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
