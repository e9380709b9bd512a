package stats

import (
	"testing"

	"github.com/verte-zerg/typer/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	wpm, cpm, acc := SessionMetrics(95, 5, 60000)
	if cpm != 95 || wpm != 19 || acc != 95 {
		t.Fatalf("unexpected metrics: wpm=%v cpm=%v acc=%v", wpm, cpm, acc)
	}
	wpm, cpm, acc = SessionMetrics(10, 0, 0)
	if wpm != 0 || cpm != 0 || acc != 100 {
		t.Fatalf("zero duration should keep accuracy only: wpm=%v cpm=%v acc=%v", wpm, cpm, acc)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestSparklineAndResample(t *testing.T) {
	if got := Sparkline([]float64{1, 1, 1}); got != "+++" {
		t.Fatalf("flat sparkline: %q", got)
	}
	line := Sparkline([]float64{0, 5, 10})
	if len(line) != 3 || line[0] != ' ' || line[2] != '@' {
		t.Fatalf("unexpected sparkline %q", line)
	}
	res := Resample([]float64{1, 3, 5, 7}, 2)
	if len(res) != 2 || res[0] != 2 || res[1] != 6 {
		t.Fatalf("unexpected resample %v", res)
	}
	if len(Resample([]float64{1}, 10)) != 1 {
		t.Fatalf("resample should not stretch short series")
	}
}

func TestUntimedSessionsSkipSpeed(t *testing.T) {
	sessions := []model.SessionAggregate{
		{CorrectScore: 95, IncorrectScore: 5, DurationMs: 60000},
		{CorrectScore: 10, IncorrectScore: 0, DurationMs: 0},
	}
	totals := Summarize(sessions)
	if totals.Sessions != 2 || totals.Timed != 1 {
		t.Fatalf("unexpected counts: %+v", totals)
	}
	if totals.AvgCPM != 95 || totals.AvgWPM != 19 || totals.BestWPM != 19 {
		t.Fatalf("untimed session should not drag speed down: %+v", totals)
	}
	if totals.AvgAcc != 97.5 {
		t.Fatalf("accuracy should cover every session: %v", totals.AvgAcc)
	}

	wpms, accs := Series(sessions, 1)
	if len(wpms) != 1 || wpms[0] != 19 || len(accs) != 2 {
		t.Fatalf("unexpected series: wpms=%v accs=%v", wpms, accs)
	}

	rows := SessionRows(sessions)
	if rows[0][4] != "n/a" || rows[0][5] != "n/a" || rows[1][4] != "95" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}
