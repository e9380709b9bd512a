package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typer/internal/session"
	"github.com/verte-zerg/typer/internal/stats"
)

func finishedSummary(t *testing.T, words, typed []string, step time.Duration) session.Summary {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), step: step}
	engine, err := session.New(words, 80, session.WithClock(clock))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	for _, word := range typed {
		for _, r := range word {
			_ = engine.HandleEvent(session.Append(r))
		}
		_ = engine.HandleEvent(session.Submit())
	}
	sum, err := engine.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	return sum
}

func TestSummaryLines(t *testing.T) {
	sum := finishedSummary(t, []string{"the", "quick", "brown"}, []string{"the", "quikc", "brown"}, 10*time.Second)
	score, err := stats.Compute(sum.CorrectWords, sum.IncorrectWords, sum.Duration())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	out := strings.Join(NewSummary(sum, score, err).Lines(), "\n")
	for _, want := range []string{
		"You need to train more",
		"Time: 30.00 seconds",
		"CPM = 16 | WPM = 3.2 | accuracy = 61.54%",
		"Invalid words: 1 | Correct words: 2",
		"quick -> quikc",
		"Press any key to exit",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryWellDone(t *testing.T) {
	score := stats.Score{WPM: 60, CPM: 300, Accuracy: 99}
	if got := NewSummary(session.Summary{}, score, nil).Lines()[0]; got != "Well done" {
		t.Fatalf("expected praise, got %q", got)
	}
}

func TestSummaryInvalidDuration(t *testing.T) {
	sum := finishedSummary(t, []string{"go"}, []string{"go"}, 0)
	score, err := stats.Compute(sum.CorrectWords, sum.IncorrectWords, sum.Duration())
	if err == nil {
		t.Fatalf("expected invalid duration")
	}
	out := strings.Join(NewSummary(sum, score, err).Lines(), "\n")
	if !strings.Contains(out, "CPM = n/a | WPM = n/a | accuracy = 100.00%") {
		t.Fatalf("expected n/a metrics:\n%s", out)
	}
}

func TestSummaryAnyKeyQuits(t *testing.T) {
	s := NewSummary(session.Summary{}, stats.Score{}, nil)
	_, cmd := send(t, s, runes("x"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
