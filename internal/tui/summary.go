package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typer/internal/session"
	"github.com/verte-zerg/typer/internal/stats"
)

// maxListedMistakes bounds the mistyped words shown on the summary.
const maxListedMistakes = 10

// Summary shows the result of a finished session.
type Summary struct {
	summary  session.Summary
	score    stats.Score
	scoreErr error
}

// NewSummary builds the result screen. scoreErr is the error returned by
// stats.Compute, if any.
func NewSummary(sum session.Summary, score stats.Score, scoreErr error) *Summary {
	return &Summary{summary: sum, score: score, scoreErr: scoreErr}
}

// Init implements Screen.
func (s *Summary) Init() tea.Cmd {
	return nil
}

// Update implements Screen. Any key exits.
func (s *Summary) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, tea.Quit
	}
	return s, nil
}

// Lines returns the unstyled summary text.
func (s *Summary) Lines() []string {
	headline := "You need to train more"
	if s.scoreErr == nil && s.score.WellDone() {
		headline = "Well done"
	}
	metrics := fmt.Sprintf("CPM = %.0f | WPM = %.1f | accuracy = %.2f%%", s.score.CPM, s.score.WPM, s.score.Accuracy)
	if s.scoreErr != nil {
		metrics = fmt.Sprintf("CPM = n/a | WPM = n/a | accuracy = %.2f%%", s.score.Accuracy)
	}
	lines := []string{
		headline,
		"",
		fmt.Sprintf("Time: %.2f seconds", s.summary.Duration().Seconds()),
		metrics,
		fmt.Sprintf("Invalid words: %d | Correct words: %d", s.score.IncorrectWords, s.score.CorrectWords),
	}
	mistakes := s.summary.Mistakes()
	if len(mistakes) > 0 {
		lines = append(lines, "", "Mistyped:")
		for i, rec := range mistakes {
			if i == maxListedMistakes {
				lines = append(lines, fmt.Sprintf("  ... and %d more", len(mistakes)-maxListedMistakes))
				break
			}
			lines = append(lines, fmt.Sprintf("  %s -> %s", rec.Expected, rec.Typed))
		}
	}
	return append(lines, "", "Press any key to exit")
}

// View implements Screen.
func (s *Summary) View(width, height int) string {
	lines := s.Lines()
	styled := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case i == 0 && line == "Well done":
			styled[i] = titleStyle.Render(line)
		case i == 0:
			styled[i] = incorrectStyle.Render(line)
		case i == len(lines)-1:
			styled[i] = footerStyle.Render(line)
		default:
			styled[i] = correctStyle.Render(line)
		}
	}
	return place(width, height, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, styled...)))
}
