package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typer/internal/model"
	"github.com/verte-zerg/typer/internal/session"
	"github.com/verte-zerg/typer/internal/stats"
)

// Game runs one practice session.
type Game struct {
	env    Env
	engine *session.Engine
	help   help.Model
}

// NewGame creates a session over words. An empty sequence is rejected
// before anything is shown.
func NewGame(env Env, words []string) (*Game, error) {
	var opts []session.Option
	if env.Clock != nil {
		opts = append(opts, session.WithClock(env.Clock))
	}
	engine, err := session.New(words, env.Config.RowWidth, opts...)
	if err != nil {
		return nil, err
	}
	return &Game{env: env, engine: engine, help: help.New()}, nil
}

// Engine exposes the underlying session.
func (g *Game) Engine() *session.Engine {
	return g.engine
}

// Init implements Screen.
func (g *Game) Init() tea.Cmd {
	return nil
}

// Update implements Screen.
func (g *Game) Update(msg tea.Msg) (Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}
	if key.Matches(keyMsg, gameKeys.Quit) {
		return g, tea.Quit
	}
	for _, ev := range Classify(keyMsg) {
		if ev.Kind == session.EventAppend && runewidth.StringWidth(g.engine.Typed()) >= g.inputWidth() {
			continue
		}
		g.apply(ev)
		if g.engine.IsComplete() {
			return g, switchTo(g.finish())
		}
	}
	return g, nil
}

// inputWidth bounds the typed buffer. Words wider than a row sit on a row of
// their own, so the bound grows to leave room for them plus one extra rune.
func (g *Game) inputWidth() int {
	return max(g.env.Config.RowWidth, runewidth.StringWidth(g.engine.Word())+1)
}

func (g *Game) apply(ev session.Event) {
	before := g.engine.State()
	current := g.engine.Current()
	typed := g.engine.Typed()
	if err := g.engine.HandleEvent(ev); err != nil {
		if errors.Is(err, session.ErrEventAfterCompletion) {
			g.env.Logger.Warn().Err(err).Msg("event ignored")
			return
		}
		g.env.Logger.Error().Err(err).Msg("failed to handle event")
		return
	}
	if before == session.NotStarted && g.engine.State() != session.NotStarted {
		g.env.Logger.Info().
			Str("lang", g.env.Config.Lang).
			Int("range_start", g.env.Config.RangeStart).
			Int("words", g.engine.Len()).
			Msg("session started")
	}
	if ev.Kind == session.EventSubmit && g.engine.Current() > current {
		records := g.engine.Records()
		rec := records[len(records)-1]
		g.env.Logger.Debug().
			Int("index", rec.Index).
			Str("expected", rec.Expected).
			Str("typed", typed).
			Bool("correct", rec.Correct).
			Msg("word submitted")
	}
}

// finish scores the completed session, stores it when history is on and
// returns the summary screen.
func (g *Game) finish() Screen {
	sum, err := g.engine.Summary()
	if err != nil {
		g.env.Logger.Error().Err(err).Msg("summary unavailable")
	}
	score, scoreErr := stats.Compute(sum.CorrectWords, sum.IncorrectWords, sum.Duration())
	event := g.env.Logger.Info().
		Dur("duration", sum.Duration()).
		Float64("cpm", score.CPM).
		Float64("wpm", score.WPM).
		Float64("accuracy", score.Accuracy)
	if scoreErr != nil {
		event = event.AnErr("score_error", scoreErr)
	}
	event.Msg("session complete")

	if g.env.Recorder != nil {
		rec, words := historyRecord(g.env.Config, sum, score)
		if _, err := g.env.Recorder.InsertSession(context.Background(), rec, words); err != nil {
			g.env.Logger.Error().Err(err).Msg("failed to save session")
		}
	}
	return NewSummary(sum, score, scoreErr)
}

func historyRecord(cfg model.Config, sum session.Summary, score stats.Score) (model.SessionRecord, []model.WordResult) {
	rec := model.SessionRecord{
		StartedAt:      sum.StartedAt(),
		EndedAt:        sum.EndedAt(),
		Lang:           cfg.Lang,
		RangeStart:     cfg.RangeStart,
		RangeEnd:       cfg.RangeEnd(),
		Words:          len(sum.Records),
		CorrectWords:   score.CorrectWords,
		IncorrectWords: score.IncorrectWords,
		CorrectScore:   score.CorrectScore,
		IncorrectScore: score.IncorrectScore,
		DurationMs:     sum.Duration().Milliseconds(),
	}
	words := make([]model.WordResult, len(sum.Records))
	for i, r := range sum.Records {
		words[i] = model.WordResult{
			Index:       r.Index,
			Expected:    r.Expected,
			Typed:       r.Typed,
			Correct:     r.Correct,
			SubmittedAt: r.SubmittedAt,
		}
	}
	return rec, words
}

// View implements Screen.
func (g *Game) View(width, height int) string {
	rs := g.engine.RenderState()
	lines := renderRows(rs)
	lines = append(lines, "", renderInput(rs), "", g.renderFooter(rs))
	return place(width, height, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderRows draws the visible row window, always VisibleRows lines tall.
func renderRows(rs session.RenderState) []string {
	lines := make([]string, 0, session.VisibleRows)
	for _, row := range rs.Rows {
		var b strings.Builder
		col := 0
		for _, w := range row {
			if w.X > col {
				b.WriteString(strings.Repeat(" ", w.X-col))
				col = w.X
			}
			b.WriteString(wordStyle(w, rs.Typed).Render(w.Text))
			col += runewidth.StringWidth(w.Text)
		}
		if col < rs.MaxWidth {
			b.WriteString(strings.Repeat(" ", rs.MaxWidth-col))
		}
		lines = append(lines, b.String())
	}
	for len(lines) < session.VisibleRows {
		lines = append(lines, strings.Repeat(" ", rs.MaxWidth))
	}
	return lines
}

func wordStyle(w session.RenderWord, typed string) lipgloss.Style {
	switch w.Status {
	case session.StatusCorrect:
		return correctStyle
	case session.StatusIncorrect:
		return incorrectStyle
	case session.StatusActive:
		if !strings.HasPrefix(w.Text, typed) {
			return incorrectStyle.Copy().Underline(true)
		}
		return currentWordStyle.Copy().Underline(true)
	default:
		return pendingStyle
	}
}

func renderInput(rs session.RenderState) string {
	text := rs.Typed
	pad := rs.MaxWidth - runewidth.StringWidth(text)
	cursor := ""
	if pad > 0 {
		cursor = cursorStyle.Render(" ")
		pad--
	}
	return inputStyle.Render(correctStyle.Render(text) + cursor + strings.Repeat(" ", max(pad, 0)))
}

func (g *Game) renderFooter(rs session.RenderState) string {
	segments := []string{
		fmt.Sprintf("%d/%d words", rs.Current, rs.Total),
		fmt.Sprintf("%d correct", rs.Correct),
		fmt.Sprintf("%d wrong", rs.Wrong),
	}
	return footerStyle.Render(strings.Join(segments, "  ")) + "\n" + footerStyle.Render(g.help.View(gameKeys))
}
