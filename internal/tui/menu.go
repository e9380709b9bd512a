package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typer/internal/generator"
)

// MenuTiers is the number of difficulty ranges offered.
const MenuTiers = 10

const (
	columnRanges = iota
	columnLangs
)

type wordRange struct {
	start int
	end   int
}

func (r wordRange) label() string {
	return fmt.Sprintf("%d..%d", r.start, r.end-1)
}

// wordsLoadedMsg carries the drawn sequence for the selected range.
type wordsLoadedMsg struct {
	lang  string
	rng   wordRange
	words []string
	err   error
}

// Menu selects a difficulty range and a language.
type Menu struct {
	env      Env
	ranges   []wordRange
	langs    []string
	column   int
	rangeIdx int
	langIdx  int
	loading  bool
	err      error
	help     help.Model
}

// NewMenu builds the menu with the configured range and language preselected.
func NewMenu(env Env) *Menu {
	size := max(env.Config.RangeSize, 1)
	m := &Menu{env: env, help: help.New()}
	for i := 0; i < MenuTiers; i++ {
		m.ranges = append(m.ranges, wordRange{start: i * size, end: (i + 1) * size})
	}
	m.rangeIdx = min(max(env.Config.RangeStart/size, 0), MenuTiers-1)

	m.langs = append([]string(nil), env.Languages...)
	if len(m.langs) == 0 {
		m.langs = []string{env.Config.Lang}
	}
	for i, lang := range m.langs {
		if strings.EqualFold(lang, env.Config.Lang) {
			m.langIdx = i
		}
	}
	return m
}

// Init implements Screen.
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements Screen.
func (m *Menu) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.env.Logger.Warn().Err(msg.err).Str("lang", msg.lang).Int("range_start", msg.rng.start).Msg("word range unavailable")
			return m, nil
		}
		cfg := m.env.Config
		cfg.Lang = msg.lang
		cfg.RangeStart = msg.rng.start
		cfg.RangeSize = msg.rng.end - msg.rng.start
		env := m.env
		env.Config = cfg
		game, err := NewGame(env, msg.words)
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, switchTo(game)
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, menuKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, menuKeys.Left):
			m.column = columnRanges
		case key.Matches(msg, menuKeys.Right):
			m.column = columnLangs
		case key.Matches(msg, menuKeys.Up):
			m.move(-1)
		case key.Matches(msg, menuKeys.Down):
			m.move(1)
		case key.Matches(msg, menuKeys.Start):
			m.loading = true
			m.err = nil
			return m, m.load()
		}
	}
	return m, nil
}

func (m *Menu) move(delta int) {
	if m.column == columnLangs {
		m.langIdx = min(max(m.langIdx+delta, 0), len(m.langs)-1)
		return
	}
	m.rangeIdx = min(max(m.rangeIdx+delta, 0), len(m.ranges)-1)
}

// Selection returns the highlighted language and range.
func (m *Menu) Selection() (lang string, start, end int) {
	r := m.ranges[m.rangeIdx]
	return m.langs[m.langIdx], r.start, r.end
}

func (m *Menu) load() tea.Cmd {
	lang, start, end := m.Selection()
	env := m.env
	return func() tea.Msg {
		rng := wordRange{start: start, end: end}
		pool, err := env.Source.GetWordRange(context.Background(), lang, start, end)
		if err != nil {
			return wordsLoadedMsg{lang: lang, rng: rng, err: err}
		}
		gen := env.Generator
		if gen == nil {
			gen = generator.New()
		}
		words := gen.Draw(pool, env.Config.Words, generator.Options{
			CapsPct:  env.Config.CapsPct,
			PunctPct: env.Config.PunctPct,
			PunctSet: []rune(env.Config.PunctSet),
		})
		return wordsLoadedMsg{lang: lang, rng: rng, words: words}
	}
}

// View implements Screen.
func (m *Menu) View(width, height int) string {
	rangeItems := make([]string, len(m.ranges))
	for i, r := range m.ranges {
		rangeItems[i] = r.label()
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		renderColumn("Words", rangeItems, m.rangeIdx, m.column == columnRanges),
		"    ",
		renderColumn("Language", m.langs, m.langIdx, m.column == columnLangs),
	)
	lines := []string{titleStyle.Render("typer"), "", columns, ""}
	switch {
	case m.loading:
		lines = append(lines, footerStyle.Render("Loading words..."))
	case m.err != nil:
		lines = append(lines, incorrectStyle.Render(m.err.Error()))
	default:
		lines = append(lines, "")
	}
	lines = append(lines, footerStyle.Render(m.help.View(menuKeys)))
	return place(width, height, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func renderColumn(title string, items []string, selected int, focused bool) string {
	header := pendingStyle.Render(title)
	if focused {
		header = titleStyle.Render(title)
	}
	lines := []string{header, ""}
	for i, item := range items {
		switch {
		case i == selected && focused:
			lines = append(lines, selectedStyle.Render("> "+item))
		case i == selected:
			lines = append(lines, correctStyle.Render("> "+item))
		default:
			lines = append(lines, pendingStyle.Render("  "+item))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
