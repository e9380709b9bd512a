// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typer/internal/generator"
	"github.com/verte-zerg/typer/internal/model"
	"github.com/verte-zerg/typer/internal/session"
)

// WordSource supplies the ranked words for a menu selection.
type WordSource interface {
	GetWordRange(ctx context.Context, lang string, start, end int) ([]string, error)
}

// Recorder persists finished sessions.
type Recorder interface {
	InsertSession(ctx context.Context, rec model.SessionRecord, words []model.WordResult) (int64, error)
}

// Env holds the collaborators shared by all screens.
type Env struct {
	Config    model.Config
	Languages []string
	Source    WordSource
	// Recorder is nil when history is disabled.
	Recorder  Recorder
	Generator *generator.Generator
	Logger    zerolog.Logger
	// Clock is nil outside tests.
	Clock session.Clock
}

// Run starts the menu and blocks until the user quits.
func Run(env Env) error {
	p := tea.NewProgram(NewDriver(NewMenu(env)), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
