package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typer/internal/session"
)

type menuKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Quit  key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Start, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var menuKeys = menuKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "ranges")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "languages")),
	Start: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type gameKeyMap struct {
	Submit    key.Binding
	Backspace key.Binding
	Quit      key.Binding
}

func (k gameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Backspace, k.Quit}
}

func (k gameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var gameKeys = gameKeyMap{
	Submit:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/enter", "submit")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "erase")),
	Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// Classify maps a key press to engine events. Keys outside the practice
// vocabulary yield no events.
func Classify(msg tea.KeyMsg) []session.Event {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		return []session.Event{session.Backspace()}
	case tea.KeySpace, tea.KeyEnter:
		return []session.Event{session.Submit()}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		events := make([]session.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == ' ' {
				events = append(events, session.Submit())
				continue
			}
			events = append(events, session.Append(r))
		}
		return events
	default:
		return nil
	}
}
