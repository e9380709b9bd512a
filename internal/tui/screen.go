package tui

import tea "github.com/charmbracelet/bubbletea"

// Screen is one state of the interactive loop: menu, game or summary.
type Screen interface {
	// Init returns the first command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen for the given terminal size.
	View(width, height int) string
}

// switchScreenMsg asks the driver to replace the active screen.
type switchScreenMsg struct {
	screen Screen
}

func switchTo(s Screen) tea.Cmd {
	return func() tea.Msg {
		return switchScreenMsg{screen: s}
	}
}

// Driver is the tea.Model running whichever Screen is active.
type Driver struct {
	active Screen
	width  int
	height int
}

// NewDriver creates a Driver starting at initial.
func NewDriver(initial Screen) *Driver {
	return &Driver{active: initial}
}

// Active returns the current screen.
func (d *Driver) Active() Screen {
	return d.active
}

// Init implements tea.Model.
func (d *Driver) Init() tea.Cmd {
	return d.active.Init()
}

// Update implements tea.Model.
func (d *Driver) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
	case switchScreenMsg:
		d.active = msg.screen
		return d, d.active.Init()
	}
	updated, cmd := d.active.Update(msg)
	d.active = updated
	return d, cmd
}

// View implements tea.Model.
func (d *Driver) View() string {
	return d.active.View(d.width, d.height)
}
