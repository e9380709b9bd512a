// Package statsui provides the Bubble Tea history viewer.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typer/internal/model"
	"github.com/verte-zerg/typer/internal/stats"
	"github.com/verte-zerg/typer/internal/store"
)

const (
	tabOverview = iota
	tabSessions
	tabMissed
)

var windowSteps = []int{1, 3, 5, 10, 20, 50}

var (
	activeNavStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea history viewer.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	report stats.Report
	errMsg string

	tabs      []string
	activeTab int
	overview  viewport.Model
	sessions  table.Model
	missed    table.Model

	width  int
	height int
}

// NewModel constructs a history viewer and loads the first report.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store:    st,
		cfg:      cfg,
		tabs:     []string{"Overview", "Sessions", "Missed Words"},
		overview: viewport.New(0, 0),
		sessions: newTable(sessionColumns(), nil),
		missed:   newTable(missedColumns(), nil),
	}
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderOverview()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=", "+":
			m.cfg.Window = stepWindow(m.cfg.Window, 1)
			m.refreshReport()
			return m, nil
		case "-":
			m.cfg.Window = stepWindow(m.cfg.Window, -1)
			m.refreshReport()
			return m, nil
		}
		var cmd tea.Cmd
		switch m.activeTab {
		case tabSessions:
			m.sessions, cmd = m.sessions.Update(msg)
		case tabMissed:
			m.missed, cmd = m.missed.Update(msg)
		default:
			m.overview, cmd = m.overview.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitBlock(m.renderHeader(), m.width, headerHeight)
	body := fitBlock(m.renderBody(), m.width, bodyHeight)
	footer := fitBlock(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = max(lipgloss.Height(activeNavStyle.Render("X")), 1) + 1
	footerHeight = 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = max(m.height-headerHeight-footerHeight, 1)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	for _, t := range []*table.Model{&m.sessions, &m.missed} {
		t.SetWidth(m.width)
		t.SetHeight(max(bodyHeight-1, 1))
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	m.activeTab = (m.activeTab + delta + count) % count
	m.sessions.Blur()
	m.missed.Blur()
	switch m.activeTab {
	case tabSessions:
		m.sessions.Focus()
	case tabMissed:
		m.missed.Focus()
	}
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.cfg)
	if err != nil {
		m.errMsg = err.Error()
		m.overview.SetContent("Failed to load stats.")
		return
	}
	m.errMsg = ""
	m.report = report
	m.sessions.SetRows(toRows(stats.SessionRows(report.Sessions)))
	m.missed.SetRows(toRows(stats.MissedRows(report.Missed)))
	m.renderOverview()
}

func (m *Model) renderOverview() {
	if m.errMsg != "" {
		return
	}
	m.overview.SetContent(renderOverview(m.report, m.contentWidth()))
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	return padBlock(m.renderTabs(), m.width) + "\n" + padBlock(m.renderFilterSummary(), m.width)
}

func (m *Model) renderFilterSummary() string {
	lang := m.cfg.Lang
	if lang == "" {
		lang = "any"
	}
	since := "any"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format("2006-01-02")
	}
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	summary := fmt.Sprintf("Filters: lang=%s  since=%s  last=%s  window=%d", lang, since, last, m.cfg.Window)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderBody() string {
	switch m.activeTab {
	case tabSessions:
		if len(m.report.Sessions) == 0 {
			return "No sessions found."
		}
		return tableMutedStyle.Render(m.sessions.View())
	case tabMissed:
		if len(m.report.Missed) == 0 {
			return "No missed words."
		}
		return tableMutedStyle.Render(m.missed.View())
	default:
		return m.overview.View()
	}
}

func renderOverview(r stats.Report, width int) string {
	if len(r.Sessions) == 0 {
		return "No sessions found."
	}
	var buf bytes.Buffer
	if err := stats.RenderCurves(&buf, r.Sessions, r.Window, width); err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return renderSummaryCards(r.Totals, width) + "\n\n" + strings.TrimRight(buf.String(), "\n")
}

func renderSummaryCards(t stats.Totals, width int) string {
	cards := []string{
		metricCard("Sessions", fmt.Sprintf("%d", t.Sessions)),
		metricCard("Avg WPM", fmt.Sprintf("%.1f", t.AvgWPM)),
		metricCard("Best WPM", fmt.Sprintf("%.1f", t.BestWPM)),
		metricCard("Avg CPM", fmt.Sprintf("%.1f", t.AvgCPM)),
		metricCard("Avg Acc", fmt.Sprintf("%.1f%%", t.AvgAcc)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	return cardStyle.Render(fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value)))
}

func sessionColumns() []table.Column {
	widths := []int{16, 4, 9, 5, 5, 6, 9}
	cols := make([]table.Column, len(stats.SessionHeaders))
	for i, title := range stats.SessionHeaders {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

func missedColumns() []table.Column {
	widths := []int{18, 7, 9, 10}
	cols := make([]table.Column, len(stats.MissedHeaders))
	for i, title := range stats.MissedHeaders {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

func newTable(cols []table.Column, rows []table.Row) table.Model {
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithHeight(1))
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func toRows(rows [][]string) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row(r)
	}
	return out
}

func stepWindow(current, delta int) int {
	idx := 0
	for i, step := range windowSteps {
		if step <= current {
			idx = i
		}
	}
	idx = min(max(idx+delta, 0), len(windowSteps)-1)
	return windowSteps[idx]
}
