// Package ui is the interactive terminal frontend. It polls a source, runs
// the records through the engine's filter and pagination, and paints the
// view layer's table descriptions with lipgloss.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hjops/alarmtop/config"
	"github.com/hjops/alarmtop/engine"
	"github.com/hjops/alarmtop/model"
	"github.com/hjops/alarmtop/source"
)

// Page identifies the current screen.
type Page int

const (
	PageHistory Page = iota
	PageOverview
	pageCount
)

var pageNames = []string{"History", "Overview"}

type tickMsg time.Time

type fetchMsg struct {
	alarms []model.AlarmRecord
	err    error
}

// Model is the bubbletea model.
type Model struct {
	src      source.Source
	interval time.Duration
	pageSize int

	width  int
	height int

	// Data from the last successful fetch, in upstream order.
	alarms    []model.AlarmRecord
	fetchErr  error
	fetched   bool
	lastFetch time.Time

	// Navigation
	page     Page
	showHelp bool

	// History page state
	filter   model.Filter
	histPage int
	selected int
	firstCol int

	// Search input mode
	searching bool
	searchBuf string
}

// NewModel creates a new TUI model.
func NewModel(src source.Source, interval time.Duration, pageSize int, theme config.ThemeConfig) Model {
	applyTheme(theme)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if pageSize <= 0 {
		pageSize = engine.DefaultPageSize
	}
	return Model{
		src:      src,
		interval: interval,
		pageSize: pageSize,
		histPage: 1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.tickCmd())
}

func (m Model) fetchCmd() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		alarms, err := src.Fetch(ctx)
		return fetchMsg{alarms: alarms, err: err}
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.fetchCmd(), m.tickCmd())

	case fetchMsg:
		m.fetched = true
		m.fetchErr = msg.err
		if msg.err == nil {
			// Keep the previous list on a failed refresh; stale
			// data beats an empty table.
			m.alarms = msg.alarms
			m.lastFetch = time.Now()
		}
		m = m.clampNavigation()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.filter.Query = m.searchBuf
		m.histPage = 1
		m.selected = 0
	case "esc":
		m.searching = false
		m.searchBuf = ""
		m.filter.Query = ""
		m.histPage = 1
	case "backspace":
		if len(m.searchBuf) > 0 {
			r := []rune(m.searchBuf)
			m.searchBuf = string(r[:len(r)-1])
		}
	case " ":
		m.searchBuf += " "
	default:
		if msg.Type == tea.KeyRunes {
			m.searchBuf += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "esc":
		m.showHelp = false
		return m, nil

	case "tab":
		m.page = (m.page + 1) % pageCount
		return m, nil
	case "1":
		m.page = PageHistory
		return m, nil
	case "2":
		m.page = PageOverview
		return m, nil

	case "r":
		return m, m.fetchCmd()

	case "j", "down":
		m.selected++
		return m.clampNavigation(), nil
	case "k", "up":
		m.selected--
		return m.clampNavigation(), nil

	case "h", "left":
		if m.firstCol > 0 {
			m.firstCol--
		}
		return m, nil
	case "l", "right":
		if m.firstCol < 4 {
			m.firstCol++
		}
		return m, nil

	case "n":
		m.histPage++
		m.selected = 0
		return m.clampNavigation(), nil
	case "p":
		m.histPage--
		m.selected = 0
		return m.clampNavigation(), nil

	case "s":
		// Cycle severity: All -> 5 -> 4 -> 3 -> 2 -> 1 -> All
		switch m.filter.Level {
		case 0:
			m.filter.Level = 5
		case 1:
			m.filter.Level = 0
		default:
			m.filter.Level--
		}
		m.histPage = 1
		m.selected = 0
		return m.clampNavigation(), nil

	case "a":
		switch m.filter.Status {
		case model.StatusActive:
			m.filter.Status = model.StatusResolved
		case model.StatusResolved:
			m.filter.Status = model.StatusAll
		default:
			m.filter.Status = model.StatusActive
		}
		m.histPage = 1
		m.selected = 0
		return m.clampNavigation(), nil

	case "/":
		m.searching = true
		m.searchBuf = m.filter.Query
		return m, nil
	}
	return m, nil
}

// historyPage computes the current filtered page.
func (m Model) historyPage() model.HistoryPage {
	return engine.Paginate(engine.Apply(m.alarms, m.filter), m.histPage, m.pageSize)
}

// clampNavigation keeps page and row selection inside the filtered data.
func (m Model) clampNavigation() Model {
	p := m.historyPage()
	m.histPage = p.Page
	if m.selected >= len(p.Alarms) {
		m.selected = len(p.Alarms) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if !m.fetched {
		return "Fetching alarm history..."
	}

	var content string
	switch m.page {
	case PageHistory:
		content = renderHistoryPage(m.historyPage(), m.filter,
			m.searching, m.searchBuf, m.selected, m.firstCol, m.width)
	case PageOverview:
		content = renderOverviewPage(engine.Count(m.alarms), m.width)
	}

	// Trim to viewport height, leaving room for header and status bar.
	lines := strings.Split(content, "\n")
	maxLines := m.height - 3
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	content = strings.Join(lines, "\n")

	return m.renderHeader() + "\n" + content + "\n" + m.renderStatusBar()
}

func (m Model) renderHeader() string {
	left := titleStyle.Render("alarmtop") + "  " + dimStyle.Render(m.src.Name())

	right := ""
	if !m.lastFetch.IsZero() {
		right = dimStyle.Render("updated " + m.lastFetch.Format("15:04:05"))
	}
	if m.fetchErr != nil {
		right = warnStyle.Render("refresh failed") + " " + right
	}

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) renderStatusBar() string {
	var tabs []string
	for i, name := range pageNames {
		label := fmt.Sprintf("%d:%s", i+1, name)
		if Page(i) == m.page {
			tabs = append(tabs, selectedStyle.Render(label))
		} else {
			tabs = append(tabs, helpStyle.Render(label))
		}
	}
	return " " + strings.Join(tabs, "  ") + "   " + helpStyle.Render("tab: switch  r: refresh  ?: help  q: quit")
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"q / ctrl+c", "quit"},
		{"tab, 1, 2", "switch page"},
		{"r", "refresh now"},
		{"j / k", "select row"},
		{"n / p", "next / previous page"},
		{"h / l", "scroll columns on narrow terminals"},
		{"/", "search messages (enter: apply, esc: clear)"},
		{"s", "cycle severity filter"},
		{"a", "cycle status filter (all / active / resolved)"},
		{"?", "toggle this help"},
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("HELP"))
	sb.WriteString("\n\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			valueStyle.Render(padRight(r.key, 14)), labelStyle.Render(r.desc)))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("  press ? or esc to close"))
	return sb.String()
}

// Run starts the fullscreen TUI.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
