package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-cascade/internal/storage"
)

// History layout constants
const (
	maxRuns       = 100 // Max runs to load
	eventColWidth = 10
)

// HistoryKeyMap defines the key bindings for the run history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Events key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Events, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Events},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Events: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show events"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	store      *storage.Store
	runs       []storage.RunRecord
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	width      int
	height     int
	showEvents bool // Event detail view for the selected run
	events     []storage.RunEvent
	quitting   bool
}

// NewHistoryModel creates a run history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	keys := DefaultHistoryKeyMap()
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates the runs table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Outcome", Width: 12},
		{Title: "Seed", Width: 20},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the most recent runs from storage.
func (m *HistoryModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	runs, err := m.store.RecentRuns(maxRuns)
	if err != nil {
		m.runs = nil
	} else {
		m.runs = runs
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.DurationTicks),
			r.Outcome,
			fmt.Sprintf("%d", r.Seed),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.showEvents {
				m.showEvents = false
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Events):
			if !m.showEvents && len(m.runs) > 0 {
				m.loadEvents()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			if !m.showEvents {
				m.table, cmd = m.table.Update(msg)
			}
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// loadEvents loads the event trail for the selected run.
func (m *HistoryModel) loadEvents() {
	idx := m.table.Cursor()
	if m.store == nil || idx < 0 || idx >= len(m.runs) {
		return
	}

	events, err := m.store.RunEvents(m.runs[idx].ID)
	if err != nil {
		return
	}
	m.events = events
	m.showEvents = true
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	if m.showEvents {
		return titleStyle.Render("RUN EVENTS") + "\n\n" +
			m.renderEvents() + "\n" +
			helpStyle.Render("esc/b back")
	}

	body := m.renderRuns()
	return titleStyle.Render("RECENT RUNS") + "\n\n" +
		body + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// renderRuns renders the runs table or an empty message.
func (m HistoryModel) renderRuns() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay to leave a trail!")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return tableStyle.Render(m.table.View())
}

// renderEvents renders the event trail of the selected run.
func (m HistoryModel) renderEvents() string {
	if len(m.events) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No events recorded for this run.")
	}

	var rows string
	rows += fmt.Sprintf("%-*s %-*s %-8s %s\n", eventColWidth, "Tick", eventColWidth, "Kind", "Cell", "Score")
	for _, e := range m.events {
		rows += fmt.Sprintf("%-*d %-*s (%d,%d)%-3s %d\n", eventColWidth, e.Tick, eventColWidth, e.Kind, e.X, e.Y, "", e.Score)
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return boxStyle.Render(rows)
}

// RunHistory runs the history browser screen.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
