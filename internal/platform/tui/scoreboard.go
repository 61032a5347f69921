package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/multiplayer"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const maxScores = 100 // Rows loaded per tab

// ScoreboardKeyMap defines the key bindings of the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextTab, k.PrevTab}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows one tab per mode: the best solo runs, or the most
// recent versus matches.
type ScoreboardModel struct {
	games     []registry.GameInfo
	tab       int
	store     *storage.Store
	summary   string // Totals line of the current tab
	rows      []table.Row
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

// versusSelected reports whether the current tab lists matches.
func (m *ScoreboardModel) versusSelected() bool {
	return len(m.games) > 0 && modeOf(m.games[m.tab].ID) == multiplayer.MatchModeVersus
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.versusSelected() {
		return []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Winner", Width: 7},
			{Title: "Lines", Width: 9},
			{Title: "Sent", Width: 9},
			{Title: "Time", Width: 6},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Lines", Width: 7},
		{Title: "Pieces", Width: 7},
		{Title: "Sent", Width: 6},
		{Title: "Date", Width: 14},
	}
}

// createTable builds the table for the current tab and size.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

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

// load reads the current tab from the store and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows, m.summary = nil, ""
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.tab].ID
		if m.versusSelected() {
			m.loadMatches()
		} else {
			m.loadRuns(id)
		}
	}
	m.table = m.createTable()
}

func (m *ScoreboardModel) loadRuns(gameID string) {
	scores, err := m.store.TopScores(gameID, maxScores)
	if err != nil {
		return
	}
	for i, s := range scores {
		m.rows = append(m.rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(s.Lines),
			fmt.Sprint(s.Pieces),
			fmt.Sprint(s.Attack),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	if st, err := m.store.GetGameStats(gameID); err == nil && st.GamesCount > 0 {
		m.summary = fmt.Sprintf("%d runs · best %d · avg %.1f · %d lines total",
			st.GamesCount, st.HighScore, st.AvgScore, st.TotalLines)
	}
}

func (m *ScoreboardModel) loadMatches() {
	matches, err := m.store.RecentVersusMatches(maxScores)
	if err != nil {
		return
	}
	for _, r := range matches {
		m.rows = append(m.rows, matchRow(r))
	}
	if p1, p2, draws, err := m.store.WinCounts(); err == nil && len(matches) > 0 {
		m.summary = fmt.Sprintf("P1 %d : %d P2 · %d drawn", p1, p2, draws)
	}
}

// matchRow formats one versus result.
func matchRow(r storage.VersusMatchResult) table.Row {
	winner := r.Winner
	if winner == "" {
		winner = "draw"
	}
	return table.Row{
		r.CreatedAt.Format("Jan 02 15:04"),
		winner,
		fmt.Sprintf("%d-%d", r.Lines1, r.Lines2),
		fmt.Sprintf("%d-%d", r.Attack1, r.Attack2),
		fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
	}
}

func (m *ScoreboardModel) switchTab(delta int) {
	if n := len(m.games); n > 0 {
		m.tab = (m.tab + delta + n) % n
		m.load()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(centerText(boardTitleStyle.Render("SCOREBOARD"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	if m.summary != "" {
		b.WriteString(centerText(menuDimStyle.Render(m.summary), m.width))
		b.WriteString("\n")
	}

	content := m.table.View()
	if len(m.rows) == 0 {
		content = emptyStyle.Render("Nothing recorded yet.\nPlay a game to set a high score!")
	}
	for _, line := range strings.Split(panelStyle.Render(content), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteByte('\n')
	}

	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user quit.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard until the user leaves. goBack is false
// when the user quit instead of returning to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
