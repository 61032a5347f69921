package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/multiplayer"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// MenuItem is one selectable mode.
type MenuItem struct {
	GameID string
	Title  string
	Mode   multiplayer.MatchMode
	Blurb  string // One-line description
	Record string // Best run or win counts, empty when nothing is stored
}

// MenuModel is the Bubble Tea model of the mode picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// modeOf reports whether a registered game is played by two people.
func modeOf(gameID string) multiplayer.MatchMode {
	if gameID == "versus" {
		return multiplayer.MatchModeVersus
	}
	return multiplayer.MatchModeSolo
}

func blurbOf(mode multiplayer.MatchMode) string {
	if mode == multiplayer.MatchModeVersus {
		return "two boards, one keyboard: clears send garbage"
	}
	return "one board, clear as many lines as you can"
}

// recordOf summarizes what the store holds for a mode. Read once per menu,
// not per frame.
func recordOf(store *storage.Store, item MenuItem) string {
	if store == nil {
		return ""
	}
	if item.Mode == multiplayer.MatchModeVersus {
		p1, p2, draws, err := store.WinCounts()
		if err != nil || p1+p2+draws == 0 {
			return ""
		}
		return fmt.Sprintf("P1 %d · P2 %d · draws %d", p1, p2, draws)
	}
	high, err := store.HighScore(item.GameID)
	if err != nil || high <= 0 {
		return ""
	}
	return fmt.Sprintf("best %d lines", high)
}

// NewMenuModel lists every registered mode.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Mode: modeOf(g.ID)}
		item.Blurb = blurbOf(item.Mode)
		item.Record = recordOf(store, item)
		items = append(items, item)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// logoColors paints the title strip in piece colors.
var logoColors = []core.Color{
	core.ColorBrightCyan, core.ColorBrightBlue, core.ColorOrange, core.ColorBrightYellow,
	core.ColorBrightGreen, core.ColorBrightMagenta, core.ColorBrightRed,
}

func logo() string {
	var b strings.Builder
	for _, c := range logoColors {
		b.WriteString(styleFor(c).Render("██"))
	}
	return b.String()
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(centerText(s, m.width))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	line(logo())
	line(menuTitleStyle.Render("B L O C K F A L L"))
	b.WriteByte('\n')

	for i, item := range m.items {
		title := fmt.Sprintf("  %-18s", item.Title)
		if i == m.cursor {
			title = menuActiveStyle.Render(fmt.Sprintf("> %-18s", item.Title))
		}
		line(title)
		line(menuDimStyle.Render(item.Blurb))
		if item.Record != "" {
			line(menuDimStyle.Render(item.Record))
		}
		b.WriteByte('\n')
	}

	line(menuDimStyle.Render(m.help.View(DefaultMenuKeyMap())))
	return b.String()
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem { return m.selected }

// IsQuitting reports whether the user quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the menu decided.
type MenuResult struct {
	GameID          string
	Mode            multiplayer.MatchMode
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		r.WantsScoreboard = true
	case m.selected != nil:
		r.GameID = m.selected.GameID
		r.Mode = m.selected.Mode
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the menu in the alternate screen until a choice is made.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
