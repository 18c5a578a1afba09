package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxScores          = 100
	minScoreColumns    = 3
)

// allGames is the pseudo-entry listing every game's scores together.
var allGames = registry.GameInfo{Title: "All games"}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeTabStyle  = activeStyle.Background(lipgloss.Color("57")).Padding(0, 1)
	emptyStyle      = hintStyle.Italic(true).Padding(2, 4)
)

// scoreColumns in the order they are dropped from the right on narrow
// terminals.
var scoreColumns = []table.Column{
	{Title: "Rank", Width: 6},
	{Title: "Player", Width: 16},
	{Title: "Score", Width: 8},
	{Title: "Game", Width: 12},
	{Title: "Time", Width: 10},
}

type boardKeys struct {
	Scroll, Next, Prev, Back, Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultBoardKeys = boardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("up/down", "scroll")),
	Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/right", "next game")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/left", "prev game")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel shows the session's scores, combined or per game.
type ScoreboardModel struct {
	games       []registry.GameInfo // allGames first, then every registered game
	cursor      int
	store       *storage.Store
	logger      *log.Logger
	scores      []storage.ScoreEntry
	stats       *storage.GameStats
	best        map[string]int
	table       table.Model
	help        help.Model
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel reads the store and opens on the combined view. A nil
// store shows an empty board. Failed reads go to logger when it is not nil.
func NewScoreboardModel(store *storage.Store, logger *log.Logger, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  append([]registry.GameInfo{allGames}, registry.List()...),
		store:  store,
		logger: logger,
		help:   help.New(),
		best:   map[string]int{},
	}
	if store != nil {
		all, err := store.AllGamesStats()
		m.warn(err)
		for id, st := range all {
			m.best[id] = st.HighScore
		}
	}
	m.resize(width, height)
	m.load()
	return m
}

func (m ScoreboardModel) current() registry.GameInfo {
	return m.games[m.cursor]
}

func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.showSidebar = width >= minWidthForSidebar

	avail := width - 4
	if m.showSidebar {
		avail -= sidebarWidth + 3
	}
	n := len(scoreColumns)
	for n > minScoreColumns && columnsWidth(scoreColumns[:n]) > avail {
		n--
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(scoreColumns[:n]),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
		table.WithStyles(styles),
	)
	m.fillRows()
}

func columnsWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}

// load fetches the scores of the current view. Stats exist only for a
// single game.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		id := m.current().ID
		scores, err := m.store.TopScores(id, maxScores)
		m.warn(err)
		m.scores = scores
		if id != "" {
			stats, err := m.store.GameStats(id)
			m.warn(err)
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) warn(err error) {
	if err != nil && m.logger != nil {
		m.logger.Warn("cannot read scores", "game", m.current().ID, "err", err)
	}
}

func (m *ScoreboardModel) fillRows() {
	n := len(m.table.Columns())
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprint(s.Score),
			gameTitle(s.GameID),
			s.CreatedAt.Local().Format("15:04:05"),
		}
		rows[i] = row[:n]
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func gameTitle(id string) string {
	if info, ok := registry.Info(id); ok {
		return info.Title
	}
	return id
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultBoardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, defaultBoardKeys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, defaultBoardKeys.Next):
			m.cursor = (m.cursor + 1) % len(m.games)
			m.load()
			return m, nil
		case key.Matches(msg, defaultBoardKeys.Prev):
			m.cursor = (m.cursor - 1 + len(m.games)) % len(m.games)
			m.load()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES - "+m.current().Title, m.width)))
	b.WriteString("\n\n")

	content := m.tableContent()
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", boxStyle.Render(content)))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(content))
	}

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(line))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(defaultBoardKeys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Runs %d  |  Best %d  |  Average %.1f  |  Last %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Local().Format("15:04:05"))
}

// sidebar lists the views with each game's session best.
func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString("Games\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, g := range m.games {
		line := "  " + truncate(g.Title, sidebarWidth-12)
		if best, ok := m.best[g.ID]; ok {
			line += fmt.Sprintf(" %d", best)
		}
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(activeStyle.Render("> " + line[2:]))
		} else {
			b.WriteString(line)
		}
	}
	return boxStyle.Width(sidebarWidth).Render(b.String())
}

// tabs lays the views out in one line, or only the current one when they
// do not fit.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 10)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = hintStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.current().Title)
	}
	return line
}

func (m ScoreboardModel) tableContent() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nScores last until the arcade is closed.")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user asked to quit the arcade.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }
