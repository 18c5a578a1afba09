package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

const menuControls = "Up/Down: Navigate  |  1-9/Enter: Play  |  Tab: Scores  |  Q: Quit"

// MenuItem is one registered game with its results in this session.
type MenuItem struct {
	Info registry.GameInfo
	Best int
	Runs int
}

// MenuModel picks a game.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width, height  int
	keys           *KeyMapper
	chosen         *MenuItem
	quitting       bool
	openScoreboard bool
}

// NewMenuModel lists every registered game. Session results come from
// store when it is not nil; a failed read is logged and the menu shows none.
func NewMenuModel(store *storage.Store, logger *log.Logger, width, height int) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		var err error
		if stats, err = store.AllGamesStats(); err != nil && logger != nil {
			logger.Warn("cannot read session results", "err", err)
		}
	}

	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i].Info = g
		if st, ok := stats[g.ID]; ok {
			items[i].Best, items[i].Runs = st.HighScore, st.GamesCount
		}
	}
	return MenuModel{items: items, width: width, height: height, keys: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if n, ok := digit(msg); ok {
			if n <= len(m.items) {
				m.cursor = n - 1
				m.choose()
			}
			return m, nil
		}
		return m.handleAction(m.keys.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

// digit reads the 1-9 shortcuts.
func digit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func (m MenuModel) handleAction(a MenuAction) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch a {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		m.choose()
	case MenuActionScoreboard:
		m.openScoreboard = true
	}
	return m, nil
}

func (m *MenuModel) choose() {
	if len(m.items) == 0 {
		return
	}
	item := m.items[m.cursor]
	m.chosen = &item
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  A R C A D E  "), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(hintStyle.Render("No games installed"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")
	for i, item := range m.items {
		line := fmt.Sprintf("  %d %-16s", i+1, item.Info.Title)
		if item.Runs > 0 {
			line += fmt.Sprintf(" best %d (%d %s)", item.Best, item.Runs, plural(item.Runs, "run"))
		}
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render(m.items[m.cursor].Info.Description), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuControls, m.width))
	b.WriteString("\n")
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Chosen returns the picked game, or nil while the menu is still open.
func (m MenuModel) Chosen() *MenuItem { return m.chosen }

func (m MenuModel) IsQuitting() bool { return m.quitting }

func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// centerText pads text to the middle of width, measuring styled text by its
// printed cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
