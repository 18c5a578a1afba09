package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// settingsField is a focusable row of the settings form.
type settingsField int

const (
	fieldName settingsField = iota
	fieldDifficulty
	fieldMode
	fieldStart
)

var snakeModes = []config.SnakeMode{config.SnakeClassic, config.SnakeModern}

var (
	settingsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	focusedStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	blurredStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// SettingsModel is the form shown between the menu and a game: player name,
// difficulty and, for games that have them, the play mode.
type SettingsModel struct {
	info       registry.GameInfo
	name       textinput.Model
	difficulty int // Index into config.Difficulties
	mode       int // Index into snakeModes
	focus      settingsField
	base       config.Settings
	width      int
	height     int
	keyMapper  *KeyMapper
	start      bool
	back       bool
	quitting   bool
}

// NewSettingsModel creates the form for the given game, prefilled from s.
func NewSettingsModel(info registry.GameInfo, s config.Settings, width, height int) SettingsModel {
	s = s.Normalize()

	name := textinput.New()
	name.Placeholder = config.DefaultPlayerName
	name.CharLimit = config.MaxPlayerNameLen
	name.Width = config.MaxPlayerNameLen + 1
	name.Prompt = ""
	name.SetValue(s.PlayerName)
	name.Focus()

	m := SettingsModel{
		info:      info,
		name:      name,
		base:      s,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, d := range config.Difficulties {
		if d == s.Difficulty {
			m.difficulty = i
		}
	}
	for i, mode := range snakeModes {
		if mode == s.SnakeMode {
			m.mode = i
		}
	}
	return m
}

// Init starts the cursor blink of the name field.
func (m SettingsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.focus == fieldName {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.back = true
		return m, nil
	case "enter":
		m.start = true
		return m, nil
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	}

	// Letters belong to the name while it has focus
	if m.focus == fieldName {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.back = true
	case MenuActionUp:
		return m.moveFocus(-1)
	case MenuActionDown:
		return m.moveFocus(1)
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		if m.focus == fieldStart {
			m.start = true
		} else {
			m.cycle(1)
		}
	}
	return m, nil
}

// fields lists the rows shown for this game.
func (m SettingsModel) fields() []settingsField {
	if m.info.HasModes {
		return []settingsField{fieldName, fieldDifficulty, fieldMode, fieldStart}
	}
	return []settingsField{fieldName, fieldDifficulty, fieldStart}
}

func (m SettingsModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	fields := m.fields()
	i := 0
	for j, f := range fields {
		if f == m.focus {
			i = j
		}
	}
	i = (i + delta + len(fields)) % len(fields)
	m.focus = fields[i]

	if m.focus == fieldName {
		return m, m.name.Focus()
	}
	m.name.Blur()
	return m, nil
}

// cycle steps the focused selector.
func (m *SettingsModel) cycle(delta int) {
	switch m.focus {
	case fieldDifficulty:
		n := len(config.Difficulties)
		m.difficulty = (m.difficulty + delta + n) % n
	case fieldMode:
		n := len(snakeModes)
		m.mode = (m.mode + delta + n) % n
	}
}

// Settings returns the settings currently chosen in the form.
func (m SettingsModel) Settings() config.Settings {
	s := m.base
	s.PlayerName = m.name.Value()
	s.Difficulty = config.Difficulties[m.difficulty]
	if m.info.HasModes {
		s.SnakeMode = snakeModes[m.mode]
	}
	return s.Normalize()
}

// View renders the form.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(settingsTitleStyle.Render(strings.ToUpper(m.info.Title)), m.width))
	b.WriteString("\n")
	if m.info.Description != "" {
		b.WriteString(centerText(hintStyle.Render(m.info.Description), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, f := range m.fields() {
		b.WriteString(centerText(m.row(f), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Tab/Up/Down: Field  |  Left/Right: Change  |  Enter: Play  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m SettingsModel) row(f settingsField) string {
	style := blurredStyle
	cursor := "  "
	if f == m.focus {
		style = focusedStyle
		cursor = "> "
	}

	switch f {
	case fieldName:
		return style.Render(cursor+"Player     ") + m.name.View()
	case fieldDifficulty:
		return style.Render(fmt.Sprintf("%sDifficulty < %-6s >", cursor, config.Difficulties[m.difficulty]))
	case fieldMode:
		return style.Render(fmt.Sprintf("%sMode       < %-7s >", cursor, snakeModes[m.mode]))
	default:
		return style.Render(cursor + "[ Start ]")
	}
}

// Started reports whether the player confirmed the form.
func (m SettingsModel) Started() bool {
	return m.start
}

// WantsBack reports whether the player left the form for the menu.
func (m SettingsModel) WantsBack() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit the program.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// Info returns the game the form is for.
func (m SettingsModel) Info() registry.GameInfo {
	return m.info
}
