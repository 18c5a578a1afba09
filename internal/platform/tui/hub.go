package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

// screen identifies the active view of the hub.
type screen int

const (
	screenMenu screen = iota
	screenSettings
	screenGame
	screenScoreboard
)

func (s screen) String() string {
	switch s {
	case screenMenu:
		return "menu"
	case screenSettings:
		return "settings"
	case screenGame:
		return "game"
	case screenScoreboard:
		return "scoreboard"
	default:
		return "unknown"
	}
}

// HubModel manages the full arcade flow:
// menu -> settings -> game -> settings, with the scoreboard off the menu.
type HubModel struct {
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	settings config.Settings // Last settings confirmed, prefills the form

	active     screen
	menu       MenuModel
	form       SettingsModel
	game       GameModel
	scoreboard ScoreboardModel
	err        error // Last game creation failure, shown on the form
	quitting   bool
}

// HubOptions configures a hub.
type HubOptions struct {
	Store    *storage.Store
	Logger   *log.Logger
	Config   core.RuntimeConfig
	Settings config.Settings

	// GameID skips the menu and opens the settings form of this game.
	GameID string
	// Direct also skips the form and starts GameID right away.
	Direct bool
}

// NewHubModel creates a hub showing the game menu.
func NewHubModel(opts HubOptions) HubModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	settings := opts.Settings
	if settings == (config.Settings{}) {
		settings = config.DefaultSettings()
	}

	m := HubModel{
		store:    opts.Store,
		logger:   logger,
		config:   opts.Config,
		settings: settings.Normalize(),
		menu:     NewMenuModel(opts.Store, logger, opts.Config.ScreenW, opts.Config.ScreenH),
	}

	if info, ok := registry.Info(opts.GameID); ok {
		m.active = screenSettings
		m.form = NewSettingsModel(info, m.settings, m.config.ScreenW, m.config.ScreenH)
		if opts.Direct {
			m, _ = m.startGame(info.ID)
		}
	}
	return m
}

// Init starts whatever the first screen needs.
func (m HubModel) Init() tea.Cmd {
	switch m.active {
	case screenSettings:
		return m.form.Init()
	case screenGame:
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the hub.
func (m HubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenSettings:
		return m.updateSettings(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m HubModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.logger, m.config.ScreenW, m.config.ScreenH)
		return m.show(screenScoreboard, m.scoreboard.Init())

	case m.menu.Chosen() != nil:
		info := m.menu.Chosen().Info
		m.err = nil
		m.form = NewSettingsModel(info, m.settings, m.config.ScreenW, m.config.ScreenH)
		return m.show(screenSettings, m.form.Init())
	}

	return m, cmd
}

// updateSettings handles updates when the settings form is shown.
func (m HubModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.form.Update(msg)
	m.form = next.(SettingsModel)

	switch {
	case m.form.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.form.WantsBack():
		m.menu = NewMenuModel(m.store, m.logger, m.config.ScreenW, m.config.ScreenH)
		return m.show(screenMenu, m.menu.Init())

	case m.form.Started():
		m.settings = m.form.Settings()
		return m.startGame(m.form.Info().ID)
	}

	return m, cmd
}

// startGame creates the game and switches to it. A creation failure (for
// example a broken config override) keeps the form open with the error.
func (m HubModel) startGame(id string) (HubModel, tea.Cmd) {
	game, err := NewGameModel(id, m.settings, m.store, m.logger, m.config)
	if err != nil {
		m.logger.Error("cannot start game", "game", id, "err", err)
		m.err = err
		info, _ := registry.Info(id)
		m.form = NewSettingsModel(info, m.settings, m.config.ScreenW, m.config.ScreenH)
		m.active = screenSettings
		return m, m.form.Init()
	}

	m.err = nil
	m.game = game
	next, cmd := m.show(screenGame, m.game.Init())
	return next.(HubModel), cmd
}

// updateGame handles updates when in game mode.
func (m HubModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.Leaving():
		m.config.ScreenW, m.config.ScreenH = m.game.Config().ScreenW, m.game.Config().ScreenH
		m.form = NewSettingsModel(m.form.Info(), m.settings, m.config.ScreenW, m.config.ScreenH)
		return m.show(screenSettings, m.form.Init())
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m HubModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scoreboard.IsGoingBack():
		m.menu = NewMenuModel(m.store, m.logger, m.config.ScreenW, m.config.ScreenH)
		return m.show(screenMenu, m.menu.Init())
	}

	return m, cmd
}

// show switches the active screen.
func (m HubModel) show(s screen, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.logger.Debug("screen", "from", m.active, "to", s)
	m.active = s
	return m, cmd
}

// View renders the current view.
func (m HubModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenSettings:
		view := m.form.View()
		if m.err != nil {
			view += "\n" + centerText(errorStyle.Render(m.err.Error()), m.config.ScreenW) + "\n"
		}
		return view
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// Run starts the Bubble Tea program for the hub.
func Run(opts HubOptions, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Suspend games on focus loss
	}, programOpts...)

	p := tea.NewProgram(NewHubModel(opts), programOpts...)
	_, err := p.Run()
	return err
}
