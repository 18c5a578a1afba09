package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/sim"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

// sessionGame is implemented by games built on a simulation session.
type sessionGame interface {
	Session() *sim.Session
}

// GameModel is the Bubble Tea model for a single running game.
// It forwards ticks and mapped input to the game and records the final
// score of every finished run in the session store.
type GameModel struct {
	game        registry.Game
	settings    config.Settings
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	clock       core.Clock
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	held        *core.HeldKeys
	inputFrame  core.InputFrame
	gameState   core.GameState
	loop        uint64
	exited      *bool // Set by the game's exit hook
	quitting    bool
	leaving     bool
	scoreSaved  bool // Whether score has been saved for current game over
	layoutStale bool // Resized since the run ended
}

// NewGameModel creates the game registered as id and starts its first run.
func NewGameModel(id string, s config.Settings, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (GameModel, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	exited := new(bool)
	game, err := registry.Create(id, s, func() { *exited = true })
	if err != nil {
		return GameModel{}, err
	}
	game.Reset(cfg)

	m := GameModel{
		game:       game,
		settings:   s.Normalize(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		clock:      core.SystemClock{},
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       core.NewHeldKeys(core.DefaultHoldWindow),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
		exited:     exited,
	}
	m.gameState = game.State()
	if sg, ok := game.(sessionGame); ok && sg.Session() != nil {
		sg.Session().OnTransition(func(from, to sim.State) {
			logger.Debug("run state", "game", id, "from", from, "to", to)
		})
	}
	logger.Info("game started", "game", id, "player", m.settings.PlayerName,
		"difficulty", m.settings.Difficulty, "seed", cfg.Seed)
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.game.Suspend()
		m.held.Reset()
		m.logger.Debug("focus lost", "game", m.game.ID())
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop || m.leaving {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		// Back leaves a finished or paused run; a running one is paused first.
		if m.gameState.GameOver || m.gameState.Paused {
			return m.leave()
		}
		m.inputFrame.Set(core.ActionPause)
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		if m.layoutStale {
			m.layoutStale = false
			m.game.Reset(m.config)
			m.gameState = m.game.State()
			m.scoreSaved = false
			m.logger.Info("game restarted", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH)
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	if Holdable(action) {
		m.held.Press(action, m.clock.Now())
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The layout depends on the screen size, so a live run starts over. A
	// finished run keeps its result and is laid out again on restart.
	if m.gameState.GameOver {
		m.layoutStale = true
		return m, nil
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.held.Fill(&m.inputFrame, now)

	prev := m.gameState
	result := m.game.Step(now, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if prev.GameOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.logger.Info("game restarted", "game", m.game.ID())
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if *m.exited {
		return m.leave()
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScore records the finished run. Failures are logged, the game goes on.
func (m GameModel) saveScore() {
	id, player, score := m.game.ID(), m.settings.PlayerName, m.gameState.Score
	m.logger.Info("game over", "game", id, "player", player, "score", score)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(id, player, score); err != nil {
		m.logger.Error("cannot save score", "game", id, "err", err)
		return
	}
	m.logger.Debug("score saved", "game", id, "player", player, "score", score)
}

// leave closes the game and hands control back to the settings screen.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.leaving = true
	m.held.Reset()
	m.game.Close()
	m.logger.Info("game left", "game", m.game.ID())
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.leaving {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Leaving reports whether the player left the game.
func (m GameModel) Leaving() bool {
	return m.leaving
}

// IsQuitting reports whether the player asked to quit the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Settings returns the normalized settings the game was created with.
func (m GameModel) Settings() config.Settings {
	return m.settings
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}
