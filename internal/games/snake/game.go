// Package snake implements the grid snake game in classic (walls kill) and
// modern (walls wrap, speed ramps with score) modes.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// Visual characters for rendering
const (
	HeadChar  = '●'
	BodyChar  = '■'
	FoodChar  = '◆'
	BonusChar = '★'
)

// ID is the registry identifier.
const ID = "snake"

// cellW is the number of screen columns per board cell, so cells look square.
const cellW = 2

// Game implements Snake on top of a simulation session.
type Game struct {
	settings config.Settings
	cfg      config.SnakeConfig
	onExit   func()
	board    *board
	session  *sim.Session

	originX, originY int // Screen position of board cell (0, 0)
}

// New creates a snake game for the given settings.
func New(s config.Settings, cfg config.SnakeConfig, onExit func()) *Game {
	return &Game{settings: s, cfg: cfg, onExit: onExit}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name, including the mode.
func (g *Game) Title() string {
	if g.settings.SnakeMode == config.SnakeModern {
		return "Snake (Modern)"
	}
	return "Snake"
}

// Reset centres the board on the screen and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.originX = max((runtime.ScreenW-g.cfg.Board.Cols*cellW)/2, 1)
	g.originY = 2

	if g.session == nil {
		g.board = newBoard(g.cfg, g.settings.SnakeMode, g.settings.Difficulty)
		g.session = sim.NewSession(g.board, sim.Options{
			Seed:       runtime.Seed,
			Countdown:  g.cfg.Countdown,
			StartLives: 1,
			MaxLives:   1,
			OnExit:     g.onExit,
		})
		return
	}
	g.session.Reset()
}

// Step advances the run to now.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	return core.StepResult{State: g.session.Tick(now, in).GameState()}
}

// Session exposes the simulation session.
func (g *Game) Session() *sim.Session {
	return g.session
}

// Render draws the board, the snake and the HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	dst.Clear()

	dst.DrawBox(core.NewRect(g.originX-1, g.originY-1, g.cfg.Board.Cols*cellW+2, g.cfg.Board.Rows+2))

	b := g.board
	if b.food != noPoint {
		g.drawCell(dst, b.food, FoodChar, core.ColorBrightRed)
	}
	if b.bonus.Active() {
		g.drawCell(dst, b.bonusAt, BonusChar, core.ColorReward)
	}
	for i := len(b.snake) - 1; i >= 0; i-- {
		if i == 0 {
			g.drawCell(dst, b.snake[i], HeadChar, core.ColorBrightGreen)
		} else {
			g.drawCell(dst, b.snake[i], BodyChar, core.ColorGreen)
		}
	}

	snap := g.session.Snapshot()
	extra := string(g.settings.SnakeMode)
	if b.bonus.Active() {
		extra = fmt.Sprintf(" BONUS %.1fs  %s", b.bonus.Remaining(g.session.Context().Timers).Seconds(), extra)
	}
	hud.DrawStatus(dst, hud.Status{Player: g.settings.PlayerName, Snap: snap, Extra: extra + " "})
	hud.DrawOverlay(dst, snap.State)
}

func (g *Game) drawCell(dst *core.Screen, p Point, r rune, c core.Color) {
	x := g.originX + p.X*cellW
	y := g.originY + p.Y
	for i := range cellW {
		dst.SetColored(x+i, y, r, c)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.Snapshot().GameState()
}

// Suspend pauses a running game after focus loss.
func (g *Game) Suspend() {
	if g.session != nil {
		g.session.Suspend()
	}
}

// Close disposes the session.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Dispose()
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Snake",
		Description: "Eat, grow, and do not bite yourself.",
		HasModes:    true,
	}, func(s config.Settings, onExit func()) (registry.Game, error) {
		cfg, err := config.LoadSnake(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(s, cfg, onExit), nil
	})
}
