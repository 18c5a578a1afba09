// Package tictactoe implements tic-tac-toe against the computer. Every won
// round scores a point; losing a round ends the run and draws start over.
package tictactoe

import (
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// ID is the registry identifier.
const ID = "tictactoe"

// Grid geometry in screen cells
const (
	squareW = 7
	squareH = 3
	gridW   = squareW*3 + 2
	gridH   = squareH*3 + 2
)

// match is the tic-tac-toe simulation variant. The computer's reply and the
// pause after a finished round run on world-time timers, so pausing the
// session also pauses the opponent.
type match struct {
	cfg        config.TicTacToeConfig
	difficulty config.Difficulty

	board     Board
	cursor    int
	turn      Mark
	result    Mark // Winner of the finished round, Empty for a draw
	roundOver bool
	cpuReady  bool // Think delay elapsed, reply on the next step
	nextRound bool // Round pause elapsed, clear on the next spawn pass
	lost      bool
}

func (m *match) Reset(*sim.Context) {
	m.clear()
}

func (m *match) clear() {
	m.board = Board{}
	m.cursor = 4
	m.turn = X
	m.result = Empty
	m.roundOver = false
	m.cpuReady = false
	m.nextRound = false
	m.lost = false
}

func (m *match) Step(ctx *sim.Context, _ float64) {
	in := ctx.Input
	switch {
	case in.Has(core.ActionUp) && m.cursor >= 3:
		m.cursor -= 3
	case in.Has(core.ActionDown) && m.cursor < 6:
		m.cursor += 3
	case in.Has(core.ActionLeft) && m.cursor%3 > 0:
		m.cursor--
	case in.Has(core.ActionRight) && m.cursor%3 < 2:
		m.cursor++
	}

	if m.roundOver {
		return
	}
	if m.turn == O && m.cpuReady {
		m.cpuReady = false
		if i := BestMove(ctx.RNG, m.board, m.difficulty, m.cfg.CPU.NormalRandom); i >= 0 {
			m.play(ctx, i, O)
		}
		return
	}
	if m.turn == X && (in.Has(core.ActionConfirm) || in.Has(core.ActionJump)) && m.board[m.cursor] == Empty {
		m.play(ctx, m.cursor, X)
	}
}

// play puts mark on square i and settles the round or hands over the turn.
func (m *match) play(ctx *sim.Context, i int, mark Mark) {
	m.board[i] = mark

	w := m.board.Winner()
	if w == Empty && !m.board.Full() {
		if mark == X {
			m.turn = O
			ctx.Timers.After(time.Duration(m.cfg.CPU.Think)*time.Millisecond, func() {
				m.cpuReady = true
			})
		} else {
			m.turn = X
		}
		return
	}

	m.roundOver = true
	m.result = w
	switch w {
	case X:
		ctx.Score.Add(1)
	case O:
		m.lost = true
		ctx.HitHazard(nil)
		return
	}
	ctx.Timers.After(time.Duration(m.cfg.RoundPause)*time.Millisecond, func() {
		m.nextRound = true
	})
}

// Moves are validated in Step.
func (m *match) CheckCollisions(*sim.Context) {}

// SpawnIfDue starts a fresh board once a won or drawn round has been shown.
func (m *match) SpawnIfDue(*sim.Context, time.Duration) {
	if m.nextRound {
		m.clear()
	}
}

func (m *match) IsTerminal(*sim.Context) bool {
	return m.lost
}

func (m *match) ScrollSpeed() float64 {
	return 0
}

// Game implements tic-tac-toe on top of a simulation session.
type Game struct {
	settings config.Settings
	cfg      config.TicTacToeConfig
	onExit   func()
	match    *match
	session  *sim.Session

	originX, originY int
}

// New creates a tic-tac-toe game for the given settings.
func New(s config.Settings, cfg config.TicTacToeConfig, onExit func()) *Game {
	return &Game{settings: s, cfg: cfg, onExit: onExit}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset centres the grid and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.originX = max((runtime.ScreenW-gridW)/2, 0)
	g.originY = max((runtime.ScreenH-gridH)/2, 2)

	if g.session == nil {
		g.match = &match{cfg: g.cfg, difficulty: g.settings.Difficulty}
		g.session = sim.NewSession(g.match, sim.Options{
			Seed:       runtime.Seed,
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

// Render draws the grid, the marks and the cursor.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	dst.Clear()

	x0, y0 := g.originX, g.originY
	for _, dx := range []int{squareW, squareW*2 + 1} {
		dst.DrawVLine(x0+dx, y0, gridH, '│', core.ColorFrame)
	}
	for _, dy := range []int{squareH, squareH*2 + 1} {
		dst.DrawHLine(x0, y0+dy, gridW, '─', core.ColorFrame)
		dst.SetColored(x0+squareW, y0+dy, '┼', core.ColorFrame)
		dst.SetColored(x0+squareW*2+1, y0+dy, '┼', core.ColorFrame)
	}

	m := g.match
	for i, mark := range m.board {
		cx, cy := g.squareCenter(i)
		switch mark {
		case X:
			dst.SetColored(cx, cy, 'X', core.ColorBrightMagenta)
		case O:
			dst.SetColored(cx, cy, 'O', core.ColorOrange)
		}
	}
	if !m.roundOver {
		cx, cy := g.squareCenter(m.cursor)
		dst.SetColored(cx-2, cy, '[', core.ColorBrightYellow)
		dst.SetColored(cx+2, cy, ']', core.ColorBrightYellow)
	}

	dst.DrawTextCentered(y0+gridH+1, g.caption())

	snap := g.session.Snapshot()
	hud.DrawStatus(dst, hud.Status{Player: g.settings.PlayerName, Snap: snap, Extra: " " + g.settings.Difficulty.String() + " "})
	hud.DrawOverlay(dst, snap.State)
}

func (g *Game) caption() string {
	m := g.match
	switch {
	case m.roundOver && m.result == X:
		return g.settings.PlayerName + " wins!"
	case m.roundOver && m.result == O:
		return "Computer wins!"
	case m.roundOver:
		return "It's a tie!"
	case m.turn == O:
		return "Computer is thinking..."
	default:
		return g.settings.PlayerName + "'s turn  |  Arrows move  |  Enter places"
	}
}

// squareCenter returns the screen cell in the middle of square i.
func (g *Game) squareCenter(i int) (int, int) {
	col, row := i%3, i/3
	return g.originX + col*(squareW+1) + squareW/2, g.originY + row*(squareH+1) + squareH/2
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
		Title:       "Tic-Tac-Toe",
		Description: "Three in a row against the computer.",
	}, func(s config.Settings, onExit func()) (registry.Game, error) {
		cfg, err := config.LoadTicTacToe(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(s, cfg, onExit), nil
	})
}
