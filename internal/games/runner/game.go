// Package runner implements an endless runner. The player jumps over
// randomly sized obstacles while the world scrolls toward them, and collects
// shields and hearts along the way.
package runner

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
	RunnerBody = '█'
	RunnerHead = '◆'
	RunnerLeg1 = '╱'
	RunnerLeg2 = '╲'
	HazardChar = '▓'
	GroundChar = '═'
	ShieldChar = '◎'
	HeartChar  = '♥'
)

// ID is the registry identifier.
const ID = "runner"

// Game implements the endless runner on top of a simulation session.
type Game struct {
	settings config.Settings
	cfg      config.RunnerConfig
	onExit   func()
	runtime  core.RuntimeConfig
	world    *world
	session  *sim.Session
	groundY  int // Screen row of the ground line
}

// New creates a runner for the given settings.
func New(s config.Settings, cfg config.RunnerConfig, onExit func()) *Game {
	return &Game{settings: s, cfg: cfg, onExit: onExit}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Runner"
}

// Reset sizes the world to the screen and starts a new run. The session high
// score is kept across resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.groundY = runtime.ScreenH - 2
	viewW := float64(runtime.ScreenW) * g.cfg.Cell.Width

	if g.session == nil {
		g.world = newWorld(g.cfg, g.settings.Difficulty, viewW)
		g.session = sim.NewSession(g.world, sim.Options{
			Seed:            runtime.Seed,
			Countdown:       g.cfg.Rules.Countdown,
			StartLives:      g.cfg.Rules.StartLives,
			MaxLives:        g.cfg.Rules.MaxLives,
			DistanceDivisor: g.cfg.Rules.DistanceDivisor,
			OnExit:          g.onExit,
		})
		return
	}
	g.world.viewW = viewW
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

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	dst.Clear()

	// Draw ground
	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar, core.ColorFrame)

	snap := g.Snapshot()
	for _, e := range snap.Entities {
		g.drawEntity(dst, e)
	}
	g.drawRunner(dst, snap)

	extra := ""
	if snap.Shielded {
		extra = fmt.Sprintf(" SHIELD %.1fs ", snap.ShieldLeft.Seconds())
	}
	hud.DrawStatus(dst, hud.Status{Player: g.settings.PlayerName, Snap: snap.Session, Extra: extra})
	hud.DrawOverlay(dst, snap.Session.State)
}

// cellRect maps a world box onto screen cells.
func (g *Game) cellRect(b core.RectF) (x0, x1, y0, y1 int) {
	x0, x1 = hud.CellSpan(b.X, b.Right(), g.cfg.Cell.Width)
	y0, y1 = hud.CellSpan(b.Y, b.Bottom(), g.cfg.Cell.Height)
	return x0, x1, g.groundY + y0, g.groundY + y1
}

func (g *Game) drawEntity(dst *core.Screen, e sim.Entity) {
	x0, x1, y0, y1 := g.cellRect(e.Box)
	r := HazardChar
	if e.Kind == sim.KindPickup {
		r = ShieldChar
		if e.Pickup == sim.PickupHeart {
			r = HeartChar
		}
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, r, e.Color)
		}
	}
}

// drawRunner renders the player: head on the top row, legs on the bottom row
// animated while grounded.
func (g *Game) drawRunner(dst *core.Screen, snap Snapshot) {
	p := snap.Player
	x0, x1, y0, y1 := g.cellRect(p.Box())
	color := core.ColorBrightWhite
	if snap.Shielded {
		color = core.ColorShield
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, RunnerBody, color)
		}
	}
	dst.SetColored(x1, y0, RunnerHead, color)

	if y1 == y0 {
		return
	}
	// Legs (animated when grounded)
	legA, legB := RunnerLeg1, RunnerLeg2
	if p.Grounded && int(snap.Stride/g.cfg.Cell.Width)%2 == 1 {
		legA, legB = RunnerLeg2, RunnerLeg1
	}
	dst.SetColored(x0, y1, legA, color)
	dst.SetColored(x1, y1, legB, color)
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
		Title:       "Endless Runner",
		Description: "Jump over obstacles, grab shields and hearts.",
	}, func(s config.Settings, onExit func()) (registry.Game, error) {
		cfg, err := config.LoadRunner(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(s, cfg, onExit), nil
	})
}
