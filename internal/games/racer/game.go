// Package racer implements a lane racer. Traffic comes down weighted lanes at
// a speed that ramps with time; the player steers left and right to dodge it
// and collects shields, hearts and slow-downs.
package racer

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/games/hud"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// Visual characters for rendering
const (
	CarChar     = '█'
	TrafficChar = '▓'
	EdgeChar    = '┃'
	LaneChar    = '┆'
	ShieldChar  = '◎'
	HeartChar   = '♥'
	SlowChar    = '≈'
)

// ID is the registry identifier.
const ID = "racer"

// Game implements the lane racer on top of a simulation session.
type Game struct {
	settings config.Settings
	cfg      config.RacerConfig
	onExit   func()
	world    *world
	session  *sim.Session
	left     int // Screen column of the road's left edge
}

// New creates a racer for the given settings.
func New(s config.Settings, cfg config.RacerConfig, onExit func()) *Game {
	return &Game{settings: s, cfg: cfg, onExit: onExit}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Racer"
}

// Reset sizes the road to the screen and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	roadH := float64(runtime.ScreenH-1) * g.cfg.Cell.Height

	if g.session == nil {
		g.world = newWorld(g.cfg, g.settings.Difficulty, roadH)
		g.session = sim.NewSession(g.world, sim.Options{
			Seed:            runtime.Seed,
			Countdown:       g.cfg.Rules.Countdown,
			StartLives:      g.cfg.Rules.StartLives,
			MaxLives:        g.cfg.Rules.MaxLives,
			DistanceDivisor: g.cfg.Rules.DistanceDivisor,
			OnExit:          g.onExit,
		})
	} else {
		g.world.roadH = roadH
		g.session.Reset()
	}
	roadCols := int(g.world.roadW / g.cfg.Cell.Width)
	g.left = max((runtime.ScreenW-roadCols)/2, 1)
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

// Lanes returns the number of lanes on the road.
func (g *Game) Lanes() int {
	if g.world == nil {
		return g.cfg.Lanes.For(g.settings.Difficulty)
	}
	return g.world.lanes.Lanes()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	dst.Clear()
	snap := g.Snapshot()
	g.drawRoad(dst, snap)

	for _, e := range snap.Entities {
		g.drawBox(dst, e.Box, entityRune(e), e.Color)
	}
	car := core.ColorBrightYellow
	if snap.Shielded {
		car = core.ColorShield
	}
	g.drawBox(dst, snap.Player.Box(), CarChar, car)

	var extra []string
	if snap.Shielded {
		extra = append(extra, fmt.Sprintf("SHIELD %.1fs", snap.ShieldLeft.Seconds()))
	}
	if snap.Slowed {
		extra = append(extra, fmt.Sprintf("SLOW %.1fs", snap.SlowLeft.Seconds()))
	}
	extra = append(extra, fmt.Sprintf("%.0f px/s", snap.Speed))
	hud.DrawStatus(dst, hud.Status{Player: g.settings.PlayerName, Snap: snap.Session, Extra: " " + strings.Join(extra, "  ") + " "})
	hud.DrawOverlay(dst, snap.Session.State)
}

// drawRoad draws the edges and the scrolling lane markings.
func (g *Game) drawRoad(dst *core.Screen, snap Snapshot) {
	laneCols := int(g.cfg.Lanes.Width / g.cfg.Cell.Width)
	width := laneCols * snap.Lanes
	offset := int(snap.Travelled/g.cfg.Cell.Height) % 2

	for y := 1; y < dst.Height(); y++ {
		dst.SetColored(g.left-1, y, EdgeChar, core.ColorFrame)
		dst.SetColored(g.left+width, y, EdgeChar, core.ColorFrame)
		if (y+offset)%2 == 0 {
			continue
		}
		for lane := 1; lane < snap.Lanes; lane++ {
			dst.SetColored(g.left+lane*laneCols, y, LaneChar, core.ColorFrame)
		}
	}
}

func (g *Game) drawBox(dst *core.Screen, b core.RectF, r rune, c core.Color) {
	x0, x1 := hud.CellSpan(b.X, b.Right(), g.cfg.Cell.Width)
	y0, y1 := hud.CellSpan(b.Y, b.Bottom(), g.cfg.Cell.Height)
	for y := max(y0, 0); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(g.left+x, 1+y, r, c)
		}
	}
}

func entityRune(e sim.Entity) rune {
	if e.Kind == sim.KindHazard {
		return TrafficChar
	}
	switch e.Pickup {
	case sim.PickupHeart:
		return HeartChar
	case sim.PickupSlow:
		return SlowChar
	default:
		return ShieldChar
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
		Title:       "Lane Racer",
		Description: "Dodge traffic across the lanes as the road speeds up.",
	}, func(s config.Settings, onExit func()) (registry.Game, error) {
		cfg, err := config.LoadRacer(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(s, cfg, onExit), nil
	})
}
