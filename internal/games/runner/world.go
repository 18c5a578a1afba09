package runner

import (
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// hazardColors cycles obstacle colors.
var hazardColors = []core.Color{core.ColorGreen, core.ColorBrightGreen, core.ColorYellow, core.ColorOrange}

// world is the runner's simulation variant. All distances are pixels with
// y = 0 on the ground line and negative values above it.
type world struct {
	cfg     config.RunnerConfig
	profile config.DifficultyProfile
	viewW   float64 // Width of the visible world

	player   sim.Body
	entities []sim.Entity
	hazards  *sim.HazardSpawner
	pickups  *sim.PickupSpawner
	shield   sim.Effect
	stride   float64 // Distance run, drives the leg animation
	hits     int
}

func newWorld(cfg config.RunnerConfig, d config.Difficulty, viewW float64) *world {
	profile := cfg.Profiles.For(d)
	return &world{
		cfg:     cfg,
		profile: profile,
		viewW:   viewW,
		hazards: sim.NewHazardSpawner(profile, d.GapFactor(), cfg.Hazards.WidthCompensation),
		pickups: sim.NewPickupSpawner(cfg.Pickups),
	}
}

func (w *world) Reset(ctx *sim.Context) {
	w.player = sim.Body{
		X:        w.cfg.Player.X,
		W:        w.cfg.Player.Width,
		H:        w.cfg.Player.Height,
		Grounded: true,
	}
	w.entities = w.entities[:0]
	w.shield.Clear()
	w.stride = 0
	w.hits = 0
	w.hazards.Schedule(ctx.Now, ctx.RNG, 0)
	w.pickups.Schedule(ctx.Now, ctx.RNG)
}

func (w *world) Step(ctx *sim.Context, dt float64) {
	// Handle jump input (only when grounded)
	if ctx.Input.Has(core.ActionJump) || ctx.Input.Has(core.ActionUp) {
		w.player.Jump(w.profile.JumpVelocity)
	}

	w.player.Integrate(w.profile.Gravity, dt)

	dx := w.ScrollSpeed() * dt
	w.stride += dx
	sim.ScrollLeft(w.entities, dx)
	w.entities = sim.PruneLeft(w.entities)
}

func (w *world) CheckCollisions(ctx *sim.Context) {
	sim.Resolve(w.player.Box(), w.entities, w.cfg.Rules.Tolerance, func(*sim.Entity) bool {
		w.hits++
		shielded := w.shield.Active()
		if ctx.HitHazard(&w.shield) {
			return true
		}
		if !shielded {
			w.player.Knockback(w.cfg.Rules.KnockbackVelocity)
		}
		return false
	}, func(e *sim.Entity) {
		switch e.Pickup {
		case sim.PickupShield:
			w.shield.Activate(ctx.Timers, seconds(w.cfg.Pickups.ShieldSeconds))
		case sim.PickupHeart:
			ctx.Score.GainLife()
		}
	})
}

func (w *world) SpawnIfDue(ctx *sim.Context, now time.Duration) {
	if w.hazards.Due(now) {
		h := w.cfg.Hazards
		width := sim.Uniform(ctx.RNG, h.MinWidth, h.MaxWidth)
		height := sim.Uniform(ctx.RNG, h.MinHeight, h.MaxHeight)
		w.entities = append(w.entities, sim.Entity{
			ID:    ctx.NewID(),
			Kind:  sim.KindHazard,
			Box:   core.NewRectF(w.viewW, -height, width, height),
			Color: hazardColors[ctx.RNG.Intn(len(hazardColors))],
		})
		w.hazards.Schedule(now, ctx.RNG, width)
	}

	if w.pickups.Ready(now, ctx.RNG, w.pickupGap()) {
		size := w.cfg.Pickups.Size
		kind := sim.PickupShield
		color := core.ColorBrightCyan
		if ctx.RNG.Intn(2) == 0 {
			kind = sim.PickupHeart
			color = core.ColorBrightRed
		}
		y := -size
		if ctx.RNG.Intn(2) == 0 {
			y -= w.cfg.Hazards.AirPickupHeight
		}
		w.entities = append(w.entities, sim.Entity{
			ID:     ctx.NewID(),
			Kind:   sim.KindPickup,
			Pickup: kind,
			Box:    core.NewRectF(w.viewW, y, size, size),
			Color:  color,
		})
	}
}

// pickupGap is the distance from the spawn edge to the newest live pickup,
// or -1 when there is none.
func (w *world) pickupGap() float64 {
	for i := len(w.entities) - 1; i >= 0; i-- {
		if e := w.entities[i]; e.Kind == sim.KindPickup && !e.Consumed {
			return w.viewW - e.Box.Right()
		}
	}
	return -1
}

func (w *world) IsTerminal(ctx *sim.Context) bool {
	return ctx.Score.Lives() == 0
}

func (w *world) ScrollSpeed() float64 {
	return w.profile.ScrollSpeed
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
