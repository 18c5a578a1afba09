package racer

import (
	"math"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// kickDuration is how long a non-fatal hit pushes the car sideways.
const kickDuration = 0.2

var trafficColors = []core.Color{core.ColorRed, core.ColorBlue, core.ColorMagenta, core.ColorOrange, core.ColorWhite}

// world is the racer's simulation variant. x runs across the road from the
// left edge, y runs down from the top of the screen.
type world struct {
	cfg     config.RacerConfig
	profile config.DifficultyProfile
	lanes   *sim.LanePicker
	ramp    *config.SpeedRamp
	roadW   float64
	roadH   float64

	player    sim.Body
	entities  []sim.Entity
	traffic   *sim.IntervalSpawner
	pickups   *sim.PickupSpawner
	shield    sim.Effect
	slow      sim.Effect
	speed     float64 // Current scroll speed
	travelled float64 // Road distance, drives the lane markings
	kick      float64 // Sideways velocity after a hit
	kickLeft  float64 // Seconds of kick remaining
}

func newWorld(cfg config.RacerConfig, d config.Difficulty, roadH float64) *world {
	n := cfg.Lanes.For(d)
	profile := cfg.Profiles.For(d)
	w := &world{
		cfg:     cfg,
		profile: profile,
		lanes:   sim.NewLanePicker(cfg.Lanes.Weights[n], cfg.Lanes.Width, cfg.Lanes.Jitter),
		ramp:    config.NewSpeedRamp(cfg.Ramp),
		roadW:   float64(n) * cfg.Lanes.Width,
		roadH:   roadH,
		traffic: sim.NewIntervalSpawner(profile.SpawnIntervalMin, profile.SpawnIntervalMax),
		pickups: sim.NewPickupSpawner(cfg.Pickups.PickupConfig),
	}
	return w
}

func (w *world) Reset(ctx *sim.Context) {
	mid := w.lanes.Lanes() / 2
	w.player = sim.Body{
		X:        w.lanes.LaneLeft(mid) + (w.cfg.Lanes.Width-w.cfg.Player.Width)/2,
		Y:        w.roadH - w.cfg.Player.BottomMargin,
		W:        w.cfg.Player.Width,
		H:        w.cfg.Player.Height,
		Grounded: true,
	}
	w.entities = w.entities[:0]
	w.shield.Clear()
	w.slow.Clear()
	w.speed = w.profile.ScrollSpeed
	w.travelled = 0
	w.kick, w.kickLeft = 0, 0
	w.traffic.Schedule(ctx.Now, ctx.RNG)
	w.pickups.Schedule(ctx.Now, ctx.RNG)
}

func (w *world) Step(ctx *sim.Context, dt float64) {
	w.speed = w.ramp.Speed(w.profile.ScrollSpeed, ctx.Elapsed())
	if w.slow.Active() {
		w.speed *= w.cfg.Pickups.SlowFactor
	}

	dir := 0.0
	if ctx.Input.IsHeld(core.ActionLeft) {
		dir--
	}
	if ctx.Input.IsHeld(core.ActionRight) {
		dir++
	}
	w.player.MoveHorizontal(dir, w.cfg.Player.Speed, dt, 0, w.roadW)

	if w.kickLeft > 0 {
		step := math.Min(dt, w.kickLeft)
		w.player.MoveHorizontal(math.Copysign(1, w.kick), math.Abs(w.kick), step, 0, w.roadW)
		w.kickLeft -= step
	}

	dy := w.speed * dt
	w.travelled += dy
	sim.ScrollDown(w.entities, dy)
	w.entities = sim.PruneBelow(w.entities, w.roadH)
}

func (w *world) CheckCollisions(ctx *sim.Context) {
	sim.Resolve(w.player.Box(), w.entities, w.cfg.Rules.Tolerance, func(e *sim.Entity) bool {
		shielded := w.shield.Active()
		if ctx.HitHazard(&w.shield) {
			return true
		}
		if !shielded {
			// Push away from the car that was hit
			w.kick = w.cfg.Rules.KnockbackVelocity
			if e.Box.CenterX() > w.player.Box().CenterX() {
				w.kick = -w.kick
			}
			w.kickLeft = kickDuration
		}
		return false
	}, func(e *sim.Entity) {
		switch e.Pickup {
		case sim.PickupShield:
			w.shield.Activate(ctx.Timers, seconds(w.cfg.Pickups.ShieldSeconds))
		case sim.PickupHeart:
			ctx.Score.GainLife()
		case sim.PickupSlow:
			w.slow.Activate(ctx.Timers, seconds(w.cfg.Pickups.SlowSeconds))
		}
	})
}

func (w *world) SpawnIfDue(ctx *sim.Context, now time.Duration) {
	if w.traffic.Due(now) {
		o := w.cfg.Obstacles
		lane := w.lanes.Lane(ctx.RNG)
		w.entities = append(w.entities, sim.Entity{
			ID:    ctx.NewID(),
			Kind:  sim.KindHazard,
			Lane:  lane,
			Box:   core.NewRectF(w.lanes.Place(ctx.RNG, lane, o.Width), -o.Height, o.Width, o.Height),
			Color: trafficColors[ctx.RNG.Intn(len(trafficColors))],
		})
		w.traffic.Schedule(now, ctx.RNG)
	}

	if w.pickups.Ready(now, ctx.RNG, w.pickupGap()) {
		size := w.cfg.Pickups.Size
		lane := w.lanes.Lane(ctx.RNG)
		kind := []sim.PickupKind{sim.PickupShield, sim.PickupHeart, sim.PickupSlow}[ctx.RNG.Intn(3)]
		w.entities = append(w.entities, sim.Entity{
			ID:     ctx.NewID(),
			Kind:   sim.KindPickup,
			Pickup: kind,
			Lane:   lane,
			Box:    core.NewRectF(w.lanes.Place(ctx.RNG, lane, size), -size, size, size),
			Color:  pickupColor(kind),
		})
	}
}

// pickupGap is how far the newest live pickup has travelled from the spawn
// line, or -1 when there is none.
func (w *world) pickupGap() float64 {
	for i := len(w.entities) - 1; i >= 0; i-- {
		if e := w.entities[i]; e.Kind == sim.KindPickup && !e.Consumed {
			return e.Box.Bottom()
		}
	}
	return -1
}

func (w *world) IsTerminal(ctx *sim.Context) bool {
	return ctx.Score.Lives() == 0
}

func (w *world) ScrollSpeed() float64 {
	return w.speed
}

func pickupColor(k sim.PickupKind) core.Color {
	switch k {
	case sim.PickupHeart:
		return core.ColorBrightRed
	case sim.PickupSlow:
		return core.ColorReward
	default:
		return core.ColorBrightCyan
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
