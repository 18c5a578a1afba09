package racer

import (
	"time"

	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// Snapshot is a read-only copy of the run for rendering and tests.
type Snapshot struct {
	Session    sim.Snapshot
	Player     sim.Body
	Entities   []sim.Entity
	Lanes      int
	Speed      float64
	Travelled  float64
	ShieldLeft time.Duration // Zero when no shield is active
	SlowLeft   time.Duration
	Shielded   bool
	Slowed     bool
}

// Snapshot copies the current run. Later ticks never change it.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	w := g.world
	timers := g.session.Context().Timers
	return Snapshot{
		Session:    g.session.Snapshot(),
		Player:     w.player,
		Entities:   append([]sim.Entity(nil), w.entities...),
		Lanes:      w.lanes.Lanes(),
		Speed:      w.speed,
		Travelled:  w.travelled,
		ShieldLeft: w.shield.Remaining(timers),
		SlowLeft:   w.slow.Remaining(timers),
		Shielded:   w.shield.Active(),
		Slowed:     w.slow.Active(),
	}
}
