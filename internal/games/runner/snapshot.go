package runner

import (
	"time"

	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// Snapshot is a read-only copy of the run for rendering and tests.
type Snapshot struct {
	Session    sim.Snapshot
	Player     sim.Body
	Entities   []sim.Entity
	Shielded   bool
	ShieldLeft time.Duration
	Stride     float64
}

// Snapshot copies the current run. Later ticks never change it.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	w := g.world
	return Snapshot{
		Session:    g.session.Snapshot(),
		Player:     w.player,
		Entities:   append([]sim.Entity(nil), w.entities...),
		Shielded:   w.shield.Active(),
		ShieldLeft: w.shield.Remaining(g.session.Context().Timers),
		Stride:     w.stride,
	}
}
