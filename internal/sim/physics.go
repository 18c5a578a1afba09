package sim

import "github.com/vovakirdan/arcade-hub/internal/core"

// Body is the player's physical state. Y is the bottom edge: 0 is the ground,
// negative is airborne.
type Body struct {
	X, Y     float64
	VY       float64
	W, H     float64
	Grounded bool
}

// Integrate applies gravity for dt seconds and clamps the body to the ground.
func (b *Body) Integrate(gravity, dt float64) {
	b.VY += gravity * dt
	b.Y += b.VY * dt
	if b.Y >= 0 {
		b.Y = 0
		b.VY = 0
		b.Grounded = true
		return
	}
	b.Grounded = false
}

// Jump launches the body if it is grounded and reports whether it did.
func (b *Body) Jump(velocity float64) bool {
	if !b.Grounded {
		return false
	}
	b.VY = -velocity
	b.Grounded = false
	return true
}

// Knockback gives the body a small upward hop.
func (b *Body) Knockback(velocity float64) {
	if velocity <= 0 {
		return
	}
	b.VY = -velocity
	b.Grounded = false
}

// MoveHorizontal moves the body by dir*speed*dt, keeping it inside
// [minX, maxX-W].
func (b *Body) MoveHorizontal(dir, speed, dt, minX, maxX float64) {
	b.X += dir * speed * dt
	b.ClampX(minX, maxX)
}

// ClampX keeps the body inside [minX, maxX-W].
func (b *Body) ClampX(minX, maxX float64) {
	b.X = core.ClampF(b.X, minX, max(minX, maxX-b.W))
}

// Box returns the body's hitbox.
func (b Body) Box() core.RectF {
	return core.NewRectF(b.X, b.Y-b.H, b.W, b.H)
}

// ScrollLeft moves every entity dx toward the player.
func ScrollLeft(entities []Entity, dx float64) {
	for i := range entities {
		entities[i].Box.X -= dx
	}
}

// ScrollDown moves every entity dy down the road.
func ScrollDown(entities []Entity, dy float64) {
	for i := range entities {
		entities[i].Box.Y += dy
	}
}

// PruneLeft drops consumed entities and those fully past the left edge.
func PruneLeft(entities []Entity) []Entity {
	kept := entities[:0]
	for _, e := range entities {
		if !e.Consumed && e.Box.Right() >= 0 {
			kept = append(kept, e)
		}
	}
	return kept
}

// PruneBelow drops consumed entities and those fully below bottom.
func PruneBelow(entities []Entity, bottom float64) []Entity {
	kept := entities[:0]
	for _, e := range entities {
		if !e.Consumed && e.Box.Y <= bottom {
			kept = append(kept, e)
		}
	}
	return kept
}
