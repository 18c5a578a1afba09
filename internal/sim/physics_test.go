package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

func TestBodyNeverBelowGround(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Body{W: 24, H: 32, Grounded: true}

	for i := 0; i < 5000; i++ {
		if rng.Intn(10) == 0 {
			b.Jump(300 + rng.Float64()*500)
		}
		if rng.Intn(50) == 0 {
			b.Knockback(rng.Float64() * 300)
		}
		b.Integrate(1000+rng.Float64()*1000, rng.Float64()*0.1)
		if b.Y > 0 {
			t.Fatalf("step %d: Y = %v, below ground", i, b.Y)
		}
		if b.Grounded && (b.Y != 0 || b.VY != 0) {
			t.Fatalf("step %d: grounded with Y=%v VY=%v", i, b.Y, b.VY)
		}
	}
}

func TestBodyJumpOnlyWhenGrounded(t *testing.T) {
	b := Body{Grounded: true}
	if !b.Jump(650) {
		t.Fatal("grounded jump refused")
	}
	if b.VY != -650 || b.Grounded {
		t.Errorf("after jump VY = %v grounded = %v", b.VY, b.Grounded)
	}
	b.Integrate(1700, 0.016)
	if b.Jump(650) {
		t.Error("airborne jump accepted")
	}
}

func TestBodyJumpArc(t *testing.T) {
	b := Body{Grounded: true}
	b.Jump(620)
	airtime := 0.0
	for !b.Grounded || airtime == 0 {
		b.Integrate(1550, 0.001)
		airtime += 0.001
		if airtime > 2 {
			t.Fatal("body never landed")
		}
	}
	if airtime < 0.79 || airtime > 0.81 {
		t.Errorf("airtime = %.3f, want ~0.8", airtime)
	}
}

func TestBodyMoveHorizontalClamps(t *testing.T) {
	b := Body{X: 10, W: 20}
	b.MoveHorizontal(-1, 500, 1, 0, 100)
	if b.X != 0 {
		t.Errorf("X = %v, want 0", b.X)
	}
	b.MoveHorizontal(1, 500, 1, 0, 100)
	if b.X != 80 {
		t.Errorf("X = %v, want 80", b.X)
	}
}

func TestScrollAndPrune(t *testing.T) {
	entities := []Entity{
		{Box: core.NewRectF(5, 0, 10, 10)},
		{Box: core.NewRectF(50, 0, 10, 10)},
		{Box: core.NewRectF(80, 0, 10, 10), Consumed: true},
	}
	ScrollLeft(entities, 20)
	if entities[1].Box.X != 30 {
		t.Errorf("X = %v, want 30", entities[1].Box.X)
	}
	entities = PruneLeft(entities)
	if len(entities) != 1 || entities[0].Box.X != 30 {
		t.Errorf("PruneLeft() = %+v", entities)
	}

	road := []Entity{{Box: core.NewRectF(0, 90, 10, 10)}, {Box: core.NewRectF(0, 10, 10, 10)}}
	ScrollDown(road, 20)
	road = PruneBelow(road, 100)
	if len(road) != 1 || road[0].Box.Y != 30 {
		t.Errorf("PruneBelow() = %+v", road)
	}
}
