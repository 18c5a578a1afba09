package sim

import (
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

func TestOverlapsToleranceBoundary(t *testing.T) {
	const tol = DefaultTolerance
	player := core.NewRectF(0, 0, 24, 32)

	tests := []struct {
		name    string
		overlap float64
		want    bool
	}{
		{"apart", -5, false},
		{"touching raw edges", 0, false},
		{"inside tolerance", tol, false},
		{"exactly at tolerance boundary", 2 * tol, false},
		{"one pixel past boundary", 2*tol + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			horizontal := core.NewRectF(player.Right()-tt.overlap, 0, 20, 32)
			if got := Overlaps(player, horizontal, tol); got != tt.want {
				t.Errorf("horizontal Overlaps() = %v, want %v", got, tt.want)
			}
			if got := Overlaps(horizontal, player, tol); got != tt.want {
				t.Errorf("swapped Overlaps() = %v, want %v", got, tt.want)
			}
			vertical := core.NewRectF(0, player.Bottom()-tt.overlap, 24, 20)
			if got := Overlaps(player, vertical, tol); got != tt.want {
				t.Errorf("vertical Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveHazardsBeforePickups(t *testing.T) {
	player := core.NewRectF(0, 0, 20, 20)
	entities := []Entity{
		{Kind: KindPickup, Pickup: PickupHeart, Box: core.NewRectF(0, 0, 20, 20)},
		{Kind: KindHazard, Box: core.NewRectF(0, 0, 20, 20)},
	}

	var order []Kind
	fatal := Resolve(player, entities, 4,
		func(e *Entity) bool { order = append(order, e.Kind); return false },
		func(e *Entity) { order = append(order, e.Kind) },
	)
	if fatal {
		t.Fatal("non-fatal hit reported fatal")
	}
	if len(order) != 2 || order[0] != KindHazard || order[1] != KindPickup {
		t.Errorf("order = %v, want hazard then pickup", order)
	}
	if !entities[0].Consumed || !entities[1].Consumed {
		t.Error("hit entities not consumed")
	}
}

func TestResolveFatalHazardSuppressesPickups(t *testing.T) {
	player := core.NewRectF(0, 0, 20, 20)
	entities := []Entity{
		{Kind: KindHazard, Box: core.NewRectF(0, 0, 20, 20)},
		{Kind: KindPickup, Pickup: PickupHeart, Box: core.NewRectF(0, 0, 20, 20)},
	}

	picked := false
	fatal := Resolve(player, entities, 4,
		func(*Entity) bool { return true },
		func(*Entity) { picked = true },
	)
	if !fatal {
		t.Fatal("fatal hit not reported")
	}
	if picked || entities[1].Consumed {
		t.Error("pickup applied on a fatal tick")
	}
}

func TestHitHazardThreeTimesEndsRun(t *testing.T) {
	ctx := &Context{Score: NewScoreKeeper(3, 5)}
	var shield Effect
	for i := 1; i <= 3; i++ {
		fatal := ctx.HitHazard(&shield)
		if fatal != (i == 3) {
			t.Errorf("hit %d fatal = %v", i, fatal)
		}
	}
	if ctx.Score.Lives() != 0 {
		t.Errorf("lives = %d, want 0", ctx.Score.Lives())
	}
}

func TestHitHazardShielded(t *testing.T) {
	tm := NewTimers()
	ctx := &Context{Score: NewScoreKeeper(1, 5), Timers: tm}
	var shield Effect
	shield.Activate(tm, 5e9)

	if ctx.HitHazard(&shield) {
		t.Error("shielded hit was fatal")
	}
	if ctx.Score.Lives() != 1 {
		t.Errorf("lives = %d, want 1", ctx.Score.Lives())
	}
}
