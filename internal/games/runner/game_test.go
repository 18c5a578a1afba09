package runner

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

const frame = 16 * time.Millisecond

func newGame(t *testing.T, mutate func(*config.RunnerConfig)) (*Game, *core.ManualClock) {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s := config.DefaultSettings()
	s.PlayerName = "ada"
	g := New(s, cfg, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	return g, core.NewManualClock(time.Unix(0, 0))
}

func empty() core.InputFrame { return core.NewInputFrame() }

func pressed(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// start runs the countdown out.
func start(t *testing.T, g *Game, clock *core.ManualClock) {
	t.Helper()
	g.Step(clock.Now(), empty())
	for i := 0; i < 40 && g.State().Countdown > 0; i++ {
		g.Step(clock.Advance(100*time.Millisecond), empty())
	}
	if g.session.State().Phase != sim.PhaseRunning {
		t.Fatalf("phase = %v after countdown", g.session.State())
	}
}

func TestGameIdentity(t *testing.T) {
	g, _ := newGame(t, nil)
	if g.ID() != "runner" || g.Title() != "Endless Runner" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
	st := g.State()
	if st.Countdown != 3 || st.Lives != 3 {
		t.Errorf("initial state = %+v", st)
	}
}

func TestGameJump(t *testing.T) {
	g, clock := newGame(t, nil)
	start(t, g, clock)

	g.Step(clock.Advance(frame), pressed(core.ActionJump))
	if g.world.player.Grounded || g.world.player.Y >= 0 {
		t.Fatalf("player not airborne after jump: %+v", g.world.player)
	}
	for range 120 {
		g.Step(clock.Advance(frame), empty())
	}
	if !g.world.player.Grounded || g.world.player.Y != 0 {
		t.Errorf("player did not land: %+v", g.world.player)
	}
}

func TestGameHazardGapsAreJumpable(t *testing.T) {
	g, clock := newGame(t, func(c *config.RunnerConfig) {
		c.Rules.StartLives = 1000
		c.Rules.MaxLives = 1000
		c.Pickups.IntervalMin = 1000
		c.Pickups.IntervalMax = 1000
	})
	start(t, g, clock)

	seen := map[sim.EntityID]bool{}
	var born []time.Duration
	var widths []float64
	for i := 0; i < 20000 && len(born) < 51; i++ {
		g.Step(clock.Advance(frame), empty())
		for _, e := range g.world.entities {
			if e.Kind == sim.KindHazard && !seen[e.ID] {
				seen[e.ID] = true
				born = append(born, e.ID.Born)
				widths = append(widths, e.Box.W)
			}
		}
	}
	if len(born) < 51 {
		t.Fatalf("only %d hazards spawned", len(born))
	}
	for i := 1; i < len(born); i++ {
		gap := (born[i] - born[i-1]).Seconds()
		if floor := g.world.hazards.MinGap(widths[i-1]); gap < floor-1e-6 {
			t.Errorf("hazard %d: gap %.3fs below floor %.3fs", i, gap, floor)
		}
	}
}

func TestGameSpawnedHazardsStayInRange(t *testing.T) {
	g, clock := newGame(t, func(c *config.RunnerConfig) {
		c.Rules.StartLives = 1000
		c.Rules.MaxLives = 1000
	})
	start(t, g, clock)
	h := g.cfg.Hazards
	for range 3000 {
		g.Step(clock.Advance(frame), empty())
		for _, e := range g.world.entities {
			if e.Kind != sim.KindHazard {
				continue
			}
			if e.Box.W < h.MinWidth || e.Box.W > h.MaxWidth || e.Box.H < h.MinHeight || e.Box.H > h.MaxHeight {
				t.Fatalf("hazard size %vx%v out of range", e.Box.W, e.Box.H)
			}
			if e.Box.Bottom() != 0 {
				t.Fatalf("hazard not on the ground: %+v", e.Box)
			}
		}
	}
}

func TestGameRunEndsWithoutJumping(t *testing.T) {
	g, clock := newGame(t, func(c *config.RunnerConfig) {
		c.Pickups.IntervalMin = 1000
		c.Pickups.IntervalMax = 1000
	})
	start(t, g, clock)

	for i := 0; i < 10000 && !g.State().GameOver; i++ {
		g.Step(clock.Advance(frame), empty())
	}
	st := g.State()
	if !st.GameOver || st.Lives != 0 {
		t.Fatalf("state = %+v, want game over with 0 lives", st)
	}
	if st.Score <= 0 || st.HighScore != st.Score {
		t.Errorf("score %d high %d", st.Score, st.HighScore)
	}
	if g.world.hits != 3 {
		t.Errorf("hits = %d, want 3", g.world.hits)
	}
}

func TestGameHeartPickup(t *testing.T) {
	g, clock := newGame(t, nil)
	start(t, g, clock)

	g.world.entities = append(g.world.entities, sim.Entity{
		Kind:   sim.KindPickup,
		Pickup: sim.PickupHeart,
		Box:    g.world.player.Box(),
	})
	g.Step(clock.Advance(frame), empty())
	if got := g.State().Lives; got != 4 {
		t.Errorf("lives = %d after heart, want 4", got)
	}
}

func TestGameShieldBlocksHit(t *testing.T) {
	g, clock := newGame(t, nil)
	start(t, g, clock)

	g.world.entities = append(g.world.entities, sim.Entity{
		Kind:   sim.KindPickup,
		Pickup: sim.PickupShield,
		Box:    g.world.player.Box(),
	})
	g.Step(clock.Advance(frame), empty())
	if !g.world.shield.Active() {
		t.Fatal("shield not active after pickup")
	}

	g.world.entities = append(g.world.entities, sim.Entity{Kind: sim.KindHazard, Box: g.world.player.Box()})
	g.Step(clock.Advance(frame), empty())
	if got := g.State().Lives; got != 3 {
		t.Errorf("lives = %d after shielded hit, want 3", got)
	}

	// Shield lasts five seconds of world time.
	for range 320 {
		g.Step(clock.Advance(frame), empty())
	}
	if g.world.shield.Active() {
		t.Error("shield still active after 5s")
	}
}

func TestGameLongTicksDoNotTunnel(t *testing.T) {
	s := config.DefaultSettings()
	s.Difficulty = config.DifficultyHard
	g := New(s, config.DefaultRunnerConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	clock := core.NewManualClock(time.Unix(0, 0))
	start(t, g, clock)

	// The narrowest hazard moves 48px per capped tick, twice the overlap
	// window, so a whole-tick step would jump over the player.
	p := g.world.player.Box()
	g.world.entities = append(g.world.entities, sim.Entity{
		Kind: sim.KindHazard,
		Box:  core.NewRectF(p.X+p.W+1, -24, 16, 24),
	})
	for range 5 {
		g.Step(clock.Advance(sim.MaxFrameDelta), empty())
	}
	if got := g.State().Lives; got != 2 {
		t.Errorf("lives = %d after the hazard passed, want 2", got)
	}
}

func TestGameRestartKeepsHighScore(t *testing.T) {
	g, clock := newGame(t, nil)
	start(t, g, clock)
	for range 200 {
		g.Step(clock.Advance(frame), empty())
	}
	before := g.State().HighScore
	if before == 0 {
		t.Fatal("no score accumulated")
	}

	g.Step(clock.Advance(frame), pressed(core.ActionRestart))
	st := g.State()
	if st.Score != 0 || st.Countdown != 3 || st.HighScore != before {
		t.Errorf("after restart state = %+v, want score 0, countdown 3, high %d", st, before)
	}
	if len(g.world.entities) != 0 {
		t.Error("entities survived restart")
	}
}

func TestGameRender(t *testing.T) {
	g, clock := newGame(t, nil)
	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "GET READY") {
		t.Error("countdown overlay missing")
	}

	start(t, g, clock)
	dst.Clear()
	g.Render(dst)
	if !strings.Contains(dst.Row(0), "ada") {
		t.Errorf("HUD row = %q", dst.Row(0))
	}
	if dst.Get(0, g.groundY) != GroundChar {
		t.Error("ground line missing")
	}
	// Player stands two cells wide just above the ground at x = 60px.
	if dst.Get(5, g.groundY-2) != RunnerBody || dst.Get(6, g.groundY-2) != RunnerHead {
		t.Errorf("runner not drawn: %q", dst.Row(g.groundY-2))
	}
}

func TestGameCloseStopsTicks(t *testing.T) {
	g, clock := newGame(t, nil)
	start(t, g, clock)
	g.Close()
	before := g.State()
	for range 100 {
		g.Step(clock.Advance(frame), empty())
	}
	if g.State() != before {
		t.Error("closed game still advancing")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, clock := newGame(t, nil)
	start(t, g, clock)
	g.world.entities = []sim.Entity{{Kind: sim.KindHazard, Box: core.NewRectF(600, -24, 16, 24)}}

	before := g.Snapshot()
	g.Step(clock.Advance(frame), empty())
	after := g.Snapshot()
	if len(before.Entities) == 0 || before.Entities[0].Box.X != 600 {
		t.Fatalf("snapshot changed with the world: %+v", before.Entities)
	}
	if after.Entities[0].Box.X >= 600 {
		t.Errorf("hazard did not move: %v", after.Entities[0].Box.X)
	}
	after.Entities[0].Box.X = -1
	if g.world.entities[0].Box.X == -1 {
		t.Error("snapshot shares the entity slice")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g, clock := newGame(t, nil)
	start(t, g, clock)
	for range 120 {
		g.Step(clock.Advance(frame), empty())
	}

	g.Step(clock.Advance(frame), pressed(core.ActionPause))
	frozen := g.Snapshot()
	if frozen.Session.State.Phase != sim.PhasePaused {
		t.Fatalf("phase = %v, want paused", frozen.Session.State)
	}
	for range 200 {
		g.Step(clock.Advance(frame), pressed(core.ActionJump))
	}
	if got := g.Snapshot(); !reflect.DeepEqual(got, frozen) {
		t.Errorf("world changed while paused:\n got %+v\nwant %+v", got, frozen)
	}
}

func TestNothingChangesAfterGameOver(t *testing.T) {
	g, clock := newGame(t, func(c *config.RunnerConfig) {
		c.Rules.StartLives = 1
		c.Pickups.IntervalMin = 1000
		c.Pickups.IntervalMax = 1000
	})
	start(t, g, clock)
	for i := 0; i < 10000 && !g.State().GameOver; i++ {
		g.Step(clock.Advance(frame), empty())
	}
	final := g.Snapshot()
	if final.Session.State.Phase != sim.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", final.Session.State)
	}
	for range 200 {
		g.Step(clock.Advance(frame), pressed(core.ActionJump))
	}
	if got := g.Snapshot(); !reflect.DeepEqual(got, final) {
		t.Errorf("world changed after game over:\n got %+v\nwant %+v", got, final)
	}
}
