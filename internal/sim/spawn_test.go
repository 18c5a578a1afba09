package sim

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
)

func TestMinGapEasyScenario(t *testing.T) {
	p := config.DefaultRunnerConfig().Profiles.For(config.DifficultyEasy)
	s := NewHazardSpawner(p, config.DifficultyEasy.GapFactor(), 1.15)

	if got := s.MinGap(0); math.Abs(got-0.56) > 1e-9 {
		t.Errorf("MinGap(0) = %v, want 0.56", got)
	}
	want := 0.56 + 40.0/320*1.15
	if got := s.MinGap(40); math.Abs(got-want) > 1e-9 {
		t.Errorf("MinGap(40) = %v, want %v", got, want)
	}
}

func TestHazardGapFeasibility(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	const frame = 16 * time.Millisecond

	for _, d := range config.Difficulties {
		t.Run(d.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(d) * 31))
			s := NewHazardSpawner(cfg.Profiles.For(d), d.GapFactor(), cfg.Hazards.WidthCompensation)

			now := time.Duration(0)
			last := now
			prevWidth := 0.0
			s.Schedule(now, rng, prevWidth)

			for spawned := 0; spawned < 50; {
				now += frame
				if !s.Due(now) {
					continue
				}
				gap := (now - last).Seconds()
				if floor := s.MinGap(prevWidth); gap < floor-1e-6 {
					t.Fatalf("spawn %d: gap %.4fs below floor %.4fs", spawned, gap, floor)
				}
				prevWidth = Uniform(rng, cfg.Hazards.MinWidth, cfg.Hazards.MaxWidth)
				s.Schedule(now, rng, prevWidth)
				delay, floor := s.LastDelay()
				if delay < floor {
					t.Fatalf("spawn %d: delay %.4f below floor %.4f", spawned, delay, floor)
				}
				last = now
				spawned++
			}
		})
	}
}

func TestHazardFloorReplacement(t *testing.T) {
	// Intervals far below the jump airtime force every draw onto the floor band.
	p := config.DifficultyProfile{ScrollSpeed: 400, SpawnIntervalMin: 0.1, SpawnIntervalMax: 0.2, Gravity: 1700, JumpVelocity: 650}
	s := NewHazardSpawner(p, 0.6, 1.15)
	rng := rand.New(rand.NewSource(1))

	floor := s.MinGap(30)
	for i := 0; i < 200; i++ {
		d := s.NextDelay(rng, 30)
		if d < floor*1.15-1e-9 || d > floor*1.5+1e-9 {
			t.Fatalf("delay %.4f outside [%.4f, %.4f]", d, floor*1.15, floor*1.5)
		}
	}
}

func TestNewHazardSpawnerPanicsOnInvalid(t *testing.T) {
	tests := []config.DifficultyProfile{
		{ScrollSpeed: 0, SpawnIntervalMin: 1, SpawnIntervalMax: 2, Gravity: 1, JumpVelocity: 1},
		{ScrollSpeed: 1, SpawnIntervalMin: 1, SpawnIntervalMax: 2, Gravity: 0, JumpVelocity: 1},
		{ScrollSpeed: 1, SpawnIntervalMin: 1, SpawnIntervalMax: 2, Gravity: 1, JumpVelocity: -1},
		{ScrollSpeed: 1, SpawnIntervalMin: 3, SpawnIntervalMax: 2, Gravity: 1, JumpVelocity: 1},
	}
	for i, p := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: no panic for %+v", i, p)
				}
			}()
			NewHazardSpawner(p, 0.6, 1.15)
		}()
	}
}

func TestPickupSpawnerRetriesWhenTooClose(t *testing.T) {
	s := NewPickupSpawner(config.PickupConfig{IntervalMin: 5, IntervalMax: 17, MinSeparation: 200, RetryAfter: 0.5, Size: 16})
	rng := rand.New(rand.NewSource(3))
	s.Schedule(0, rng)

	due := s.NextAt()
	if due < 5*time.Second || due > 17*time.Second {
		t.Fatalf("first pickup due at %v, want 5..17s", due)
	}
	if s.Ready(due-time.Millisecond, rng, -1) {
		t.Error("ready before due")
	}
	if s.Ready(due, rng, 50) {
		t.Error("ready with previous pickup 50px away")
	}
	if got := s.NextAt(); got != due+500*time.Millisecond {
		t.Errorf("retry at %v, want %v", got, due+500*time.Millisecond)
	}
	if !s.Ready(due+500*time.Millisecond, rng, 250) {
		t.Error("not ready once far enough")
	}
	if next := s.NextAt() - (due + 500*time.Millisecond); next < 5*time.Second {
		t.Errorf("next pickup after %v, want >= 5s", next)
	}
}

func TestLanePickerWeights(t *testing.T) {
	p := NewLanePicker([]int{40, 30, 30}, 72, 7)
	rng := rand.New(rand.NewSource(11))

	counts := make([]int, p.Lanes())
	const n = 20000
	for range n {
		counts[p.Lane(rng)]++
	}
	want := []float64{0.40, 0.30, 0.30}
	for i, c := range counts {
		if got := float64(c) / n; math.Abs(got-want[i]) > 0.02 {
			t.Errorf("lane %d frequency %.3f, want %.2f", i, got, want[i])
		}
	}
}

func TestLanePickerZeroWeightLaneNeverChosen(t *testing.T) {
	p := NewLanePicker([]int{1, 0, 1}, 72, 7)
	rng := rand.New(rand.NewSource(5))
	for range 1000 {
		if p.Lane(rng) == 1 {
			t.Fatal("zero-weight lane chosen")
		}
	}
}

func TestLanePickerPlaceStaysInLane(t *testing.T) {
	p := NewLanePicker([]int{25, 20, 10, 20, 25}, 72, 7)
	rng := rand.New(rand.NewSource(9))
	const w = 66.0 // Jitter larger than the free space in the lane
	for range 500 {
		lane := p.Lane(rng)
		x := p.Place(rng, lane, w)
		if x < p.LaneLeft(lane) || x+w > p.LaneLeft(lane)+p.LaneWidth() {
			t.Fatalf("lane %d: x %.2f leaves the lane", lane, x)
		}
	}
}

func TestEntityIDDeterministicPerSeed(t *testing.T) {
	a := NewEntityID(rand.New(rand.NewSource(42)), time.Second)
	b := NewEntityID(rand.New(rand.NewSource(42)), time.Second)
	c := NewEntityID(rand.New(rand.NewSource(43)), time.Second)

	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
	if a == c {
		t.Errorf("different seeds gave equal ids %v", a)
	}
}
