package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
)

// seconds converts float seconds to a Duration.
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// uniform draws from [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// Uniform draws from [lo, hi] with the session RNG.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return uniform(rng, lo, hi)
}

// schedule tracks when the next spawn is due in world time.
type schedule struct {
	due   time.Duration
	armed bool
}

// Due reports whether the next spawn is due at now.
func (s *schedule) Due(now time.Duration) bool {
	return s.armed && now >= s.due
}

// NextAt returns the world time of the next spawn.
func (s *schedule) NextAt() time.Duration {
	return s.due
}

func (s *schedule) arm(at time.Duration) {
	s.due = at
	s.armed = true
}

// Stop disarms the schedule until the next Schedule call.
func (s *schedule) Stop() {
	s.armed = false
}

// Gap band added above the floor when a candidate delay is too short.
const (
	gapFloorJitterMin = 0.15
	gapFloorJitterMax = 0.50
)

// HazardSpawner schedules hazards so every gap leaves room for a full jump.
type HazardSpawner struct {
	schedule
	profile   config.DifficultyProfile
	gapFactor float64
	widthComp float64

	lastDelay  float64
	lastMinGap float64
}

// NewHazardSpawner builds a spawner for one difficulty profile. Invalid
// physics make fair gaps impossible and panic.
func NewHazardSpawner(p config.DifficultyProfile, gapFactor, widthCompensation float64) *HazardSpawner {
	if p.ScrollSpeed <= 0 || p.Gravity <= 0 || p.JumpVelocity <= 0 ||
		p.SpawnIntervalMin > p.SpawnIntervalMax || gapFactor <= 0 {
		panic(fmt.Sprintf("sim: invalid spawn configuration %+v (gap factor %v)", p, gapFactor))
	}
	return &HazardSpawner{profile: p, gapFactor: gapFactor, widthComp: widthCompensation}
}

// MinGap is the shortest allowed delay in seconds after a hazard of the given
// width. A zero width means there is no previous hazard.
func (s *HazardSpawner) MinGap(prevWidth float64) float64 {
	gap := s.profile.FlightTime() * s.gapFactor
	if prevWidth > 0 {
		gap += prevWidth / s.profile.ScrollSpeed * s.widthComp
	}
	return gap
}

// NextDelay draws the delay in seconds before the hazard that follows one of
// prevWidth.
func (s *HazardSpawner) NextDelay(rng *rand.Rand, prevWidth float64) float64 {
	minGap := s.MinGap(prevWidth)
	delay := uniform(rng, s.profile.SpawnIntervalMin, s.profile.SpawnIntervalMax)
	if delay < minGap {
		delay = minGap + uniform(rng, gapFloorJitterMin, gapFloorJitterMax)*minGap
	}
	s.lastDelay = delay
	s.lastMinGap = minGap
	return delay
}

// Schedule arms the next spawn after a hazard of prevWidth spawned at now.
func (s *HazardSpawner) Schedule(now time.Duration, rng *rand.Rand, prevWidth float64) time.Duration {
	d := seconds(s.NextDelay(rng, prevWidth))
	s.arm(now + d)
	return d
}

// LastDelay returns the last drawn delay and the floor it was checked against.
func (s *HazardSpawner) LastDelay() (delay, minGap float64) {
	return s.lastDelay, s.lastMinGap
}

// IntervalSpawner schedules spawns uniformly in [lo, hi] seconds.
type IntervalSpawner struct {
	schedule
	lo, hi float64
}

// NewIntervalSpawner panics on an empty or negative range.
func NewIntervalSpawner(lo, hi float64) *IntervalSpawner {
	if lo <= 0 || hi < lo {
		panic(fmt.Sprintf("sim: invalid spawn configuration [%v, %v]", lo, hi))
	}
	return &IntervalSpawner{lo: lo, hi: hi}
}

// Schedule arms the next spawn relative to now.
func (s *IntervalSpawner) Schedule(now time.Duration, rng *rand.Rand) time.Duration {
	d := seconds(uniform(rng, s.lo, s.hi))
	s.arm(now + d)
	return d
}

// SetRange changes the delay range for later Schedule calls.
func (s *IntervalSpawner) SetRange(lo, hi float64) {
	if lo > 0 && hi >= lo {
		s.lo, s.hi = lo, hi
	}
}

// PickupSpawner schedules pickups on a long random interval and keeps them
// apart from the previous pickup.
type PickupSpawner struct {
	IntervalSpawner
	minSeparation float64
	retry         time.Duration
}

// NewPickupSpawner builds a pickup spawner from config.
func NewPickupSpawner(cfg config.PickupConfig) *PickupSpawner {
	return &PickupSpawner{
		IntervalSpawner: *NewIntervalSpawner(cfg.IntervalMin, cfg.IntervalMax),
		minSeparation:   cfg.MinSeparation,
		retry:           seconds(cfg.RetryAfter),
	}
}

// Ready reports whether a due pickup may spawn. gap is the distance from the
// spawn point to the previous live pickup, or negative when there is none.
// A pickup that would land too close is retried shortly. On success the next
// pickup is scheduled.
func (s *PickupSpawner) Ready(now time.Duration, rng *rand.Rand, gap float64) bool {
	if !s.Due(now) {
		return false
	}
	if gap >= 0 && gap < s.minSeparation {
		s.arm(now + s.retry)
		return false
	}
	s.Schedule(now, rng)
	return true
}

// LanePicker chooses lanes by weight and places entities inside them.
type LanePicker struct {
	weights []int
	total   int
	width   float64
	jitter  float64
}

// NewLanePicker panics when no lane has positive weight.
func NewLanePicker(weights []int, laneWidth, jitter float64) *LanePicker {
	total := 0
	for _, w := range weights {
		total += max(w, 0)
	}
	if total <= 0 || laneWidth <= 0 {
		panic(fmt.Sprintf("sim: invalid lane configuration %v width %v", weights, laneWidth))
	}
	return &LanePicker{weights: weights, total: total, width: laneWidth, jitter: jitter}
}

// Lanes returns the lane count.
func (p *LanePicker) Lanes() int {
	return len(p.weights)
}

// LaneWidth returns the width of one lane.
func (p *LanePicker) LaneWidth() float64 {
	return p.width
}

// Lane draws a lane index according to the weights.
func (p *LanePicker) Lane(rng *rand.Rand) int {
	n := rng.Intn(p.total)
	for i, w := range p.weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}
	return len(p.weights) - 1
}

// LaneLeft returns the left edge of a lane.
func (p *LanePicker) LaneLeft(lane int) float64 {
	return float64(lane) * p.width
}

// Place returns the left x of an entity of width w centred in lane with random
// jitter, clamped so the entity stays inside the lane.
func (p *LanePicker) Place(rng *rand.Rand, lane int, w float64) float64 {
	left := p.LaneLeft(lane)
	x := left + (p.width-w)/2 + uniform(rng, -p.jitter, p.jitter)
	return min(max(x, left), left+p.width-w)
}
