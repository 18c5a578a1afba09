package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// MaxFrameDelta caps a single tick after a stalled terminal.
const MaxFrameDelta = 100 * time.Millisecond

// MaxSubStep is the longest slice of world time simulated at once. At the
// fastest scroll speed an entity moves less than the collision window per
// slice, so long ticks cannot tunnel it through the player.
const MaxSubStep = 20 * time.Millisecond

// Context is the mutable simulation state handed to a variant on every call.
// The session owns it; variants must not keep it past the call.
type Context struct {
	RNG        *rand.Rand
	Score      *ScoreKeeper
	Timers     *Timers
	Now        time.Duration // World time, advanced only while Running
	Input      core.InputFrame
	Generation uint64
}

// NewID returns a fresh entity id born now.
func (c *Context) NewID() EntityID {
	return NewEntityID(c.RNG, c.Now)
}

// Elapsed returns world time in seconds.
func (c *Context) Elapsed() float64 {
	return c.Now.Seconds()
}

// HitHazard applies an uncushioned hit unless shield is active and reports
// whether the run is over.
func (c *Context) HitHazard(shield *Effect) (fatal bool) {
	if shield != nil && shield.Active() {
		return false
	}
	return c.Score.LoseLife() == 0
}

// Variant is one game plugged into the simulation loop.
type Variant interface {
	// Reset restores the variant to its starting layout.
	Reset(ctx *Context)
	// Step integrates the player and scrolls entities by dt seconds.
	Step(ctx *Context, dt float64)
	// CheckCollisions resolves contacts after integration.
	CheckCollisions(ctx *Context)
	// SpawnIfDue appends entities whose spawn time has come.
	SpawnIfDue(ctx *Context, now time.Duration)
	// IsTerminal reports whether the run is over.
	IsTerminal(ctx *Context) bool
	// ScrollSpeed is the current world speed in px/s, used for scoring.
	ScrollSpeed() float64
}

// Options configures a session.
type Options struct {
	Seed            int64
	Countdown       int
	StartLives      int
	MaxLives        int
	DistanceDivisor float64 // Zero disables distance scoring
	OnExit          func()
	OnTransition    TransitionFunc
}

// Snapshot is a read-only view of a session for renderers.
type Snapshot struct {
	State      State
	Score      int
	High       int
	Lives      int
	MaxLives   int
	WorldTime  time.Duration
	Generation uint64
}

// Session drives a variant through countdown, running, pause and game over.
type Session struct {
	variant Variant
	opts    Options
	machine *Machine
	ctx     *Context

	last        time.Time
	hasBaseline bool
	disposed    bool
}

// NewSession creates a session and puts it in its first countdown.
func NewSession(v Variant, opts Options) *Session {
	s := &Session{
		variant: v,
		opts:    opts,
		machine: NewMachine(opts.Countdown),
		ctx: &Context{
			RNG:    rand.New(rand.NewSource(opts.Seed)),
			Score:  NewScoreKeeper(opts.StartLives, opts.MaxLives),
			Timers: NewTimers(),
			Input:  core.NewInputFrame(),
		},
	}
	s.machine.OnTransition(opts.OnTransition)
	s.Reset()
	return s
}

// Reset starts a new run: timers from the previous run are cancelled and the
// generation advances so none of them can fire.
func (s *Session) Reset() {
	if s.disposed {
		return
	}
	s.ctx.Timers.Rewind()
	s.ctx.Now = 0
	s.ctx.Generation = s.ctx.Timers.Generation()
	s.ctx.Input = core.NewInputFrame()
	s.ctx.Score.Reset()
	s.variant.Reset(s.ctx)
	s.machine.Restart(s.opts.Countdown)
	s.hasBaseline = false
}

// Dispose cancels every timer and turns later ticks into no-ops.
func (s *Session) Dispose() {
	s.ctx.Timers.CancelAll()
	s.disposed = true
}

// Disposed reports whether Dispose was called.
func (s *Session) Disposed() bool {
	return s.disposed
}

// OnTransition replaces the run state listener.
func (s *Session) OnTransition(fn TransitionFunc) {
	s.machine.OnTransition(fn)
}

// Quit invokes the exit hook.
func (s *Session) Quit() {
	if s.opts.OnExit != nil {
		s.opts.OnExit()
	}
}

// TogglePause flips Running and Paused.
func (s *Session) TogglePause() error {
	return s.machine.Toggle()
}

// Suspend pauses a running session or its countdown because focus was lost.
func (s *Session) Suspend() {
	_ = s.machine.Suspend()
}

// State returns the run state.
func (s *Session) State() State {
	return s.machine.State()
}

// Score returns the score keeper.
func (s *Session) Score() *ScoreKeeper {
	return s.ctx.Score
}

// Context exposes the simulation context for read-only inspection.
func (s *Session) Context() *Context {
	return s.ctx
}

// delta derives the frame delta from now. The first tick only sets the
// baseline, negative deltas become zero and large ones are capped.
func (s *Session) delta(now time.Time) time.Duration {
	if !s.hasBaseline {
		s.last = now
		s.hasBaseline = true
		return 0
	}
	dt := now.Sub(s.last)
	if dt < 0 {
		return 0
	}
	s.last = now
	return min(dt, MaxFrameDelta)
}

// Tick advances the session to now. Edge-triggered input handles quit,
// restart and pause; the rest of the frame is the variant's input.
func (s *Session) Tick(now time.Time, in core.InputFrame) Snapshot {
	if s.disposed {
		return s.Snapshot()
	}
	dt := s.delta(now)

	switch {
	case in.Has(core.ActionQuit):
		s.Quit()
		return s.Snapshot()
	case in.Has(core.ActionRestart):
		s.Reset()
		return s.Snapshot()
	case in.Has(core.ActionPause):
		if s.machine.Toggle() == nil && s.machine.Phase() != PhasePaused {
			// Resuming: the pause never counts as world time.
			dt = 0
		} else if s.machine.Phase() == PhasePaused {
			return s.Snapshot()
		}
	}

	switch s.machine.Phase() {
	case PhaseCountdown:
		s.machine.AdvanceCountdown(dt)
	case PhaseRunning:
		s.step(dt, in)
	}
	return s.Snapshot()
}

// step runs one Running tick in slices of at most MaxSubStep. Presses are
// seen by the first slice only.
func (s *Session) step(dt time.Duration, in core.InputFrame) {
	s.ctx.Input = in
	repeat := in.Repeat()
	for remaining := dt; ; {
		slice := min(remaining, MaxSubStep)
		remaining -= slice
		if s.substep(slice) {
			return
		}
		if remaining <= 0 {
			break
		}
		s.ctx.Input = repeat
	}
	s.ctx.Score.Publish(dt)
}

// substep advances world time by dt in fixed order and reports whether the
// run ended.
func (s *Session) substep(dt time.Duration) bool {
	ctx := s.ctx
	ctx.Now += dt
	ctx.Timers.Sync(ctx.Now)
	secs := dt.Seconds()

	s.variant.Step(ctx, secs)
	s.variant.CheckCollisions(ctx)
	if s.variant.IsTerminal(ctx) {
		ctx.Score.Flush()
		_ = s.machine.End(ctx.Score.Display())
		return true
	}
	s.variant.SpawnIfDue(ctx, ctx.Now)
	if s.opts.DistanceDivisor > 0 {
		ctx.Score.Accumulate(s.variant.ScrollSpeed() * secs / s.opts.DistanceDivisor)
	}
	ctx.Timers.Advance(ctx.Now)
	return false
}

// Snapshot returns the session view for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:      s.machine.State(),
		Score:      s.ctx.Score.Display(),
		High:       s.ctx.Score.High(),
		Lives:      s.ctx.Score.Lives(),
		MaxLives:   s.ctx.Score.MaxLives(),
		WorldTime:  s.ctx.Now,
		Generation: s.ctx.Generation,
	}
}

// GameState reports the snapshot in the platform's terms.
func (s Snapshot) GameState() core.GameState {
	st := core.GameState{
		Score:     s.Score,
		HighScore: s.High,
		Lives:     s.Lives,
	}
	switch s.State.Phase {
	case PhaseCountdown:
		st.Countdown = s.State.Remaining
	case PhasePaused:
		st.Paused = true
	case PhaseGameOver:
		st.GameOver = true
		st.Score = s.State.FinalScore
	}
	return st
}
