// Package sim is the real-time simulation core shared by the action games:
// run state machine, score keeper, world-time timers, body physics, collision
// resolution, spawners and the session that ties them together per tick.
package sim

import (
	"errors"
	"fmt"
	"time"
)

// ErrIllegalTransition is returned when a run state transition is not allowed
// from the current state. The state is left untouched.
var ErrIllegalTransition = errors.New("sim: illegal transition")

// Phase is the active run state.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PauseReason records what paused the run.
type PauseReason int

const (
	PauseNone PauseReason = iota
	PauseExplicit
	PauseFocusLost
)

func (r PauseReason) String() string {
	switch r {
	case PauseExplicit:
		return "explicit"
	case PauseFocusLost:
		return "focus_lost"
	default:
		return "none"
	}
}

// State is the tagged run state. Remaining is set for Countdown, Reason for
// Paused and FinalScore for GameOver.
type State struct {
	Phase      Phase
	Remaining  int
	Reason     PauseReason
	FinalScore int
}

func (s State) String() string {
	switch s.Phase {
	case PhaseCountdown:
		return fmt.Sprintf("countdown(%d)", s.Remaining)
	case PhasePaused:
		return fmt.Sprintf("paused(%s)", s.Reason)
	case PhaseGameOver:
		return fmt.Sprintf("game_over(%d)", s.FinalScore)
	default:
		return s.Phase.String()
	}
}

// CountdownStep is how long each countdown number is shown.
const CountdownStep = time.Second

// TransitionFunc observes state changes.
type TransitionFunc func(from, to State)

// Machine owns the run state. It is the only way to change it.
type Machine struct {
	state    State
	elapsed  time.Duration // Countdown time accumulated toward the next decrement
	resume   State         // Where the next unpause goes
	listener TransitionFunc
}

// NewMachine creates a machine in Countdown(n). A zero countdown starts
// Running immediately.
func NewMachine(n int) *Machine {
	m := &Machine{}
	m.state = countdownOrRunning(n)
	return m
}

func countdownOrRunning(n int) State {
	if n <= 0 {
		return State{Phase: PhaseRunning}
	}
	return State{Phase: PhaseCountdown, Remaining: n}
}

// OnTransition installs a listener called after every transition.
func (m *Machine) OnTransition(fn TransitionFunc) {
	m.listener = fn
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.state.Phase
}

func (m *Machine) set(to State) {
	from := m.state
	m.state = to
	if m.listener != nil && from != to {
		m.listener(from, to)
	}
}

// AdvanceCountdown counts down by dt and reports whether the countdown just
// finished. One number is removed per CountdownStep; leftover time is dropped
// when Running begins.
func (m *Machine) AdvanceCountdown(dt time.Duration) bool {
	if m.state.Phase != PhaseCountdown {
		return false
	}
	m.elapsed += dt
	for m.elapsed >= CountdownStep && m.state.Phase == PhaseCountdown {
		m.elapsed -= CountdownStep
		if m.state.Remaining <= 1 {
			m.elapsed = 0
			m.set(State{Phase: PhaseRunning})
			return true
		}
		m.set(State{Phase: PhaseCountdown, Remaining: m.state.Remaining - 1})
	}
	return false
}

// Toggle flips Running and Paused. An explicit toggle resumes any pause,
// back into the countdown if that is where the pause began.
func (m *Machine) Toggle() error {
	switch m.state.Phase {
	case PhaseRunning:
		m.resume = State{Phase: PhaseRunning}
		m.set(State{Phase: PhasePaused, Reason: PauseExplicit})
		return nil
	case PhasePaused:
		to := m.resume
		if to.Phase != PhaseCountdown {
			to = State{Phase: PhaseRunning}
		}
		m.resume = State{}
		m.set(to)
		return nil
	default:
		return fmt.Errorf("%w: toggle from %s", ErrIllegalTransition, m.state)
	}
}

// Suspend pauses a running game or a countdown because the environment went
// away. It can only pause, never resume. A suspended countdown restarts its
// current number on resume.
func (m *Machine) Suspend() error {
	switch m.state.Phase {
	case PhaseRunning:
		m.resume = State{Phase: PhaseRunning}
	case PhaseCountdown:
		m.resume = m.state
		m.elapsed = 0
	default:
		return fmt.Errorf("%w: suspend from %s", ErrIllegalTransition, m.state)
	}
	m.set(State{Phase: PhasePaused, Reason: PauseFocusLost})
	return nil
}

// End enters GameOver. Only a running game can end.
func (m *Machine) End(finalScore int) error {
	if m.state.Phase != PhaseRunning {
		return fmt.Errorf("%w: end from %s", ErrIllegalTransition, m.state)
	}
	m.set(State{Phase: PhaseGameOver, FinalScore: finalScore})
	return nil
}

// Restart returns to Countdown(n) from any state.
func (m *Machine) Restart(n int) {
	m.elapsed = 0
	m.resume = State{}
	m.set(countdownOrRunning(n))
}
