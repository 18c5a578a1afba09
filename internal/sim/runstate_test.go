package sim

import (
	"errors"
	"testing"
	"time"
)

func TestMachineCountdown(t *testing.T) {
	m := NewMachine(3)
	if got := m.State(); got.Phase != PhaseCountdown || got.Remaining != 3 {
		t.Fatalf("initial state = %v, want countdown(3)", got)
	}

	var seen []State
	m.OnTransition(func(_, to State) { seen = append(seen, to) })

	if m.AdvanceCountdown(900 * time.Millisecond) {
		t.Fatal("countdown finished early")
	}
	if m.State().Remaining != 3 {
		t.Errorf("remaining = %d after 0.9s, want 3", m.State().Remaining)
	}
	m.AdvanceCountdown(100 * time.Millisecond)
	if m.State().Remaining != 2 {
		t.Errorf("remaining = %d after 1s, want 2", m.State().Remaining)
	}
	m.AdvanceCountdown(time.Second)
	if !m.AdvanceCountdown(time.Second) {
		t.Fatal("countdown did not finish after 3s")
	}
	if m.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", m.Phase())
	}
	if len(seen) != 3 {
		t.Errorf("transitions = %v, want countdown(2), countdown(1), running", seen)
	}
}

func TestMachineZeroCountdownStartsRunning(t *testing.T) {
	if got := NewMachine(0).Phase(); got != PhaseRunning {
		t.Errorf("phase = %v, want running", got)
	}
}

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *Machine)
		act     func(m *Machine) error
		want    State
		illegal bool
	}{
		{
			name: "pause running",
			act:  func(m *Machine) error { return m.Toggle() },
			want: State{Phase: PhasePaused, Reason: PauseExplicit},
		},
		{
			name:  "resume explicit pause",
			setup: func(m *Machine) { _ = m.Toggle() },
			act:   func(m *Machine) error { return m.Toggle() },
			want:  State{Phase: PhaseRunning},
		},
		{
			name: "suspend running",
			act:  func(m *Machine) error { return m.Suspend() },
			want: State{Phase: PhasePaused, Reason: PauseFocusLost},
		},
		{
			name:    "suspend never resumes",
			setup:   func(m *Machine) { _ = m.Suspend() },
			act:     func(m *Machine) error { return m.Suspend() },
			want:    State{Phase: PhasePaused, Reason: PauseFocusLost},
			illegal: true,
		},
		{
			name:  "key resumes focus-lost pause",
			setup: func(m *Machine) { _ = m.Suspend() },
			act:   func(m *Machine) error { return m.Toggle() },
			want:  State{Phase: PhaseRunning},
		},
		{
			name: "end running",
			act:  func(m *Machine) error { return m.End(42) },
			want: State{Phase: PhaseGameOver, FinalScore: 42},
		},
		{
			name:    "end paused",
			setup:   func(m *Machine) { _ = m.Toggle() },
			act:     func(m *Machine) error { return m.End(1) },
			want:    State{Phase: PhasePaused, Reason: PauseExplicit},
			illegal: true,
		},
		{
			name:    "toggle game over",
			setup:   func(m *Machine) { _ = m.End(7) },
			act:     func(m *Machine) error { return m.Toggle() },
			want:    State{Phase: PhaseGameOver, FinalScore: 7},
			illegal: true,
		},
		{
			name:  "restart game over",
			setup: func(m *Machine) { _ = m.End(7) },
			act:   func(m *Machine) error { m.Restart(3); return nil },
			want:  State{Phase: PhaseCountdown, Remaining: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(0)
			if tt.setup != nil {
				tt.setup(m)
			}
			err := tt.act(m)
			if tt.illegal != errors.Is(err, ErrIllegalTransition) {
				t.Errorf("error = %v, illegal = %v", err, tt.illegal)
			}
			if got := m.State(); got != tt.want {
				t.Errorf("state = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMachineCountdownRejectsPause(t *testing.T) {
	m := NewMachine(3)
	if err := m.Toggle(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Toggle() during countdown = %v", err)
	}
	if err := m.End(0); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("End() during countdown = %v", err)
	}
}

func TestMachineSuspendCountdown(t *testing.T) {
	m := NewMachine(3)
	m.AdvanceCountdown(1500 * time.Millisecond)
	if err := m.Suspend(); err != nil {
		t.Fatalf("Suspend() during countdown = %v", err)
	}
	if got := m.State(); got != (State{Phase: PhasePaused, Reason: PauseFocusLost}) {
		t.Fatalf("state = %v, want paused(focus_lost)", got)
	}
	if m.AdvanceCountdown(5 * time.Second) {
		t.Fatal("countdown advanced while paused")
	}

	if err := m.Toggle(); err != nil {
		t.Fatalf("Toggle() = %v", err)
	}
	if got := m.State(); got != (State{Phase: PhaseCountdown, Remaining: 2}) {
		t.Fatalf("resumed into %v, want countdown(2)", got)
	}
	// The interrupted number is shown in full again.
	m.AdvanceCountdown(999 * time.Millisecond)
	if m.State().Remaining != 2 {
		t.Errorf("remaining = %d, want 2", m.State().Remaining)
	}
	m.AdvanceCountdown(time.Second + time.Millisecond)
	if m.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", m.Phase())
	}
}

func TestMachineRestartForgetsSuspendedCountdown(t *testing.T) {
	m := NewMachine(3)
	_ = m.Suspend()
	m.Restart(0)
	_ = m.Toggle()
	_ = m.Toggle()
	if got := m.State(); got != (State{Phase: PhaseRunning}) {
		t.Errorf("state = %v, want running", got)
	}
}
