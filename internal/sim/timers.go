package sim

import (
	"slices"
	"time"
)

// TimerID identifies a scheduled effect.
type TimerID uint64

type timer struct {
	id  TimerID
	at  time.Duration
	gen uint64
	fn  func()
}

// Timers schedules deferred effects on world time. Every timer carries the
// generation it was scheduled in; a timer whose generation is stale is dropped
// without running.
type Timers struct {
	now     time.Duration
	gen     uint64
	nextID  TimerID
	pending []timer
}

// NewTimers creates an empty scheduler at world time zero.
func NewTimers() *Timers {
	return &Timers{}
}

// After schedules fn to run once world time has advanced by d.
func (t *Timers) After(d time.Duration, fn func()) TimerID {
	t.nextID++
	t.pending = append(t.pending, timer{id: t.nextID, at: t.now + max(d, 0), gen: t.gen, fn: fn})
	return t.nextID
}

// Cancel removes a pending timer and reports whether it was found.
func (t *Timers) Cancel(id TimerID) bool {
	for i, tm := range t.pending {
		if tm.id == id {
			t.pending = slices.Delete(t.pending, i, i+1)
			return true
		}
	}
	return false
}

// CancelAll drops every pending timer and starts a new generation.
func (t *Timers) CancelAll() {
	t.gen++
	t.pending = t.pending[:0]
}

// Rewind cancels everything and moves world time back to zero.
func (t *Timers) Rewind() {
	t.CancelAll()
	t.now = 0
}

// Sync moves world time forward to now without running anything, so timers
// scheduled during a tick count from that tick's time.
func (t *Timers) Sync(now time.Duration) {
	if now > t.now {
		t.now = now
	}
}

// Advance moves world time to now and runs every due timer in schedule order.
// Timers scheduled by a callback run in the same call if they are already due.
// It returns how many callbacks ran.
func (t *Timers) Advance(now time.Duration) int {
	t.Sync(now)
	fired := 0
	for {
		idx := -1
		for i, tm := range t.pending {
			if tm.at > t.now {
				continue
			}
			if idx < 0 || tm.at < t.pending[idx].at || (tm.at == t.pending[idx].at && tm.id < t.pending[idx].id) {
				idx = i
			}
		}
		if idx < 0 {
			return fired
		}
		tm := t.pending[idx]
		t.pending = slices.Delete(t.pending, idx, idx+1)
		if tm.gen != t.gen {
			continue
		}
		tm.fn()
		fired++
	}
}

// Now returns the scheduler's world time.
func (t *Timers) Now() time.Duration {
	return t.now
}

// Generation returns the current generation.
func (t *Timers) Generation() uint64 {
	return t.gen
}

// Pending returns the number of scheduled timers.
func (t *Timers) Pending() int {
	return len(t.pending)
}

// Effect is a timed modifier such as a shield. Activating it again extends it
// from now rather than stacking.
type Effect struct {
	active bool
	until  time.Duration
	timer  TimerID
}

// Activate turns the effect on for d of world time.
func (e *Effect) Activate(t *Timers, d time.Duration) {
	if e.active {
		t.Cancel(e.timer)
	}
	e.active = true
	e.until = t.Now() + d
	e.timer = t.After(d, func() {
		e.active = false
	})
}

// Active reports whether the effect is on.
func (e *Effect) Active() bool {
	return e.active
}

// Remaining returns how much world time is left, or zero when inactive.
func (e *Effect) Remaining(t *Timers) time.Duration {
	if !e.active {
		return 0
	}
	return max(e.until-t.Now(), 0)
}

// Cancel turns the effect off now and drops its pending timer.
func (e *Effect) Cancel(t *Timers) {
	if e.active {
		t.Cancel(e.timer)
	}
	*e = Effect{}
}

// Clear turns the effect off. Its timer is expected to have been cancelled by
// a reset already.
func (e *Effect) Clear() {
	*e = Effect{}
}
