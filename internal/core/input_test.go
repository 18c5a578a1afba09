package core

import (
	"testing"
	"time"
)

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	if !f.Has(ActionJump) {
		t.Error("Has(Jump) should be true after Set")
	}
	if f.Has(ActionPause) {
		t.Error("Has(Pause) should be false")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop pressed actions")
	}
}

func TestInputFramePressCountsAsHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	if !f.IsHeld(ActionLeft) {
		t.Error("a press in this frame should count as held")
	}
}

func TestHeldKeysWindow(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHeldKeys(100 * time.Millisecond)
	h.Press(ActionLeft, start)

	f := NewInputFrame()
	h.Fill(&f, start.Add(50*time.Millisecond))
	if !f.IsHeld(ActionLeft) {
		t.Fatal("Left should be held within the hold window")
	}

	f = NewInputFrame()
	h.Fill(&f, start.Add(150*time.Millisecond))
	if f.IsHeld(ActionLeft) {
		t.Error("Left should expire after the hold window")
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHeldKeys(100 * time.Millisecond)
	h.Press(ActionRight, start)
	h.Press(ActionRight, start.Add(80*time.Millisecond))

	f := NewInputFrame()
	h.Fill(&f, start.Add(150*time.Millisecond))
	if !f.IsHeld(ActionRight) {
		t.Error("a repeat should refresh the hold")
	}

	h.Reset()
	f = NewInputFrame()
	h.Fill(&f, start.Add(151*time.Millisecond))
	if f.IsHeld(ActionRight) {
		t.Error("Reset should drop the key immediately")
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewManualClock(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}
	if got := c.Advance(time.Second); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Advance() = %v", got)
	}
}

func TestInputFrameRepeat(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.SetHeld(ActionLeft)
	r := f.Repeat()

	tests := []struct {
		name      string
		action    Action
		has, held bool
	}{
		{"press becomes held", ActionJump, false, true},
		{"hold carries over", ActionLeft, false, true},
		{"untouched stays off", ActionRight, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Has(tt.action); got != tt.has {
				t.Errorf("Has = %v, want %v", got, tt.has)
			}
			if got := r.IsHeld(tt.action); got != tt.held {
				t.Errorf("IsHeld = %v, want %v", got, tt.held)
			}
		})
	}
	if !f.Has(ActionJump) {
		t.Error("Repeat changed the original frame")
	}
}
