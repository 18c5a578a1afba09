package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('q'), core.ActionQuit, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, true},
		{runeKey('x'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		got, isQuit := km.MapKey(tt.key)
		if got != tt.want || isQuit != tt.isQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.key.String(), got, isQuit, tt.want, tt.isQuit)
		}
	}
}

func TestHoldable(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionJump} {
		if !Holdable(a) {
			t.Errorf("%v should be holdable", a)
		}
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart, core.ActionQuit, core.ActionConfirm, core.ActionBack} {
		if Holdable(a) {
			t.Errorf("%v must be edge-triggered only", a)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('b'), MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.key); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key.String(), got, tt.want)
		}
	}
}
