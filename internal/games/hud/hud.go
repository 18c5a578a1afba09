// Package hud draws the status line and run-state overlays shared by the
// real-time games.
package hud

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// Visual characters for the status line
const (
	HeartFull  = '♥'
	HeartEmpty = '♡'
)

// Status is the text drawn on the top row.
type Status struct {
	Player string
	Snap   sim.Snapshot
	Extra  string // Game-specific suffix, e.g. an active shield
}

// DrawStatus draws player name, score, high score and lives on row 0.
func DrawStatus(dst *core.Screen, st Status) {
	left := fmt.Sprintf(" %s  Score: %d  High: %d ", st.Player, st.Snap.Score, st.Snap.High)
	dst.DrawText(1, 0, left)

	if st.Snap.MaxLives > 0 {
		x := 1 + len([]rune(left)) + 1
		for i := 0; i < st.Snap.MaxLives; i++ {
			r, c := HeartEmpty, core.ColorFrame
			if i < st.Snap.Lives {
				r, c = HeartFull, core.ColorBrightRed
			}
			dst.SetColored(x+i, 0, r, c)
		}
	}

	if st.Extra != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(st.Extra))-2, 0, st.Extra, core.ColorInfoHUD)
	}
}

// DrawOverlay draws the countdown, pause and game-over message boxes.
func DrawOverlay(dst *core.Screen, st sim.State) {
	switch st.Phase {
	case sim.PhaseCountdown:
		dst.DrawMessageBox("GET READY", fmt.Sprintf("%d", st.Remaining))
	case sim.PhasePaused:
		if st.Reason == sim.PauseFocusLost {
			dst.DrawMessageBox("PAUSED", "Focus lost  |  Press P to resume")
			return
		}
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case sim.PhaseGameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  R restart  |  Q quit", st.FinalScore))
	}
}

// CellSpan converts a world interval [lo, hi) into the inclusive range of
// cells of the given size that it covers.
func CellSpan(lo, hi, size float64) (first, last int) {
	first = int(math.Floor(lo / size))
	last = int(math.Ceil(hi/size)) - 1
	if last < first {
		last = first
	}
	return first, last
}
