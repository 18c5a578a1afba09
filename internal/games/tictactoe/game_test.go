package tictactoe

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

const frame = 20 * time.Millisecond

func newGame(t *testing.T, d config.Difficulty) (*Game, *core.ManualClock) {
	t.Helper()
	s := config.DefaultSettings()
	s.PlayerName = "ada"
	s.Difficulty = d
	g := New(s, config.DefaultTicTacToeConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99})

	clock := core.NewManualClock(time.Unix(0, 0))
	g.Step(clock.Now(), core.NewInputFrame())
	if g.session.State().Phase != sim.PhaseRunning {
		t.Fatalf("phase = %v, want running", g.session.State())
	}
	return g, clock
}

func pressed(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// wait advances world time by d with no input.
func wait(g *Game, clock *core.ManualClock, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		g.Step(clock.Advance(frame), core.NewInputFrame())
	}
}

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		name string
		keys []core.Action
		want int
	}{
		{"starts in the centre", nil, 4},
		{"up", []core.Action{core.ActionUp}, 1},
		{"clamps at the top", []core.Action{core.ActionUp, core.ActionUp}, 1},
		{"left then down", []core.Action{core.ActionLeft, core.ActionDown}, 6},
		{"clamps right", []core.Action{core.ActionRight, core.ActionRight, core.ActionRight}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clock := newGame(t, config.DifficultyHard)
			for _, k := range tt.keys {
				g.Step(clock.Advance(frame), pressed(k))
			}
			if g.match.cursor != tt.want {
				t.Errorf("cursor = %d, want %d", g.match.cursor, tt.want)
			}
		})
	}
}

func TestComputerRepliesAfterThinking(t *testing.T) {
	g, clock := newGame(t, config.DifficultyHard)

	g.Step(clock.Advance(frame), pressed(core.ActionConfirm))
	if g.match.board[4] != X || g.match.turn != O {
		t.Fatalf("after placing: board=%v turn=%v", g.match.board, g.match.turn)
	}

	wait(g, clock, 200*time.Millisecond)
	if len(g.match.board.Free()) != 8 {
		t.Fatal("computer replied before the think delay")
	}

	wait(g, clock, 200*time.Millisecond)
	if len(g.match.board.Free()) != 7 || g.match.turn != X {
		t.Errorf("computer did not reply: board=%v turn=%v", g.match.board, g.match.turn)
	}
}

func TestTakenSquareIgnored(t *testing.T) {
	g, clock := newGame(t, config.DifficultyHard)
	g.match.board[4] = O

	g.Step(clock.Advance(frame), pressed(core.ActionConfirm))
	if g.match.board[4] != O || g.match.turn != X {
		t.Errorf("placing on a taken square changed the board: %v", g.match.board)
	}
}

func TestWinScoresAndStartsNewRound(t *testing.T) {
	g, clock := newGame(t, config.DifficultyHard)
	g.match.board = parse("xx." + "oo." + "...")
	g.match.cursor = 2

	g.Step(clock.Advance(frame), pressed(core.ActionConfirm))
	if !g.match.roundOver || g.match.result != X {
		t.Fatalf("round not won: %+v", g.match)
	}
	if got := g.session.Score().Value(); got != 1 {
		t.Errorf("score = %d, want 1", got)
	}

	wait(g, clock, 1300*time.Millisecond)
	if g.match.roundOver || len(g.match.board.Free()) != 9 {
		t.Errorf("new round did not start: %+v", g.match)
	}
	if g.State().GameOver || g.session.Score().Value() != 1 {
		t.Errorf("state after new round = %+v", g.State())
	}
}

func TestLossEndsRun(t *testing.T) {
	g, clock := newGame(t, config.DifficultyHard)
	g.match.board = parse("oo." + "xx." + "...")
	g.match.cursor = 8

	g.Step(clock.Advance(frame), pressed(core.ActionConfirm))
	wait(g, clock, 500*time.Millisecond)

	if g.match.board[2] != O {
		t.Fatalf("computer missed the win: %v", g.match.board)
	}
	st := g.State()
	if !st.GameOver || st.Score != 0 {
		t.Errorf("state = %+v, want game over with score 0", st)
	}
}

func TestDrawRestartsBoard(t *testing.T) {
	g, clock := newGame(t, config.DifficultyHard)
	g.match.board = parse("xox" + "xoo" + "ox.")
	g.match.cursor = 8

	g.Step(clock.Advance(frame), pressed(core.ActionConfirm))
	if !g.match.roundOver || g.match.result != Empty {
		t.Fatalf("expected a draw: %+v", g.match)
	}

	wait(g, clock, 1300*time.Millisecond)
	if g.match.roundOver || len(g.match.board.Free()) != 9 {
		t.Errorf("board not cleared after draw: %+v", g.match)
	}
	if g.State().GameOver {
		t.Error("a draw must not end the run")
	}
}

func TestPauseHoldsComputer(t *testing.T) {
	g, clock := newGame(t, config.DifficultyHard)
	g.Step(clock.Advance(frame), pressed(core.ActionConfirm))
	g.Step(clock.Advance(frame), pressed(core.ActionPause))

	wait(g, clock, 2*time.Second)
	if len(g.match.board.Free()) != 8 {
		t.Fatal("computer moved while paused")
	}

	g.Step(clock.Advance(frame), pressed(core.ActionPause))
	wait(g, clock, 400*time.Millisecond)
	if len(g.match.board.Free()) != 7 {
		t.Error("computer did not move after resume")
	}
}

func TestRender(t *testing.T) {
	g, _ := newGame(t, config.DifficultyNormal)
	g.match.board[0] = X
	g.match.board[8] = O
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cx, cy := g.squareCenter(0)
	if r := screen.Get(cx, cy); r != 'X' {
		t.Errorf("square 0 = %q, want X", r)
	}
	cx, cy = g.squareCenter(8)
	if r := screen.Get(cx, cy); r != 'O' {
		t.Errorf("square 8 = %q, want O", r)
	}
	cx, cy = g.squareCenter(4)
	if screen.Get(cx-2, cy) != '[' || screen.Get(cx+2, cy) != ']' {
		t.Error("cursor brackets missing around the centre")
	}
	if !strings.Contains(screen.String(), "ada's turn") {
		t.Error("turn caption missing")
	}
}
