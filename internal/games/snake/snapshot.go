package snake

import "time"

// Snapshot captures the board for determinism checks.
type Snapshot struct {
	Head     Point
	Length   int
	Dir      Direction
	Food     Point
	Bonus    Point // noPoint when no bonus is on the board
	Eaten    int
	Interval time.Duration
	Score    int
}

// Snapshot returns the current board snapshot.
func (g *Game) Snapshot() Snapshot {
	b := g.board
	snap := Snapshot{
		Head:   b.snake[0],
		Length: len(b.snake),
		Dir:    b.dir,
		Food:   b.food,
		Bonus:  noPoint,
		Eaten:  b.eaten,
		Score:  g.session.Score().Value(),
	}
	if b.bonus.Active() {
		snap.Bonus = b.bonusAt
	}
	snap.Interval = b.interval(g.session.Context())
	return snap
}
