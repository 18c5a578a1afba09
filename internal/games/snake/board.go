package snake

import (
	"time"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/sim"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite reports whether d and other point in opposite directions.
func (d Direction) Opposite(other Direction) bool {
	return (d == DirUp && other == DirDown) ||
		(d == DirDown && other == DirUp) ||
		(d == DirLeft && other == DirRight) ||
		(d == DirRight && other == DirLeft)
}

// Point represents a cell on the board.
type Point struct {
	X, Y int
}

// noPoint marks food that could not be placed on a full board.
var noPoint = Point{X: -1, Y: -1}

// board is the snake's simulation variant. It moves in whole cells on a
// fixed interval of world time instead of scrolling.
type board struct {
	cfg  config.SnakeConfig
	mode config.SnakeMode
	base time.Duration // Move interval before any speed-up

	snake    []Point // Head at index 0
	dir      Direction
	next     Direction // Buffered direction for the next move
	nextMove time.Duration
	food     Point
	bonus    sim.Effect // Active while the bonus food is on the board
	bonusAt  Point
	eaten    int  // Regular food eaten this run
	bonusDue bool // Set when the bonus should appear on the next spawn pass
	dead     bool
	full     bool // No free cell left for food
}

func newBoard(cfg config.SnakeConfig, mode config.SnakeMode, d config.Difficulty) *board {
	return &board{
		cfg:  cfg,
		mode: mode,
		base: time.Duration(cfg.Speeds.For(d)) * time.Millisecond,
	}
}

func (b *board) Reset(ctx *sim.Context) {
	cx, cy := b.cfg.Board.Cols/2, b.cfg.Board.Rows/2
	b.snake = b.snake[:0]
	for i := range b.cfg.Board.InitialLength {
		b.snake = append(b.snake, Point{X: cx - i, Y: cy})
	}
	b.dir = DirRight
	b.next = DirRight
	b.bonus.Clear()
	b.bonusAt = noPoint
	b.eaten = 0
	b.bonusDue = false
	b.dead = false
	b.full = false
	b.food = noPoint
	b.nextMove = ctx.Now + b.interval(ctx)
	b.food = b.freeCell(ctx)
}

// interval returns the current move interval. Modern mode speeds up with
// every SpeedUpEvery points down to MinInterval.
func (b *board) interval(ctx *sim.Context) time.Duration {
	if b.mode != config.SnakeModern {
		return b.base
	}
	m := b.cfg.Modern
	level := ctx.Score.Value() / m.SpeedUpEvery
	d := b.base - time.Duration(level*m.SpeedUpStep)*time.Millisecond
	return max(d, time.Duration(m.MinInterval)*time.Millisecond)
}

func (b *board) Step(ctx *sim.Context, _ float64) {
	switch {
	case ctx.Input.Has(core.ActionUp):
		b.next = DirUp
	case ctx.Input.Has(core.ActionDown):
		b.next = DirDown
	case ctx.Input.Has(core.ActionLeft):
		b.next = DirLeft
	case ctx.Input.Has(core.ActionRight):
		b.next = DirRight
	}

	for !b.dead && !b.full && ctx.Now >= b.nextMove {
		b.move(ctx)
		b.nextMove += b.interval(ctx)
	}
}

// move advances the snake one cell and resolves walls, itself and food.
func (b *board) move(ctx *sim.Context) {
	// Prevent instant reversal
	if !b.next.Opposite(b.dir) {
		b.dir = b.next
	}

	head := b.snake[0]
	switch b.dir {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}

	cols, rows := b.cfg.Board.Cols, b.cfg.Board.Rows
	if head.X < 0 || head.X >= cols || head.Y < 0 || head.Y >= rows {
		if b.mode != config.SnakeModern {
			b.die(ctx)
			return
		}
		head.X = (head.X + cols) % cols
		head.Y = (head.Y + rows) % rows
	}

	ateFood := head == b.food
	ateBonus := b.bonus.Active() && head == b.bonusAt
	growing := ateFood || ateBonus

	// The tail moves out of the way unless the snake grows
	checkLen := len(b.snake)
	if !growing {
		checkLen--
	}
	for _, seg := range b.snake[:checkLen] {
		if seg == head {
			b.die(ctx)
			return
		}
	}

	if growing {
		b.snake = append(b.snake, Point{})
	}
	copy(b.snake[1:], b.snake)
	b.snake[0] = head

	if ateBonus {
		ctx.Score.Add(b.cfg.Food.RewardPoints)
		b.bonus.Cancel(ctx.Timers)
		b.bonusAt = noPoint
	}
	if ateFood {
		ctx.Score.Add(b.cfg.Food.Points)
		b.eaten++
		b.food = b.freeCell(ctx)
		if b.food == noPoint {
			b.full = true
		}
		if b.eaten%b.cfg.Food.RewardEvery == 0 && !b.bonus.Active() {
			b.bonusDue = true
		}
	}
}

func (b *board) die(ctx *sim.Context) {
	b.dead = true
	ctx.HitHazard(nil)
}

// occupied reports whether p holds a snake segment or food.
func (b *board) occupied(p Point) bool {
	if p == b.food || (b.bonus.Active() && p == b.bonusAt) {
		return true
	}
	for _, seg := range b.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// freeCell picks a random empty cell, or noPoint when the board is full.
func (b *board) freeCell(ctx *sim.Context) Point {
	var empty []Point
	for y := range b.cfg.Board.Rows {
		for x := range b.cfg.Board.Cols {
			if p := (Point{X: x, Y: y}); !b.occupied(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		return noPoint
	}
	return empty[ctx.RNG.Intn(len(empty))]
}

// Contacts are resolved per move inside Step.
func (b *board) CheckCollisions(*sim.Context) {}

func (b *board) SpawnIfDue(ctx *sim.Context, _ time.Duration) {
	if !b.bonusDue {
		return
	}
	b.bonusDue = false
	p := b.freeCell(ctx)
	if p == noPoint {
		return
	}
	b.bonusAt = p
	b.bonus.Activate(ctx.Timers, time.Duration(b.cfg.Food.RewardSeconds)*time.Second)
}

func (b *board) IsTerminal(*sim.Context) bool {
	return b.dead || b.full
}

// Scoring is per food, not per distance.
func (b *board) ScrollSpeed() float64 {
	return 0
}
