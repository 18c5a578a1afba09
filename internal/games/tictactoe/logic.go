package tictactoe

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/arcade-hub/internal/config"
)

// Mark is the content of a square.
type Mark uint8

const (
	Empty Mark = iota
	X          // Human
	O          // Computer
)

func (m Mark) String() string {
	switch m {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return " "
	}
}

// Board is the 3x3 grid in row-major order.
type Board [9]Mark

// lines are the eight winning rows, columns and diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// prioritySquares are the centre and corners, preferred when minimax ties.
var prioritySquares = []int{4, 0, 2, 6, 8}

// Winner returns the mark that completed a line, or Empty.
func (b *Board) Winner() Mark {
	for _, l := range lines {
		if m := b[l[0]]; m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m
		}
	}
	return Empty
}

// Full reports whether every square is taken.
func (b *Board) Full() bool {
	return !slices.Contains(b[:], Empty)
}

// Free returns the indexes of empty squares.
func (b *Board) Free() []int {
	var free []int
	for i, m := range b {
		if m == Empty {
			free = append(free, i)
		}
	}
	return free
}

// minimax scores the board from O's point of view. Faster wins score higher.
func minimax(b *Board, depth int, maximizing bool) int {
	switch b.Winner() {
	case O:
		return 10 - depth
	case X:
		return depth - 10
	}
	if b.Full() {
		return 0
	}

	best, mark := math.MinInt, O
	if !maximizing {
		best, mark = math.MaxInt, X
	}
	for i := range b {
		if b[i] != Empty {
			continue
		}
		b[i] = mark
		score := minimax(b, depth+1, !maximizing)
		b[i] = Empty
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// completes returns the first free square that wins the board for m, or -1.
func completes(b *Board, m Mark) int {
	for _, i := range b.Free() {
		b[i] = m
		won := b.Winner() == m
		b[i] = Empty
		if won {
			return i
		}
	}
	return -1
}

// BestMove picks the computer's square, or -1 when the board is full.
// Easy plays randomly, normal plays randomly with probability normalRandom
// and strategically otherwise, hard always plays strategically.
func BestMove(rng *rand.Rand, board Board, d config.Difficulty, normalRandom float64) int {
	free := board.Free()
	if len(free) == 0 {
		return -1
	}
	switch d {
	case config.DifficultyEasy:
		return free[rng.Intn(len(free))]
	case config.DifficultyNormal:
		if rng.Float64() < normalRandom {
			return free[rng.Intn(len(free))]
		}
	}
	return strategicMove(&board)
}

// strategicMove wins if possible, blocks if needed and otherwise runs minimax
// with a half-point bonus for the centre and corners.
func strategicMove(b *Board) int {
	if i := completes(b, O); i >= 0 {
		return i
	}
	if i := completes(b, X); i >= 0 {
		return i
	}

	best, move := math.Inf(-1), -1
	for _, i := range b.Free() {
		b[i] = O
		score := float64(minimax(b, 0, false))
		b[i] = Empty
		if slices.Contains(prioritySquares, i) {
			score += 0.5
		}
		if score > best {
			best, move = score, i
		}
	}
	return move
}
