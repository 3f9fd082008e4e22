// Package game implements a two-player tic-tac-toe match.
package game

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a cell index outside 0..8.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrCellTaken indicates a move on an occupied cell.
	ErrCellTaken = errors.New("cell already taken")
	// ErrGameOver indicates a move after the game ended.
	ErrGameOver = errors.New("game is over")
)

// Mark is the content of a cell.
type Mark byte

const (
	Empty Mark = 0
	X     Mark = 'X'
	O     Mark = 'O'
)

// String returns "X", "O" or "" for an empty cell.
func (m Mark) String() string {
	if m == Empty {
		return ""
	}
	return string(rune(m))
}

// Size is the number of cells on the board.
const Size = 9

// lines lists every winning combination: rows, columns, diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Game holds the board and turn state. X always moves first.
type Game struct {
	board   [Size]Mark
	current Mark
	winner  Mark
	line    [3]int
	over    bool
	moves   int
}

// New creates a game with an empty board.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset clears the board and gives X the first move.
func (g *Game) Reset() {
	*g = Game{current: X}
}

// Play places the current player's mark on cell index and passes the turn.
func (g *Game) Play(index int) error {
	if g.over {
		return ErrGameOver
	}
	if index < 0 || index >= Size {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if g.board[index] != Empty {
		return fmt.Errorf("%w: %d", ErrCellTaken, index)
	}

	g.board[index] = g.current
	g.moves++

	if line, ok := g.winningLine(); ok {
		g.winner = g.current
		g.line = line
		g.over = true
		return nil
	}
	if g.moves == Size {
		g.over = true
		return nil
	}

	if g.current == X {
		g.current = O
	} else {
		g.current = X
	}
	return nil
}

func (g *Game) winningLine() ([3]int, bool) {
	for _, l := range lines {
		a, b, c := g.board[l[0]], g.board[l[1]], g.board[l[2]]
		if a != Empty && a == b && a == c {
			return l, true
		}
	}
	return [3]int{}, false
}

// Board returns a copy of the cells.
func (g *Game) Board() [Size]Mark {
	return g.board
}

// Current returns the player to move.
func (g *Game) Current() Mark {
	return g.current
}

// Winner returns the winning mark and line. The bool is false when nobody has won.
func (g *Game) Winner() (Mark, [3]int, bool) {
	return g.winner, g.line, g.winner != Empty
}

// Over reports whether the game has ended by a win or a draw.
func (g *Game) Over() bool {
	return g.over
}

// Draw reports whether the board filled up without a winner.
func (g *Game) Draw() bool {
	return g.over && g.winner == Empty
}

// Status returns the message shown above the board.
func (g *Game) Status() string {
	switch {
	case g.winner != Empty:
		return fmt.Sprintf("Player %s wins!", g.winner)
	case g.over:
		return "It's a draw!"
	}
	return fmt.Sprintf("Player %s's turn", g.current)
}
