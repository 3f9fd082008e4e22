package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, g.Play(c))
	}
}

func TestNew(t *testing.T) {
	g := New()
	assert.Equal(t, X, g.Current())
	assert.False(t, g.Over())
	assert.Equal(t, "Player X's turn", g.Status())
}

func TestPlay_Alternates(t *testing.T) {
	g := New()
	play(t, g, 4)
	assert.Equal(t, O, g.Current())
	assert.Equal(t, X, g.Board()[4])

	play(t, g, 0)
	assert.Equal(t, X, g.Current())
	assert.Equal(t, "Player X's turn", g.Status())
}

func TestPlay_Errors(t *testing.T) {
	g := New()
	play(t, g, 4)

	assert.ErrorIs(t, g.Play(4), ErrCellTaken)
	assert.ErrorIs(t, g.Play(-1), ErrOutOfRange)
	assert.ErrorIs(t, g.Play(9), ErrOutOfRange)

	// Failed moves do not pass the turn
	assert.Equal(t, O, g.Current())
}

func TestWin(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		want  Mark
		line  [3]int
	}{
		{"row", []int{0, 3, 1, 4, 2}, X, [3]int{0, 1, 2}},
		{"column", []int{0, 1, 3, 2, 6}, X, [3]int{0, 3, 6}},
		{"diagonal", []int{0, 2, 4, 1, 8}, X, [3]int{0, 4, 8}},
		{"anti-diagonal for O", []int{0, 2, 1, 4, 8, 6}, O, [3]int{2, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			play(t, g, tt.moves...)

			winner, line, ok := g.Winner()
			require.True(t, ok)
			assert.Equal(t, tt.want, winner)
			assert.Equal(t, tt.line, line)
			assert.True(t, g.Over())
			assert.False(t, g.Draw())
			assert.Equal(t, "Player "+tt.want.String()+" wins!", g.Status())

			assert.ErrorIs(t, g.Play(5), ErrGameOver)
		})
	}
}

func TestDraw(t *testing.T) {
	g := New()
	// X O X
	// X O O
	// O X X
	play(t, g, 0, 1, 2, 4, 3, 5, 7, 6, 8)

	_, _, ok := g.Winner()
	assert.False(t, ok)
	assert.True(t, g.Draw())
	assert.Equal(t, "It's a draw!", g.Status())
}

func TestWinOnLastMove(t *testing.T) {
	g := New()
	// X O X
	// O O X
	// O X X  (X completes the right column with the ninth move)
	play(t, g, 0, 1, 2, 3, 5, 4, 7, 6, 8)

	winner, line, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, X, winner)
	assert.Equal(t, [3]int{2, 5, 8}, line)
	assert.False(t, g.Draw())
}

func TestReset(t *testing.T) {
	g := New()
	play(t, g, 0, 3, 1, 4, 2)
	g.Reset()

	assert.False(t, g.Over())
	assert.Equal(t, X, g.Current())
	assert.Equal(t, [Size]Mark{}, g.Board())
}
