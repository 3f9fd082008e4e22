package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/h0rv/widgets/internal/game"
)

func TestGameModel_NumberKeys(t *testing.T) {
	model, _ := press(NewGameModel(), "1", "4", "2", "5", "3")
	g := model.(GameModel).game

	winner, line, ok := g.Winner()
	assert.True(t, ok)
	assert.Equal(t, game.X, winner)
	assert.Equal(t, [3]int{0, 1, 2}, line)
	assert.Contains(t, model.View(), "Player X wins!")
}

func TestGameModel_CursorPlay(t *testing.T) {
	var model tea.Model = NewGameModel()
	assert.Equal(t, 4, model.(GameModel).cursor)

	model, _ = press(model, "enter")
	assert.Equal(t, game.X, model.(GameModel).game.Board()[4])

	model, _ = press(model, "k", "h", " ")
	assert.Equal(t, game.O, model.(GameModel).game.Board()[0])

	// Edges clamp
	model, _ = press(model, "k", "h")
	assert.Equal(t, 0, model.(GameModel).cursor)
	model, _ = press(model, "j", "j", "j", "l", "l", "l")
	assert.Equal(t, 8, model.(GameModel).cursor)
}

func TestGameModel_TakenCell(t *testing.T) {
	model, _ := press(NewGameModel(), "5", "5")
	assert.Contains(t, model.View(), "That cell is taken")
	assert.Equal(t, game.O, model.(GameModel).game.Current())
}

func TestGameModel_ResetAndGameOver(t *testing.T) {
	model, _ := press(NewGameModel(), "1", "4", "2", "5", "3", "9")
	assert.Contains(t, model.View(), "Game over")

	model, _ = press(model, "r")
	g := model.(GameModel).game
	assert.False(t, g.Over())
	assert.Equal(t, "Player X's turn", g.Status())
}

func TestGameModel_Back(t *testing.T) {
	_, cmd := press(NewGameModel(), "esc")
	assert.Equal(t, BackToMenuMsg{}, msgOf(cmd))
}
