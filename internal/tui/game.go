package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/h0rv/widgets/internal/game"
)

// GameModel is the tic-tac-toe screen.
type GameModel struct {
	game *game.Game

	keymap   GameKeyMap
	help     HelpModel
	showHelp bool

	cursor int
	notice string

	width  int
	height int
}

// NewGameModel creates a tic-tac-toe screen with a fresh board.
func NewGameModel() GameModel {
	km := DefaultGameKeyMap()
	return GameModel{
		game:   game.New(),
		keymap: km,
		help:   NewHelpModel(km),
		cursor: 4,
	}
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m GameModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Back) || msg.String() == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keymap.Back):
		return m, func() tea.Msg { return BackToMenuMsg{} }
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.Up):
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < 6 {
			m.cursor += 3
		}
	case key.Matches(msg, m.keymap.Left):
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Right):
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Play):
		m.play(m.cursor)
	case key.Matches(msg, m.keymap.Cell):
		m.cursor = int(msg.Runes[0] - '1')
		m.play(m.cursor)
	case key.Matches(msg, m.keymap.Reset):
		m.game.Reset()
		m.cursor = 4
	}
	return m, nil
}

func (m *GameModel) play(index int) {
	err := m.game.Play(index)
	switch {
	case errors.Is(err, game.ErrCellTaken):
		m.notice = "That cell is taken"
	case errors.Is(err, game.ErrGameOver):
		m.notice = "Game over. Press r for a new game"
	}
}

// View renders the board.
func (m GameModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	title := TitleStyle.Render("Tic-Tac-Toe")
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.help.View(width))
	}

	status := NormalItemStyle.Render(m.game.Status())
	if m.game.Over() {
		status = SelectedItemStyle.Render(m.game.Status())
	}

	sections := []string{title, status, "", m.renderBoard()}
	if m.notice != "" {
		sections = append(sections, ErrorStyle.Render(m.notice))
	}
	sections = append(sections, HelpStyle.Render(m.help.ShortView(width)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m GameModel) renderBoard() string {
	board := m.game.Board()
	_, line, won := m.game.Winner()
	winning := map[int]bool{}
	if won {
		for _, i := range line {
			winning[i] = true
		}
	}

	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			i := r*3 + c
			mark := board[i].String()
			if mark == "" {
				mark = dimStyle.Render(string(rune('1' + i)))
			}
			label := " " + mark + " "
			switch {
			case winning[i]:
				label = badgeStyle.Render(board[i].String())
			case i == m.cursor && !m.game.Over():
				label = SelectedItemStyle.Render("[" + board[i].String() + strings.Repeat(" ", 1-len(board[i].String())) + "]")
			}
			cells[c] = label
		}
		rows[r] = strings.Join(cells, dimStyle.Render("│"))
	}
	sep := dimStyle.Render("───┼───┼───")
	return strings.Join([]string{rows[0], sep, rows[1], sep, rows[2]}, "\n")
}
