package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/h0rv/widgets/internal/calc"
)

const calcDisplayWidth = 24

// calcButtons is the keypad drawn under the display.
var calcButtons = [][]string{
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "−"},
	{"0", ".", "=", "+"},
	{"C", "DEL"},
}

// CalculatorModel is the calculator screen.
type CalculatorModel struct {
	acc *calc.Accumulator

	keymap   CalcKeyMap
	help     HelpModel
	showHelp bool

	width  int
	height int
}

// NewCalculatorModel creates a calculator in its initial state.
func NewCalculatorModel() CalculatorModel {
	km := DefaultCalcKeyMap()
	return CalculatorModel{
		acc:    calc.New(),
		keymap: km,
		help:   NewHelpModel(km),
	}
}

// Init initializes the model.
func (m CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m CalculatorModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Back) || msg.String() == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Back):
		return m, func() tea.Msg { return BackToMenuMsg{} }
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil
	}

	if cmd, ok := calc.ParseKey(msg.String()); ok {
		m.acc.Apply(cmd)
	}
	return m, nil
}

// View renders the calculator.
func (m CalculatorModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	var sections []string
	sections = append(sections, TitleStyle.Render("Calculator"))

	if m.showHelp {
		sections = append(sections, m.help.View(width))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	expr := m.acc.Expression()
	if expr == "" {
		expr = " "
	}
	display := lipgloss.JoinVertical(lipgloss.Right,
		dimStyle.Render(expr),
		m.renderOperand(),
	)
	sections = append(sections, displayStyle.Width(calcDisplayWidth).Render(display))
	sections = append(sections, m.renderKeypad())
	sections = append(sections, HelpStyle.Render(m.help.ShortView(width)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CalculatorModel) renderOperand() string {
	if m.acc.Err() != nil {
		return ErrorStyle.Render(m.acc.Display())
	}
	return m.acc.Display()
}

func (m CalculatorModel) renderKeypad() string {
	rows := make([]string, len(calcButtons))
	for i, row := range calcButtons {
		cells := make([]string, len(row))
		for j, label := range row {
			style := NormalItemStyle
			if op := m.acc.Operator(); op.Valid() && op.Symbol() == label {
				style = SelectedItemStyle
			}
			cells[j] = style.Render(centre(label, 5))
		}
		rows[i] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "\n")
}

func centre(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
