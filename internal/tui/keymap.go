package tui

import "github.com/charmbracelet/bubbles/key"

// Shared bindings.
var (
	helpBinding = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	)
	backBinding = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to menu"),
	)
	quitBinding = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
)

// TodoKeyMap defines the key bindings for the todo list.
type TodoKeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Add            key.Binding
	Edit           key.Binding
	Toggle         key.Binding
	Delete         key.Binding
	ClearCompleted key.Binding
	MoveUp         key.Binding
	MoveDown       key.Binding
	NextFilter     key.Binding
	PrevFilter     key.Binding
	Search         key.Binding
	Theme          key.Binding
	Help           key.Binding
	Back           key.Binding
	Quit           key.Binding
	Confirm        key.Binding
	Cancel         key.Binding
}

// DefaultTodoKeyMap returns the default todo key bindings.
func DefaultTodoKeyMap() TodoKeyMap {
	return TodoKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous item"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next item"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add item"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit item"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete item"),
		),
		ClearCompleted: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear completed"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move item up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move item down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "previous filter"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "fuzzy search"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Help: helpBinding,
		Back: backBinding,
		Quit: quitBinding,
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k TodoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Help, k.Back}
}

// FullHelp returns key bindings for the expanded help view.
func (k TodoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Add, k.Edit, k.Toggle, k.Delete, k.ClearCompleted},
		{k.NextFilter, k.PrevFilter, k.Search, k.Theme},
		{k.Help, k.Back, k.Quit},
	}
}

// CalcKeyMap defines the key bindings for the calculator. Digit and
// operator keys are translated by calc.ParseKey; these bindings document them.
type CalcKeyMap struct {
	Digits   key.Binding
	Operator key.Binding
	Equals   key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultCalcKeyMap returns the default calculator key bindings.
func DefaultCalcKeyMap() CalcKeyMap {
	return CalcKeyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "enter number"),
		),
		Operator: key.NewBinding(
			key.WithKeys("+", "-", "*", "/", "x"),
			key.WithHelp("+ - * /", "choose operator"),
		),
		Equals: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("=/enter", "compute"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete digit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "clear"),
		),
		Help: helpBinding,
		Back: backBinding,
		Quit: quitBinding,
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k CalcKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Help, k.Back}
}

// FullHelp returns key bindings for the expanded help view.
func (k CalcKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operator, k.Equals},
		{k.Delete, k.Clear},
		{k.Help, k.Back, k.Quit},
	}
}

// SketchKeyMap defines the key bindings for the sketch pad.
type SketchKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Pen      key.Binding
	Eraser   key.Binding
	Color    key.Binding
	Custom   key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Clear    key.Binding
	Export   key.Binding
	OpenLast key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultSketchKeyMap returns the default sketch key bindings.
func DefaultSketchKeyMap() SketchKeyMap {
	return SketchKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor right"),
		),
		Pen: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pen down/up"),
		),
		Eraser: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "pen/eraser"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next colour"),
		),
		Custom: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "custom colour"),
		),
		Bigger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger brush"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "smaller brush"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("r", "ctrl+y"),
			key.WithHelp("r", "redo"),
		),
		Clear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear pad"),
		),
		Export: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "export png"),
		),
		OpenLast: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open last export"),
		),
		Help: helpBinding,
		Back: backBinding,
		Quit: quitBinding,
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k SketchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pen, k.Eraser, k.Color, k.Undo, k.Help, k.Back}
}

// FullHelp returns key bindings for the expanded help view.
func (k SketchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pen, k.Eraser, k.Color, k.Custom, k.Bigger, k.Smaller},
		{k.Undo, k.Redo, k.Clear, k.Export, k.OpenLast},
		{k.Help, k.Back, k.Quit},
	}
}

// GameKeyMap defines the key bindings for tic-tac-toe.
type GameKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Play  key.Binding
	Cell  key.Binding
	Reset key.Binding
	Help  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// DefaultGameKeyMap returns the default tic-tac-toe key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place mark"),
		),
		Cell: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "place on cell"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Help: helpBinding,
		Back: backBinding,
		Quit: quitBinding,
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Cell, k.Reset, k.Help, k.Back}
}

// FullHelp returns key bindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Play, k.Cell, k.Reset},
		{k.Help, k.Back, k.Quit},
	}
}
