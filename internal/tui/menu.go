package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// menuItem wraps a widget screen for use in bubbles/list.
type menuItem struct {
	screen AppScreen
	desc   string
}

func (i menuItem) FilterValue() string {
	return i.screen.String()
}

func (i menuItem) Title() string {
	return i.screen.String()
}

func (i menuItem) Description() string {
	return i.desc
}

var menuItems = []menuItem{
	{ScreenCalculator, "Four-function calculator"},
	{ScreenTodo, "Ordered todo list, saved between runs"},
	{ScreenSketch, "Freehand drawing with undo and PNG export"},
	{ScreenTicTacToe, "Two players, one keyboard"},
}

// menuDelegate is a custom item delegate for menu items.
type menuDelegate struct{}

func (d menuDelegate) Height() int                             { return 2 }
func (d menuDelegate) Spacing() int                            { return 1 }
func (d menuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(menuItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.Title())
	desc := i.Description()

	if index == m.Index() {
		fmt.Fprint(w, SelectedItemStyle.Render("> "+str))
		fmt.Fprint(w, "\n  "+NormalItemStyle.Render(desc))
	} else {
		fmt.Fprint(w, NormalItemStyle.Render("  "+str))
		fmt.Fprint(w, "\n  "+dimStyle.Render(desc))
	}
}

// MenuModel lists the widgets for the user to open.
type MenuModel struct {
	list list.Model
}

// NewMenuModel creates a new MenuModel.
func NewMenuModel() MenuModel {
	items := make([]list.Item, len(menuItems))
	for i, it := range menuItems {
		items[i] = it
	}

	l := list.New(items, menuDelegate{}, 80, 20)
	l.Title = "Widgets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = TitleStyle

	return MenuModel{
		list: l,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages and updates the model state.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 2)
		m.list.SetHeight(msg.Height - 2)
		return m, nil

	case themeChangedMsg:
		m.list.Styles.Title = TitleStyle
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg {
				return QuitMsg{}
			}
		case "1", "2", "3", "4":
			idx := int(msg.Runes[0] - '1')
			m.list.Select(idx)
			return m, selectScreen(menuItems[idx].screen)
		case "enter":
			if item, ok := m.list.SelectedItem().(menuItem); ok {
				return m, selectScreen(item.screen)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m MenuModel) View() string {
	return m.list.View()
}

func selectScreen(s AppScreen) tea.Cmd {
	return func() tea.Msg {
		return ScreenSelectedMsg{Screen: s}
	}
}
