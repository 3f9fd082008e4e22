package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"

	"github.com/h0rv/widgets/internal/domain"
	"github.com/h0rv/widgets/internal/store"
)

// Layout constants
const (
	todoChromeLines = 6 // title, tabs, input, footer, help, spacing
	checkboxWidth   = 4
)

// todoMode is the input mode of the todo screen.
type todoMode int

const (
	todoBrowse todoMode = iota
	todoAdding
	todoEditing
	todoSearching
)

// TodoModel is the todo list screen.
type TodoModel struct {
	// Dependencies
	store *store.Store

	// UI components
	keymap      TodoKeyMap
	help        HelpModel
	textInput   textinput.Model
	searchInput textinput.Model

	// List state
	filter    domain.Filter
	search    string
	visible   []domain.Item
	selected  int
	offset    int
	editingID string

	// View state
	mode     todoMode
	width    int
	height   int
	showHelp bool
	theme    string
	toast    string
}

// NewTodoModel creates the todo screen over s.
func NewTodoModel(s *store.Store, theme string) TodoModel {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = "> "
	ti.CharLimit = 500

	si := textinput.New()
	si.Placeholder = "Search..."
	si.Prompt = "/ "

	km := DefaultTodoKeyMap()
	m := TodoModel{
		store:       s,
		keymap:      km,
		help:        NewHelpModel(km),
		textInput:   ti,
		searchInput: si,
		theme:       theme,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m TodoModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = max(10, msg.Width-4)
		m.adjustScroll()
		return m, nil

	case itemsReloadedMsg:
		m.refresh()
		return m, nil

	case themeChangedMsg:
		m.theme = msg.theme
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m TodoModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Cancel) || msg.String() == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	switch m.mode {
	case todoAdding, todoEditing:
		return m.handleInput(msg)
	case todoSearching:
		return m.handleSearch(msg)
	}

	m.toast = ""

	switch {
	case key.Matches(msg, m.keymap.Back):
		if m.search != "" {
			m.search = ""
			m.searchInput.SetValue("")
			m.refresh()
			return m, nil
		}
		return m, func() tea.Msg { return BackToMenuMsg{} }
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keymap.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keymap.Add):
		m.mode = todoAdding
		m.textInput.SetValue("")
		m.textInput.Placeholder = "What needs to be done?"
		return m, m.textInput.Focus()
	case key.Matches(msg, m.keymap.Edit):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		m.mode = todoEditing
		m.editingID = item.ID
		m.textInput.SetValue(item.Text)
		m.textInput.CursorEnd()
		return m, m.textInput.Focus()
	case key.Matches(msg, m.keymap.Toggle):
		if item, ok := m.selectedItem(); ok {
			m.store.Toggle(item.ID)
			m.refresh()
		}
	case key.Matches(msg, m.keymap.Delete):
		if item, ok := m.selectedItem(); ok {
			m.store.Remove(item.ID)
			m.refresh()
		}
	case key.Matches(msg, m.keymap.ClearCompleted):
		if n := m.store.ClearCompleted(); n > 0 {
			m.toast = fmt.Sprintf("Cleared %d completed", n)
		}
		m.refresh()
	case key.Matches(msg, m.keymap.MoveUp):
		m.moveItem(-1)
	case key.Matches(msg, m.keymap.MoveDown):
		m.moveItem(1)
	case key.Matches(msg, m.keymap.NextFilter):
		m.setFilter(domain.Filter((int(m.filter) + 1) % len(domain.Filters)))
	case key.Matches(msg, m.keymap.PrevFilter):
		m.setFilter(domain.Filter((int(m.filter) + len(domain.Filters) - 1) % len(domain.Filters)))
	case key.Matches(msg, m.keymap.Search):
		m.mode = todoSearching
		m.searchInput.SetValue(m.search)
		return m, m.searchInput.Focus()
	case key.Matches(msg, m.keymap.Theme):
		return m, func() tea.Msg { return ToggleThemeMsg{} }
	}

	if err := m.store.LastError(); err != nil {
		m.toast = fmt.Sprintf("Save failed: %v", err)
	}
	return m, nil
}

// handleInput handles keys while adding or editing an item.
func (m TodoModel) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		text := m.textInput.Value()
		if m.mode == todoAdding {
			if _, ok := m.store.Add(text); !ok {
				m.toast = "Todo text cannot be empty"
				return m, nil
			}
			// Keep the new item visible
			if m.filter == domain.FilterCompleted {
				m.filter = domain.FilterAll
			}
			m.search = ""
			m.refresh()
			m.selected = len(m.visible) - 1
			m.adjustScroll()
		} else {
			if strings.TrimSpace(text) == "" {
				m.toast = "Todo text cannot be empty"
			} else {
				m.store.Edit(m.editingID, text)
			}
			m.refresh()
		}
		m.mode = todoBrowse
		m.editingID = ""
		m.textInput.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.Cancel):
		m.mode = todoBrowse
		m.editingID = ""
		m.textInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// handleSearch handles keys while the search box is focused. The list
// narrows on every keystroke.
func (m TodoModel) handleSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		m.mode = todoBrowse
		m.searchInput.Blur()
		return m, nil
	case key.Matches(msg, m.keymap.Cancel):
		m.mode = todoBrowse
		m.search = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.search = m.searchInput.Value()
	m.refresh()
	return m, cmd
}

func (m *TodoModel) setFilter(f domain.Filter) {
	m.filter = f
	m.selected = 0
	m.offset = 0
	m.refresh()
}

// refresh rebuilds the visible list from the store, keeping the selection
// on the same item when it is still visible.
func (m *TodoModel) refresh() {
	var keepID string
	if item, ok := m.selectedItem(); ok {
		keepID = item.ID
	}

	m.visible = m.store.FilteredView(m.filter)
	if m.search != "" {
		texts := make([]string, len(m.visible))
		for i, item := range m.visible {
			texts[i] = item.Text
		}
		matches := fuzzy.Find(m.search, texts)
		found := make([]domain.Item, len(matches))
		for i, match := range matches {
			found[i] = m.visible[match.Index]
		}
		m.visible = found
	}

	for i, item := range m.visible {
		if item.ID == keepID {
			m.selected = i
			break
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.adjustScroll()
}

func (m *TodoModel) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selected = max(0, min(len(m.visible)-1, m.selected+delta))
	m.adjustScroll()
}

// moveItem swaps the selected item with its neighbour in the current view
// and commits the new view order through Reorder. Items hidden by the
// filter move to the end.
func (m *TodoModel) moveItem(delta int) {
	if m.search != "" {
		m.toast = "Clear the search to reorder"
		return
	}
	target := m.selected + delta
	if target < 0 || target >= len(m.visible) {
		return
	}

	ids := make([]string, len(m.visible))
	for i, item := range m.visible {
		ids[i] = item.ID
	}
	ids[m.selected], ids[target] = ids[target], ids[m.selected]
	m.store.Reorder(ids)

	// refresh keeps the selection on the moved item
	m.refresh()
}

func (m TodoModel) selectedItem() (domain.Item, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return domain.Item{}, false
	}
	return m.visible[m.selected], true
}

func (m TodoModel) listHeight() int {
	height := m.height
	if height == 0 {
		height = 24
	}
	return max(3, height-todoChromeLines)
}

func (m *TodoModel) adjustScroll() {
	h := m.listHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the todo screen.
func (m TodoModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	var sections []string
	sections = append(sections, m.renderHeader(width))
	sections = append(sections, m.renderTabs())

	switch m.mode {
	case todoAdding, todoEditing:
		label := "New todo"
		if m.mode == todoEditing {
			label = "Edit todo"
		}
		sections = append(sections, PromptStyle.Render(label)+" "+m.textInput.View())
	case todoSearching:
		sections = append(sections, m.searchInput.View())
	default:
		if m.search != "" {
			sections = append(sections, dimStyle.Render(fmt.Sprintf("search: %q (esc to clear)", m.search)))
		}
	}

	if m.showHelp {
		sections = append(sections, m.help.View(width))
	} else {
		sections = append(sections, m.renderList(width))
	}

	sections = append(sections, m.renderFooter(width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TodoModel) renderHeader(width int) string {
	title := TitleStyle.MarginBottom(0).Render("Todo")
	right := dimStyle.Render(m.theme + " theme")
	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m TodoModel) renderTabs() string {
	tabs := make([]string, len(domain.Filters))
	for i, f := range domain.Filters {
		label := strings.ToUpper(f.String()[:1]) + f.String()[1:]
		if f == m.filter {
			tabs[i] = badgeStyle.Render(label)
		} else {
			tabs[i] = dimStyle.Render(" " + label + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m TodoModel) renderList(width int) string {
	if len(m.visible) == 0 {
		msg := "Nothing to do. Press 'a' to add an item."
		switch {
		case m.search != "":
			msg = "No items match the search."
		case m.filter == domain.FilterCompleted:
			msg = "No completed items."
		case m.filter == domain.FilterActive && m.store.Len() > 0:
			msg = "All done!"
		}
		return lipgloss.Place(width, m.listHeight(), lipgloss.Center, lipgloss.Center, dimStyle.Render(msg))
	}

	end := min(len(m.visible), m.offset+m.listHeight())
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderItem(m.visible[i], i == m.selected, width))
	}
	return strings.Join(lines, "\n")
}

// renderItem renders one row, truncating long text to the screen width.
func (m TodoModel) renderItem(item domain.Item, selected bool, width int) string {
	box := "[ ]"
	if item.Completed {
		box = "[x]"
	}
	cursor := "  "
	if selected {
		cursor = "> "
	}

	maxText := width - len(cursor) - checkboxWidth
	if maxText < 1 {
		maxText = 1
	}
	text := truncate.StringWithTail(item.Text, uint(maxText), "…")

	switch {
	case selected:
		return SelectedItemStyle.Render(cursor + box + " " + text)
	case item.Completed:
		return dimStyle.Render(cursor+box+" ") + completedStyle.Render(text)
	default:
		return NormalItemStyle.Render(cursor + box + " " + text)
	}
}

func (m TodoModel) renderFooter(width int) string {
	active, completed := m.store.Counts()
	noun := "items"
	if active == 1 {
		noun = "item"
	}
	status := fmt.Sprintf("%d %s left · %d completed", active, noun, completed)
	status = statusBarStyle.Render(status)
	if m.toast != "" {
		status += "  " + SelectedItemStyle.Render(m.toast)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		HelpStyle.Render(m.help.ShortView(width)),
	)
}
