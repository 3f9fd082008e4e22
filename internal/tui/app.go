package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/h0rv/widgets/internal/domain"
	"github.com/h0rv/widgets/internal/kv"
	"github.com/h0rv/widgets/internal/sketch"
	"github.com/h0rv/widgets/internal/store"
)

// ThemeKey is the kv key the selected theme is persisted under.
const ThemeKey = "theme"

// AppScreen represents the different screens in the application.
type AppScreen int

const (
	ScreenMenu AppScreen = iota
	ScreenCalculator
	ScreenTodo
	ScreenSketch
	ScreenTicTacToe
)

// String returns the screen title.
func (s AppScreen) String() string {
	switch s {
	case ScreenCalculator:
		return "Calculator"
	case ScreenTodo:
		return "Todo"
	case ScreenSketch:
		return "Sketch"
	case ScreenTicTacToe:
		return "Tic-Tac-Toe"
	default:
		return "Menu"
	}
}

// ParseScreen parses a --screen flag value.
func ParseScreen(s string) (AppScreen, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "menu":
		return ScreenMenu, nil
	case "calc", "calculator":
		return ScreenCalculator, nil
	case "todo", "todos":
		return ScreenTodo, nil
	case "sketch", "draw":
		return ScreenSketch, nil
	case "tictactoe", "tic-tac-toe", "game":
		return ScreenTicTacToe, nil
	}
	return ScreenMenu, fmt.Errorf("unknown screen %q", s)
}

// Deps holds what the screens need from the outside world.
type Deps struct {
	Store *store.Store
	KV    kv.Store
	Pad   *sketch.Pad
	Log   zerolog.Logger

	// ExportDir receives sketch PNG exports.
	ExportDir string
	// Theme is the configured theme, used when none is persisted.
	Theme string
	// Changes fires when the storage file changes outside this process. May be nil.
	Changes <-chan struct{}
}

// AppModel is the root Bubble Tea model that routes between the menu and
// the widget screens.
type AppModel struct {
	deps Deps

	// Current state
	currentScreen AppScreen
	currentModel  tea.Model
	err           error
	theme         string

	// Cached models to preserve state across screen transitions
	screens map[AppScreen]tea.Model

	width  int
	height int
}

// NewAppModel creates the app, opening on start.
func NewAppModel(deps Deps, start AppScreen) AppModel {
	m := AppModel{
		deps:          deps,
		currentScreen: start,
		theme:         loadTheme(deps),
		screens:       make(map[AppScreen]tea.Model),
	}
	SetTheme(m.theme)
	m.currentModel = m.screen(start)
	return m
}

// loadTheme prefers the persisted theme over the configured one.
func loadTheme(deps Deps) string {
	theme := deps.Theme
	if deps.KV != nil {
		saved, ok, err := deps.KV.Get(ThemeKey)
		if err != nil {
			deps.Log.Warn().Err(err).Msg("failed to read theme")
		}
		if ok && (saved == domain.ThemeDark || saved == domain.ThemeLight) {
			theme = saved
		}
	}
	if theme != domain.ThemeLight {
		theme = domain.ThemeDark
	}
	return theme
}

// screen returns the cached model for s, creating it on first use.
func (m AppModel) screen(s AppScreen) tea.Model {
	if model, ok := m.screens[s]; ok {
		return model
	}

	var model tea.Model
	switch s {
	case ScreenCalculator:
		model = NewCalculatorModel()
	case ScreenTodo:
		model = NewTodoModel(m.deps.Store, m.theme)
	case ScreenSketch:
		model = NewSketchModel(m.deps.Pad, m.deps.ExportDir, m.deps.Log.With().Str("component", "sketch").Logger())
	case ScreenTicTacToe:
		model = NewGameModel()
	default:
		model = NewMenuModel()
	}
	m.screens[s] = model
	return model
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.currentModel.Init(), m.waitForChange())
}

// Update handles messages and transitions between screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ScreenSelectedMsg:
		return m.switchTo(msg.Screen)

	case BackToMenuMsg:
		return m.switchTo(ScreenMenu)

	case ToggleThemeMsg:
		return m.toggleTheme()

	case storageChangedMsg:
		if err := m.deps.Store.Load(); err != nil {
			m.deps.Log.Warn().Err(err).Msg("reload after external change failed")
		}
		m.deps.Log.Debug().Int("items", m.deps.Store.Len()).Msg("reloaded items after external change")
		m.broadcast(itemsReloadedMsg{})
		return m, m.waitForChange()
	}

	// Delegate to current screen's model
	if m.currentModel != nil {
		var cmd tea.Cmd
		m.currentModel, cmd = m.currentModel.Update(msg)
		m.screens[m.currentScreen] = m.currentModel
		return m, cmd
	}

	return m, nil
}

func (m AppModel) switchTo(s AppScreen) (tea.Model, tea.Cmd) {
	m.currentScreen = s
	m.currentModel = m.screen(s)
	// Request window size to ensure proper rendering
	return m, tea.Batch(m.currentModel.Init(), tea.WindowSize())
}

func (m AppModel) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == domain.ThemeDark {
		m.theme = domain.ThemeLight
	} else {
		m.theme = domain.ThemeDark
	}
	SetTheme(m.theme)

	if m.deps.KV != nil {
		if err := m.deps.KV.Set(ThemeKey, m.theme); err != nil {
			m.deps.Log.Error().Err(err).Msg("failed to persist theme")
		}
	}

	m.broadcast(themeChangedMsg{theme: m.theme})
	return m, nil
}

// broadcast delivers msg to every cached screen, discarding their commands.
func (m *AppModel) broadcast(msg tea.Msg) {
	for s, model := range m.screens {
		updated, _ := model.Update(msg)
		m.screens[s] = updated
	}
	m.currentModel = m.screens[m.currentScreen]
}

// waitForChange blocks on the storage watcher until the next change.
func (m AppModel) waitForChange() tea.Cmd {
	if m.deps.Changes == nil {
		return nil
	}
	ch := m.deps.Changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storageChangedMsg{}
	}
}

// Screen returns the active screen.
func (m AppModel) Screen() AppScreen {
	return m.currentScreen
}

// Theme returns the active theme name.
func (m AppModel) Theme() string {
	return m.theme
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Ctrl+C to quit", m.err))
	}

	if m.currentModel != nil {
		return m.currentModel.View()
	}
	return ""
}
