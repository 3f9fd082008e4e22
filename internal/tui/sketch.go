package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/rs/zerolog"

	"github.com/h0rv/widgets/internal/sketch"
)

// Canvas position inside the view: header line, status line, then the
// panel border.
const (
	canvasTop  = 3
	canvasLeft = 1
	pngScale   = 16

	// Rows around the canvas: header, status, panel border, footer.
	sketchChromeLines = 7
	minCanvasSize     = 4
)

// sketchOpenedMsg reports the result of opening an export in the system viewer.
type sketchOpenedMsg struct {
	err error
}

// SketchModel is the drawing pad screen. The keyboard cursor draws when the
// pen is down; the mouse draws while the left button is held. The canvas
// shrinks to fit the terminal, never growing past the size it was created with.
type SketchModel struct {
	pad *sketch.Pad
	log zerolog.Logger

	keymap     SketchKeyMap
	help       HelpModel
	showHelp   bool
	colorInput textinput.Model
	pickColor  bool

	maxWidth  int
	maxHeight int

	cursor     sketch.Point
	exportDir  string
	lastExport string
	status     string
	failed     bool

	width  int
	height int
}

// NewSketchModel creates a sketch pad screen.
func NewSketchModel(pad *sketch.Pad, exportDir string, log zerolog.Logger) SketchModel {
	ci := textinput.New()
	ci.Placeholder = "#rrggbb"
	ci.Prompt = "colour: "
	ci.CharLimit = 7

	km := DefaultSketchKeyMap()
	return SketchModel{
		pad:        pad,
		log:        log,
		keymap:     km,
		help:       NewHelpModel(km),
		colorInput: ci,
		maxWidth:   pad.Width(),
		maxHeight:  pad.Height(),
		exportDir:  exportDir,
	}
}

// Init initializes the model.
func (m SketchModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SketchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fitCanvas()
		return m, nil

	case tea.MouseMsg:
		if m.pickColor {
			return m, nil
		}
		return m.handleMouse(msg)

	case exportDoneMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("sketch export failed")
			m.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
			return m, nil
		}
		m.lastExport = msg.path
		m.log.Info().Str("path", msg.path).Msg("sketch exported")
		m.setStatus("Saved "+msg.path, false)
		return m, nil

	case sketchOpenedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("path", m.lastExport).Msg("failed to open export")
			m.setStatus(fmt.Sprintf("Open failed: %v", msg.err), true)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m SketchModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Back) || msg.String() == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	if m.pickColor {
		return m.handleColorInput(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.pad.EndStroke()
		return m, func() tea.Msg { return BackToMenuMsg{} }
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keymap.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keymap.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keymap.Pen):
		if m.pad.Drawing() {
			m.pad.EndStroke()
		} else {
			m.pad.BeginStroke(m.cursor.X, m.cursor.Y)
		}
	case key.Matches(msg, m.keymap.Eraser):
		if m.pad.Tool() == sketch.Pen {
			m.pad.SetTool(sketch.Eraser)
		} else {
			m.pad.SetTool(sketch.Pen)
		}
	case key.Matches(msg, m.keymap.Color):
		m.pad.CycleColor()
	case key.Matches(msg, m.keymap.Custom):
		m.pickColor = true
		m.colorInput.SetValue("")
		return m, m.colorInput.Focus()
	case key.Matches(msg, m.keymap.Bigger):
		m.pad.SetSize(m.pad.Size() + 1)
	case key.Matches(msg, m.keymap.Smaller):
		m.pad.SetSize(m.pad.Size() - 1)
	case key.Matches(msg, m.keymap.Undo):
		m.pad.EndStroke()
		if !m.pad.Undo() {
			m.setStatus("Nothing to undo", false)
		}
	case key.Matches(msg, m.keymap.Redo):
		m.pad.EndStroke()
		if !m.pad.Redo() {
			m.setStatus("Nothing to redo", false)
		}
	case key.Matches(msg, m.keymap.Clear):
		m.pad.Clear()
	case key.Matches(msg, m.keymap.Export):
		return m, m.export()
	case key.Matches(msg, m.keymap.OpenLast):
		if m.lastExport == "" {
			m.setStatus("Nothing exported yet", false)
			return m, nil
		}
		path := m.lastExport
		return m, func() tea.Msg {
			return sketchOpenedMsg{err: browser.OpenFile(path)}
		}
	}
	return m, nil
}

func (m SketchModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := msg.X-canvasLeft, msg.Y-canvasTop
	inside := x >= 0 && y >= 0 && x < m.pad.Width() && y < m.pad.Height()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.cursor = sketch.Point{X: x, Y: y}
			m.pad.BeginStroke(x, y)
		}
	case tea.MouseActionMotion:
		if m.pad.Drawing() {
			x = max(0, min(m.pad.Width()-1, x))
			y = max(0, min(m.pad.Height()-1, y))
			m.cursor = sketch.Point{X: x, Y: y}
			m.pad.MoveTo(x, y)
		}
	case tea.MouseActionRelease:
		m.pad.EndStroke()
	}
	return m, nil
}

// handleColorInput handles keys while the custom colour prompt is open.
func (m SketchModel) handleColorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.colorInput.Value())
		if !strings.HasPrefix(value, "#") {
			value = "#" + value
		}
		if err := m.pad.SetColor(value); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus("Colour "+m.pad.Color(), false)
		}
		m.pickColor = false
		m.colorInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.pickColor = false
		m.colorInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.colorInput, cmd = m.colorInput.Update(msg)
	return m, cmd
}

// fitCanvas resizes the pad to the space left by the window, keeping the
// overlapping drawing.
func (m *SketchModel) fitCanvas() {
	w := min(m.maxWidth, max(minCanvasSize, m.width-2*canvasLeft))
	h := min(m.maxHeight, max(minCanvasSize, m.height-sketchChromeLines))
	if w == m.pad.Width() && h == m.pad.Height() {
		return
	}
	m.pad.EndStroke()
	m.pad.Resize(w, h)
	m.cursor.X = min(m.cursor.X, m.pad.Width()-1)
	m.cursor.Y = min(m.cursor.Y, m.pad.Height()-1)
}

func (m *SketchModel) moveCursor(dx, dy int) {
	m.cursor.X = max(0, min(m.pad.Width()-1, m.cursor.X+dx))
	m.cursor.Y = max(0, min(m.pad.Height()-1, m.cursor.Y+dy))
	m.pad.MoveTo(m.cursor.X, m.cursor.Y)
}

func (m *SketchModel) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

// export encodes the drawing now and writes the file in the background.
func (m SketchModel) export() tea.Cmd {
	var buf bytes.Buffer
	if err := m.pad.ExportPNG(&buf, pngScale); err != nil {
		return func() tea.Msg { return exportDoneMsg{err: err} }
	}

	name := fmt.Sprintf("sketch-%s-%s.png", time.Now().Format("20060102-150405"), uuid.NewString()[:8])
	path := filepath.Join(m.exportDir, name)
	return func() tea.Msg {
		if err := os.MkdirAll(m.exportDir, 0o755); err != nil {
			return exportDoneMsg{err: fmt.Errorf("create export dir: %w", err)}
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return exportDoneMsg{err: fmt.Errorf("write png: %w", err)}
		}
		return exportDoneMsg{path: path}
	}
}

// View renders the pad.
func (m SketchModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	header := TitleStyle.MarginBottom(0).Render("Sketch")
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.help.View(width))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderStatus(),
		panelStyle.Render(m.renderCanvas()),
		m.renderFooter(width),
	)
}

func (m SketchModel) renderStatus() string {
	pen := "up"
	if m.pad.Drawing() {
		pen = "down"
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.pad.Color())).Render("██")
	return dimStyle.Render(fmt.Sprintf("%s  size %d  pen %s  (%d,%d)",
		m.pad.Tool(), m.pad.Size(), pen, m.cursor.X, m.cursor.Y)) + " " + swatch
}

func (m SketchModel) renderCanvas() string {
	canvas := m.pad.Canvas()
	var b strings.Builder
	for y := 0; y < canvas.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < canvas.Width; x++ {
			cell := canvas.At(x, y)
			switch {
			case x == m.cursor.X && y == m.cursor.Y:
				b.WriteString(SelectedItemStyle.Render("+"))
			case cell == "":
				b.WriteString(dimStyle.Render("·"))
			default:
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(cell)).Render("█"))
			}
		}
	}
	return b.String()
}

func (m SketchModel) renderFooter(width int) string {
	var status string
	switch {
	case m.pickColor:
		status = m.colorInput.View()
	case m.status != "" && m.failed:
		status = ErrorStyle.Render(m.status)
	case m.status != "":
		status = statusBarStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, HelpStyle.Render(m.help.ShortView(width)))
}
