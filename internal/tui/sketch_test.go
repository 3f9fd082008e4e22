package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h0rv/widgets/internal/sketch"
)

func createTestSketch(t *testing.T) SketchModel {
	t.Helper()
	return NewSketchModel(sketch.New(10, 5, 5), t.TempDir(), zerolog.Nop())
}

func paintedCells(m tea.Model) int {
	n := 0
	for _, c := range m.(SketchModel).pad.Canvas().Cells {
		if c != "" {
			n++
		}
	}
	return n
}

func TestSketchModel_KeyboardStroke(t *testing.T) {
	var model tea.Model = createTestSketch(t)

	// Cursor moves without drawing while the pen is up
	model, _ = press(model, "l")
	assert.Zero(t, paintedCells(model))

	model, _ = press(model, " ", "l", "l", "j", " ")
	assert.Equal(t, 4, paintedCells(model))
	assert.False(t, model.(SketchModel).pad.Drawing())
	assert.Equal(t, sketch.Point{X: 3, Y: 1}, model.(SketchModel).cursor)

	model, _ = press(model, "u")
	assert.Zero(t, paintedCells(model))
	model, _ = press(model, "r")
	assert.Equal(t, 4, paintedCells(model))
}

func TestSketchModel_CursorClamped(t *testing.T) {
	var model tea.Model = createTestSketch(t)
	model, _ = press(model, "h", "k")
	assert.Equal(t, sketch.Point{}, model.(SketchModel).cursor)

	for i := 0; i < 20; i++ {
		model, _ = press(model, "l", "j")
	}
	assert.Equal(t, sketch.Point{X: 9, Y: 4}, model.(SketchModel).cursor)
}

func TestSketchModel_Tools(t *testing.T) {
	var model tea.Model = createTestSketch(t)
	pad := model.(SketchModel).pad

	model, _ = press(model, "c")
	assert.Equal(t, sketch.Palette[1], pad.Color())

	model, _ = press(model, "+", "+")
	assert.Equal(t, 3, pad.Size())
	model, _ = press(model, "-")
	assert.Equal(t, 2, pad.Size())

	model, _ = press(model, " ", " ")
	assert.Equal(t, 4, paintedCells(model))

	model, _ = press(model, "e", " ", " ")
	assert.Equal(t, sketch.Eraser, pad.Tool())
	assert.Zero(t, paintedCells(model))

	model, _ = press(model, "e", " ", " ", "X")
	assert.Zero(t, paintedCells(model))
	assert.False(t, pad.CanUndo())
}

func TestSketchModel_MouseStroke(t *testing.T) {
	var model tea.Model = createTestSketch(t)

	model, _ = model.Update(tea.MouseMsg{X: canvasLeft, Y: canvasTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	model, _ = model.Update(tea.MouseMsg{X: canvasLeft + 4, Y: canvasTop, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	model, _ = model.Update(tea.MouseMsg{X: canvasLeft + 4, Y: canvasTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, 5, paintedCells(model))
	assert.False(t, model.(SketchModel).pad.Drawing())

	// Presses outside the canvas do not start a stroke
	model, _ = model.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, model.(SketchModel).pad.Drawing())
}

func TestSketchModel_Export(t *testing.T) {
	m := createTestSketch(t)
	var model tea.Model = m

	model, _ = press(model, " ", " ")
	model, cmd := press(model, "s")
	msg := msgOf(cmd)
	done, ok := msg.(exportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, m.exportDir, filepath.Dir(done.path))

	data, err := os.ReadFile(done.path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))

	model, _ = model.Update(done)
	assert.Equal(t, done.path, model.(SketchModel).lastExport)
	assert.Contains(t, model.View(), "Saved")
}

func TestSketchModel_ExportFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var model tea.Model = NewSketchModel(sketch.New(4, 4, 5), filepath.Join(blocker, "sub"), zerolog.Nop())
	model, cmd := press(model, "s")
	done := msgOf(cmd).(exportDoneMsg)
	require.Error(t, done.err)

	model, _ = model.Update(done)
	assert.Contains(t, model.View(), "Export failed")
}

func TestSketchModel_OpenWithoutExport(t *testing.T) {
	model, cmd := press(createTestSketch(t), "o")
	assert.Nil(t, cmd)
	assert.Contains(t, model.View(), "Nothing exported yet")
}

func TestSketchModel_EscEndsStroke(t *testing.T) {
	model, cmd := press(createTestSketch(t), " ", "esc")
	assert.Equal(t, BackToMenuMsg{}, msgOf(cmd))
	assert.False(t, model.(SketchModel).pad.Drawing())
}

func TestSketchModel_FitsCanvasToWindow(t *testing.T) {
	var model tea.Model = createTestSketch(t)

	// Paint the top-left cell and park the cursor in the far corner.
	model, _ = press(model, " ", " ")
	for i := 0; i < 10; i++ {
		model, _ = press(model, "l", "j")
	}

	model, _ = model.Update(tea.WindowSizeMsg{Width: 8, Height: 4 + sketchChromeLines})
	pad := model.(SketchModel).pad
	assert.Equal(t, 6, pad.Width())
	assert.Equal(t, 4, pad.Height())
	assert.Equal(t, sketch.Point{X: 5, Y: 3}, model.(SketchModel).cursor)
	assert.Equal(t, 1, paintedCells(model), "drawing survives the shrink")

	// Growing never exceeds the configured size.
	model, _ = model.Update(tea.WindowSizeMsg{Width: 200, Height: 100})
	assert.Equal(t, 10, pad.Width())
	assert.Equal(t, 5, pad.Height())
	assert.Equal(t, 1, paintedCells(model))

	// Tiny windows keep a usable canvas.
	model, _ = model.Update(tea.WindowSizeMsg{Width: 1, Height: 1})
	assert.Equal(t, minCanvasSize, pad.Width())
	assert.Equal(t, minCanvasSize, pad.Height())
}

func TestSketchModel_CustomColor(t *testing.T) {
	var model tea.Model = createTestSketch(t)
	pad := model.(SketchModel).pad

	model, _ = press(model, "#")
	require.True(t, model.(SketchModel).pickColor)
	model = typeText(model, "1E90FF")
	model, _ = press(model, "enter")

	assert.False(t, model.(SketchModel).pickColor)
	assert.Equal(t, "#1e90ff", pad.Color())
	assert.Contains(t, model.View(), "Colour #1e90ff")

	// Painting uses the new colour.
	model, _ = press(model, " ", " ")
	assert.Equal(t, "#1e90ff", pad.Canvas().At(0, 0))
}

func TestSketchModel_CustomColorRejected(t *testing.T) {
	var model tea.Model = createTestSketch(t)
	pad := model.(SketchModel).pad

	model, _ = press(model, "#")
	model = typeText(model, "#zzz")
	model, _ = press(model, "enter")

	assert.Equal(t, sketch.DefaultColor, pad.Color())
	assert.True(t, model.(SketchModel).failed)
	assert.Contains(t, model.View(), sketch.ErrBadColor.Error())

	// esc closes the prompt without leaving the screen
	model, _ = press(model, "#")
	model, cmd := press(model, "esc")
	assert.Nil(t, cmd)
	assert.False(t, model.(SketchModel).pickColor)
}
