package sketch

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func painted(c Canvas) int {
	n := 0
	for _, cell := range c.Cells {
		if cell != "" {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	p := New(8, 4, 0)
	assert.Equal(t, 8, p.Width())
	assert.Equal(t, 4, p.Height())
	assert.Equal(t, Pen, p.Tool())
	assert.Equal(t, DefaultColor, p.Color())
	assert.Equal(t, DefaultSize, p.Size())
	assert.Zero(t, painted(p.Canvas()))
	assert.False(t, p.CanUndo())
}

func TestStroke(t *testing.T) {
	p := New(10, 10, 5)
	require.NoError(t, p.SetColor("#FF0000"))

	p.BeginStroke(0, 0)
	assert.True(t, p.Drawing())
	p.MoveTo(4, 0)
	p.EndStroke()
	assert.False(t, p.Drawing())

	c := p.Canvas()
	for x := 0; x <= 4; x++ {
		assert.Equal(t, "#ff0000", c.At(x, 0), "cell %d", x)
	}
	assert.Equal(t, 5, painted(c))
}

func TestStroke_Diagonal(t *testing.T) {
	p := New(10, 10, 5)
	p.BeginStroke(0, 0)
	p.MoveTo(3, 3)
	p.EndStroke()

	c := p.Canvas()
	for i := 0; i <= 3; i++ {
		assert.NotEmpty(t, c.At(i, i))
	}
	assert.Equal(t, 4, painted(c))
}

func TestMoveTo_WithoutStroke(t *testing.T) {
	p := New(5, 5, 5)
	p.MoveTo(2, 2)
	assert.Zero(t, painted(p.Canvas()))
}

func TestSize(t *testing.T) {
	p := New(10, 10, 5)
	p.SetSize(3)
	p.BeginStroke(0, 0)
	p.EndStroke()
	assert.Equal(t, 9, painted(p.Canvas()))

	p.SetSize(0)
	assert.Equal(t, MinSize, p.Size())
	p.SetSize(99)
	assert.Equal(t, MaxSize, p.Size())
}

func TestStamp_ClipsAtEdges(t *testing.T) {
	p := New(4, 4, 5)
	p.SetSize(3)
	p.BeginStroke(3, 3)
	p.EndStroke()
	assert.Equal(t, 1, painted(p.Canvas()))
}

func TestEraser(t *testing.T) {
	p := New(5, 1, 5)
	p.BeginStroke(0, 0)
	p.MoveTo(4, 0)
	p.EndStroke()

	p.SetTool(Eraser)
	assert.Equal(t, "eraser", p.Tool().String())
	p.BeginStroke(1, 0)
	p.MoveTo(2, 0)
	p.EndStroke()

	c := p.Canvas()
	assert.Equal(t, 3, painted(c))
	assert.Empty(t, c.At(1, 0))
	assert.Empty(t, c.At(2, 0))
}

func TestUndoRedo(t *testing.T) {
	p := New(5, 5, 5)
	p.BeginStroke(0, 0)
	p.EndStroke()
	p.BeginStroke(1, 1)
	p.EndStroke()
	require.Equal(t, 2, painted(p.Canvas()))

	assert.True(t, p.Undo())
	assert.Equal(t, 1, painted(p.Canvas()))
	assert.True(t, p.Undo())
	assert.Zero(t, painted(p.Canvas()))
	assert.False(t, p.Undo())

	assert.True(t, p.Redo())
	assert.Equal(t, 1, painted(p.Canvas()))
	assert.True(t, p.CanRedo())

	// A new stroke discards the redo branch
	p.BeginStroke(4, 4)
	p.EndStroke()
	assert.False(t, p.CanRedo())
	assert.False(t, p.Redo())
}

func TestUndo_DepthBounded(t *testing.T) {
	p := New(5, 5, 2)
	for i := 0; i < 4; i++ {
		p.BeginStroke(i, 0)
		p.EndStroke()
	}
	assert.True(t, p.Undo())
	assert.True(t, p.Undo())
	assert.False(t, p.Undo())
	assert.Equal(t, 2, painted(p.Canvas()))
}

func TestClear(t *testing.T) {
	p := New(5, 5, 5)
	p.BeginStroke(0, 0)
	p.EndStroke()
	p.Clear()

	assert.Zero(t, painted(p.Canvas()))
	assert.False(t, p.CanUndo())
	assert.False(t, p.CanRedo())
}

func TestResize(t *testing.T) {
	p := New(4, 4, 5)
	p.BeginStroke(0, 0)
	p.EndStroke()
	p.BeginStroke(3, 3)
	p.EndStroke()

	p.Resize(2, 2)
	c := p.Canvas()
	assert.Equal(t, 2, c.Width)
	assert.Equal(t, 1, painted(c))
	assert.NotEmpty(t, c.At(0, 0))

	p.Resize(0, 5)
	assert.Equal(t, 2, p.Width())
}

func TestSetColor(t *testing.T) {
	p := New(2, 2, 5)
	for _, bad := range []string{"red", "#fff", "#gggggg", "ff0000"} {
		assert.ErrorIs(t, p.SetColor(bad), ErrBadColor, bad)
	}
	assert.Equal(t, DefaultColor, p.Color())
}

func TestCycleColor(t *testing.T) {
	p := New(2, 2, 5)
	p.CycleColor()
	assert.Equal(t, Palette[1], p.Color())

	require.NoError(t, p.SetColor(Palette[len(Palette)-1]))
	p.CycleColor()
	assert.Equal(t, Palette[0], p.Color())

	// Off-palette colours restart at the first swatch
	require.NoError(t, p.SetColor("#123456"))
	p.CycleColor()
	assert.Equal(t, Palette[0], p.Color())
}

func TestExportPNG(t *testing.T) {
	p := New(3, 2, 5)
	require.NoError(t, p.SetColor("#0000ff"))
	p.BeginStroke(1, 1)
	p.EndStroke()

	var buf bytes.Buffer
	require.NoError(t, p.ExportPNG(&buf, 4))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	assert.Equal(t, color.RGBAModel.Convert(img.At(5, 5)), color.RGBA{B: 0xff, A: 0xff})
	assert.Equal(t, color.RGBAModel.Convert(img.At(0, 0)), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	_, err = ParseColor("nope")
	assert.ErrorIs(t, err, ErrBadColor)
}
