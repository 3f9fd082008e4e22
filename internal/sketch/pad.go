// Package sketch implements a cell-based freehand drawing pad with pen and
// eraser tools and bounded undo/redo.
package sketch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/h0rv/widgets/internal/history"
)

// ErrBadColor indicates a colour that is not a #rrggbb hex string.
var ErrBadColor = errors.New("color must be #rrggbb")

// Tool selects what a stroke does to the cells it touches.
type Tool int

const (
	Pen Tool = iota
	Eraser
)

// String returns the tool name.
func (t Tool) String() string {
	if t == Eraser {
		return "eraser"
	}
	return "pen"
}

// Pen size bounds.
const (
	MinSize     = 1
	MaxSize     = 10
	DefaultSize = 1
)

// DefaultColor is the initial pen colour.
const DefaultColor = "#000000"

// Palette holds the swatches offered for quick selection.
var Palette = []string{
	"#000000", "#ff0000", "#ff7f00", "#ffd700",
	"#00a000", "#0000ff", "#8b00ff", "#ffffff",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Canvas is a snapshot of cell colours, row-major. "" is a blank cell.
type Canvas struct {
	Width, Height int
	Cells         []string
}

func newCanvas(w, h int) Canvas {
	return Canvas{Width: w, Height: h, Cells: make([]string, w*h)}
}

func (c Canvas) clone() Canvas {
	cells := make([]string, len(c.Cells))
	copy(cells, c.Cells)
	return Canvas{Width: c.Width, Height: c.Height, Cells: cells}
}

// At returns the colour at (x, y), or "" outside the canvas.
func (c Canvas) At(x, y int) string {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return ""
	}
	return c.Cells[y*c.Width+x]
}

// Pad is the drawing surface and its tool state.
type Pad struct {
	canvas  Canvas
	tool    Tool
	color   string
	size    int
	drawing bool
	last    Point
	history *history.History[Canvas]
}

// New creates a blank pad. depth bounds each of the undo and redo stacks.
func New(width, height, depth int) *Pad {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pad{
		canvas:  newCanvas(width, height),
		tool:    Pen,
		color:   DefaultColor,
		size:    DefaultSize,
		history: history.New[Canvas](depth),
	}
}

// SetTool selects the pen or the eraser.
func (p *Pad) SetTool(t Tool) {
	p.tool = t
}

// Tool returns the active tool.
func (p *Pad) Tool() Tool {
	return p.tool
}

// SetColor sets the pen colour. It is stored lowercase.
func (p *Pad) SetColor(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("%w: %q", ErrBadColor, color)
	}
	p.color = strings.ToLower(color)
	return nil
}

// Color returns the pen colour.
func (p *Pad) Color() string {
	return p.color
}

// CycleColor advances the pen colour to the next palette swatch.
func (p *Pad) CycleColor() {
	next := 0
	for i, c := range Palette {
		if c == p.color {
			next = (i + 1) % len(Palette)
			break
		}
	}
	p.color = Palette[next]
}

// SetSize sets the brush edge length, clamped to MinSize..MaxSize.
func (p *Pad) SetSize(size int) {
	p.size = max(MinSize, min(MaxSize, size))
}

// Size returns the brush edge length.
func (p *Pad) Size() int {
	return p.size
}

// Drawing reports whether a stroke is in progress.
func (p *Pad) Drawing() bool {
	return p.drawing
}

// BeginStroke records an undo snapshot and paints at (x, y).
func (p *Pad) BeginStroke(x, y int) {
	p.history.Push(p.canvas.clone())
	p.drawing = true
	p.last = Point{x, y}
	p.stamp(x, y)
}

// MoveTo paints a line from the previous point to (x, y). It does nothing
// unless a stroke is in progress.
func (p *Pad) MoveTo(x, y int) {
	if !p.drawing {
		return
	}
	for _, pt := range line(p.last, Point{x, y}) {
		p.stamp(pt.X, pt.Y)
	}
	p.last = Point{x, y}
}

// EndStroke finishes the current stroke.
func (p *Pad) EndStroke() {
	p.drawing = false
}

// Undo restores the canvas before the last stroke.
func (p *Pad) Undo() bool {
	prev, ok := p.history.Undo(p.canvas.clone())
	if !ok {
		return false
	}
	p.canvas = prev
	return true
}

// Redo re-applies the last undone stroke.
func (p *Pad) Redo() bool {
	next, ok := p.history.Redo(p.canvas.clone())
	if !ok {
		return false
	}
	p.canvas = next
	return true
}

// CanUndo reports whether Undo would change the canvas.
func (p *Pad) CanUndo() bool { return p.history.CanUndo() }

// CanRedo reports whether Redo would change the canvas.
func (p *Pad) CanRedo() bool { return p.history.CanRedo() }

// Clear blanks the canvas and forgets the undo and redo history.
func (p *Pad) Clear() {
	p.canvas = newCanvas(p.canvas.Width, p.canvas.Height)
	p.history.Reset()
	p.drawing = false
}

// Resize changes the canvas dimensions, keeping the overlapping drawing.
func (p *Pad) Resize(width, height int) {
	if width < 1 || height < 1 || (width == p.canvas.Width && height == p.canvas.Height) {
		return
	}
	next := newCanvas(width, height)
	for y := 0; y < min(height, p.canvas.Height); y++ {
		for x := 0; x < min(width, p.canvas.Width); x++ {
			next.Cells[y*width+x] = p.canvas.At(x, y)
		}
	}
	p.canvas = next
}

// Canvas returns a copy of the current drawing.
func (p *Pad) Canvas() Canvas {
	return p.canvas.clone()
}

// Width returns the canvas width in cells.
func (p *Pad) Width() int { return p.canvas.Width }

// Height returns the canvas height in cells.
func (p *Pad) Height() int { return p.canvas.Height }

// stamp paints a size×size square with its top-left corner at (x, y).
func (p *Pad) stamp(x, y int) {
	value := p.color
	if p.tool == Eraser {
		value = ""
	}
	for dy := 0; dy < p.size; dy++ {
		for dx := 0; dx < p.size; dx++ {
			cx, cy := x+dx, y+dy
			if cx < 0 || cy < 0 || cx >= p.canvas.Width || cy >= p.canvas.Height {
				continue
			}
			p.canvas.Cells[cy*p.canvas.Width+cx] = value
		}
	}
}

// line returns the cells of the segment from a to b (Bresenham), endpoints included.
func line(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	var pts []Point
	err := dx + dy
	x, y := a.X, a.Y
	for {
		pts = append(pts, Point{x, y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
