package sketch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
)

// ExportPNG writes the canvas as a PNG, each cell drawn as a scale×scale
// block. Blank cells are white.
func (p *Pad) ExportPNG(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, p.canvas.Width*scale, p.canvas.Height*scale))
	for y := 0; y < p.canvas.Height; y++ {
		for x := 0; x < p.canvas.Width; x++ {
			c, err := ParseColor(p.canvas.At(x, y))
			if err != nil {
				return err
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// ParseColor converts "#rrggbb" to an opaque colour. "" is white.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nil
	}
	if !hexColor.MatchString(s) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
