package ascii

import (
	"fmt"
	"image"
)

// Luminance returns perceptual brightness of a colour using Rec.601 integer
// weights (green weighted highest, blue lowest): (77R + 150G + 29B) >> 8.
func Luminance(r, g, b uint8) uint8 {
	return uint8((77*uint32(r) + 150*uint32(g) + 29*uint32(b)) >> 8)
}

// Rasterizer fuses a resampled pixel grid with a palette and colour scheme
// into a cell grid, one cell per pixel. The output grid and the scheme
// scratch buffer are reused across frames.
type Rasterizer struct {
	grid    *Grid
	colored []byte
}

// NewRasterizer creates a rasterizer with empty scratch buffers.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{grid: &Grid{}}
}

// Rasterize converts pixels into a cell grid. Glyph choice is driven by the
// luminance of the original pixel; the display colour is the scheme applied
// to the original pixel, so character density and hue carry independent
// information. The returned grid has exactly the pixel grid's dimensions and
// is owned by the caller only until the next Rasterize call.
func (rz *Rasterizer) Rasterize(pixels *image.RGBA, palette *Palette, scheme *Scheme) (*Grid, error) {
	if palette == nil || palette.Len() < 2 {
		return nil, fmt.Errorf("%w: palette must have at least 2 glyphs", ErrInvalidPalette)
	}
	if scheme == nil {
		return nil, fmt.Errorf("%w: nil scheme", ErrInvalidScheme)
	}

	cols := pixels.Rect.Dx()
	rows := pixels.Rect.Dy()
	rz.grid.Resize(cols, rows)

	// Bulk colour transform over the whole buffer first, then a single
	// fuse pass reading both buffers.
	if len(rz.colored) != len(pixels.Pix) {
		rz.colored = make([]byte, len(pixels.Pix))
	}
	scheme.Apply(rz.colored, pixels.Pix)

	for row := 0; row < rows; row++ {
		src := row * pixels.Stride
		dst := row * cols
		for col := 0; col < cols; col++ {
			o := src + col*4
			lum := Luminance(pixels.Pix[o], pixels.Pix[o+1], pixels.Pix[o+2])
			rz.grid.Cells[dst+col] = Cell{
				Glyph: palette.Glyph(lum),
				Color: RGB{R: rz.colored[o], G: rz.colored[o+1], B: rz.colored[o+2]},
			}
		}
	}

	return rz.grid, nil
}
