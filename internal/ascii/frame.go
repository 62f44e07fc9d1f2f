package ascii

import (
	"errors"
	"image"
	"time"
)

// Error kinds surfaced by the conversion pipeline. Callers decide whether to
// skip the cycle, reject the change, or exit; nothing in this package
// terminates the process.
var (
	// ErrGeometryTooSmall is reported when the terminal cannot fit even a
	// single character cell after aspect correction.
	ErrGeometryTooSmall = errors.New("ascii: geometry too small to render")

	// ErrInvalidPalette is reported for unknown or degenerate palettes.
	ErrInvalidPalette = errors.New("ascii: invalid palette")

	// ErrInvalidScheme is reported for unknown colour schemes.
	ErrInvalidScheme = errors.New("ascii: invalid color scheme")
)

// Frame is a single captured video frame. Pixel data is always RGBA with
// channels in canonical R,G,B order regardless of what the source device
// delivered; capture sources canonicalise on ingestion.
type Frame struct {
	// Seq is the monotonic capture sequence number
	Seq uint64
	// Timestamp is when the frame was captured
	Timestamp time.Time
	// Img holds the pixel data
	Img *image.RGBA
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.Img.Rect.Dx() }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.Img.Rect.Dy() }

// Geometry describes the renderable terminal grid: character columns and
// rows plus the cell aspect ratio (height:width of one character cell,
// ~2.0 on common terminals).
type Geometry struct {
	Cols       int
	Rows       int
	CellAspect float64
}

// Valid reports whether the geometry can hold at least one cell.
func (g Geometry) Valid() bool {
	return g.Cols >= 1 && g.Rows >= 1
}

// RGB is an 8-bit colour triple in canonical channel order.
type RGB struct {
	R, G, B uint8
}

// Cell is one character position's final output for one frame: the glyph
// chosen from the palette and the display colour after scheme application.
type Cell struct {
	Glyph rune
	Color RGB
}

// Grid is a dense rows×cols cell buffer in row-major order. It is the sole
// artifact handed to the rendering boundary; its dimensions always equal the
// geometry it was rasterized for.
type Grid struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewGrid allocates a grid of the given dimensions.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
	}
}

// At returns the cell at (col, row).
func (g *Grid) At(col, row int) Cell {
	return g.Cells[row*g.Cols+col]
}

// Resize reallocates the backing buffer if the dimensions changed. The cell
// contents are undefined afterwards; the next rasterize pass overwrites every
// cell.
func (g *Grid) Resize(cols, rows int) {
	if g.Cols == cols && g.Rows == rows && g.Cells != nil {
		return
	}
	g.Cols = cols
	g.Rows = rows
	g.Cells = make([]Cell, cols*rows)
}

// SameSize reports whether two grids have identical dimensions. A nil grid
// never matches.
func (g *Grid) SameSize(other *Grid) bool {
	if g == nil || other == nil {
		return false
	}
	return g.Cols == other.Cols && g.Rows == other.Rows
}
