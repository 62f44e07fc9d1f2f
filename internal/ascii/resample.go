package ascii

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DefaultCellAspect is the assumed height:width ratio of one terminal
// character cell. Terminal cells are roughly twice as tall as they are wide,
// so vertical resolution is halved to keep source shapes undistorted.
const DefaultCellAspect = 2.0

// FitGeometry computes the render grid for a source frame inside the given
// terminal geometry. The grid preserves the source's visual aspect ratio
// after compensating for the cell aspect, shrinking to fit whichever terminal
// dimension binds. The returned geometry is never larger than the terminal in
// either dimension and reports ErrGeometryTooSmall when not even one cell
// fits.
func FitGeometry(srcW, srcH int, term Geometry) (Geometry, error) {
	if term.Cols < 1 || term.Rows < 1 {
		return Geometry{}, fmt.Errorf("%w: terminal is %dx%d", ErrGeometryTooSmall, term.Cols, term.Rows)
	}
	if srcW < 1 || srcH < 1 {
		return Geometry{}, fmt.Errorf("ascii: source frame is %dx%d", srcW, srcH)
	}

	aspect := term.CellAspect
	if aspect <= 0 {
		aspect = DefaultCellAspect
	}

	// Fill the full width, derive rows from the source aspect corrected for
	// cell shape, then flip to row-bound scaling when the terminal is too
	// short.
	cols := term.Cols
	rows := int(math.Round(float64(cols) * float64(srcH) / float64(srcW) / aspect))
	if rows > term.Rows {
		rows = term.Rows
		cols = int(math.Round(float64(rows) * float64(srcW) / float64(srcH) * aspect))
		if cols > term.Cols {
			cols = term.Cols
		}
	}
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	return Geometry{Cols: cols, Rows: rows, CellAspect: aspect}, nil
}

// Resampler downsamples source frames onto a cols×rows pixel grid. The
// target buffer is owned by the resampler and reused across frames; it is
// reallocated only when the geometry changes.
type Resampler struct {
	dst    *image.RGBA
	scaler draw.Scaler
}

// NewResampler creates a resampler. Nearest-neighbour sampling keeps the
// per-frame cost flat; at character-cell resolution the kernel choice is not
// visible.
func NewResampler() *Resampler {
	return &Resampler{scaler: draw.NearestNeighbor}
}

// Resample fills the reusable target buffer with the source frame scaled to
// exactly geometry.Rows × geometry.Cols pixels. The returned image is owned
// by the caller only until the next Resample call.
func (r *Resampler) Resample(frame *Frame, geom Geometry) (*image.RGBA, error) {
	if !geom.Valid() {
		return nil, fmt.Errorf("%w: target grid is %dx%d", ErrGeometryTooSmall, geom.Cols, geom.Rows)
	}
	if frame == nil || frame.Img == nil || frame.Width() < 1 || frame.Height() < 1 {
		return nil, fmt.Errorf("ascii: empty source frame")
	}

	rect := image.Rect(0, 0, geom.Cols, geom.Rows)
	if r.dst == nil || r.dst.Rect != rect {
		r.dst = image.NewRGBA(rect)
	}

	r.scaler.Scale(r.dst, rect, frame.Img, frame.Img.Rect, draw.Src, nil)
	return r.dst, nil
}
