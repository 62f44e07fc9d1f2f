package term

import (
	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

// WriteOp is one positioned run of cells to draw: move the cursor to
// (Row, Col) and emit Cells left to right. Ops are ordered top-to-bottom,
// left-to-right; applying them to a terminal showing the previous grid
// yields the current grid.
type WriteOp struct {
	Row   int
	Col   int
	Cells []ascii.Cell
}

// Diff computes the write operations needed to go from prev to cur. A nil or
// differently-sized prev means a full repaint (first frame, or after a
// resize invalidation). Identical grids produce no operations; unchanged
// cells are never rewritten.
//
// The returned ops alias cur's cell buffer and are only valid until cur is
// next mutated.
func Diff(prev, cur *ascii.Grid) []WriteOp {
	if cur == nil {
		return nil
	}
	if !cur.SameSize(prev) {
		ops := make([]WriteOp, 0, cur.Rows)
		for row := 0; row < cur.Rows; row++ {
			start := row * cur.Cols
			ops = append(ops, WriteOp{
				Row:   row,
				Cells: cur.Cells[start : start+cur.Cols],
			})
		}
		return ops
	}

	var ops []WriteOp
	for row := 0; row < cur.Rows; row++ {
		base := row * cur.Cols
		col := 0
		for col < cur.Cols {
			// Skip the unchanged prefix.
			for col < cur.Cols && cur.Cells[base+col] == prev.Cells[base+col] {
				col++
			}
			if col == cur.Cols {
				break
			}
			start := col
			for col < cur.Cols && cur.Cells[base+col] != prev.Cells[base+col] {
				col++
			}
			ops = append(ops, WriteOp{
				Row:   row,
				Col:   start,
				Cells: cur.Cells[base+start : base+col],
			})
		}
	}
	return ops
}

// Renderer tracks what is currently displayed so each frame only emits the
// cells that changed. It owns a private copy of the last applied grid; the
// pipeline is free to reuse its buffers between frames.
type Renderer struct {
	prev *ascii.Grid
}

// NewRenderer creates a renderer with no displayed state; the first Render
// is a full repaint.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render diffs cur against the displayed state, records cur as displayed,
// and returns the ops to apply.
func (r *Renderer) Render(cur *ascii.Grid) []WriteOp {
	ops := Diff(r.prev, cur)
	if cur != nil {
		if !cur.SameSize(r.prev) {
			r.prev = ascii.NewGrid(cur.Cols, cur.Rows)
		}
		copy(r.prev.Cells, cur.Cells)
	}
	return ops
}

// Invalidate forgets the displayed state, forcing the next Render to be a
// full repaint. Called after a resize or anything else that scribbled over
// the screen (help overlay, external clear).
func (r *Renderer) Invalidate() {
	r.prev = nil
}
