package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

// Style is the configuration one cycle renders with. The UI layer swaps it
// atomically between cycles; a cycle never observes a half-applied change.
type Style struct {
	Palette *ascii.Palette
	Scheme  *ascii.Scheme
}

// Pipeline runs the per-cycle conversion: resample the captured frame onto
// the render grid, then rasterize it into cells. Scratch buffers live inside
// the resampler and rasterizer and are reused across cycles; they are only
// reallocated when the geometry changes.
//
// On any failure the previously returned grid remains the authoritative
// "last good" state — failures are detected before the cell buffer is
// touched, so a failed cycle never corrupts what is on screen.
type Pipeline struct {
	resampler  *ascii.Resampler
	rasterizer *ascii.Rasterizer
	last       *ascii.Grid
	lastGeom   ascii.Geometry
	log        *slog.Logger
}

// New creates a pipeline.
func New(log *slog.Logger) *Pipeline {
	return &Pipeline{
		resampler:  ascii.NewResampler(),
		rasterizer: ascii.NewRasterizer(),
		log:        log,
	}
}

// Process converts one frame for the given terminal geometry and style. The
// returned grid is owned by the pipeline and valid until the next Process
// call; renderers must copy what they need to retain.
func (p *Pipeline) Process(frame *ascii.Frame, term ascii.Geometry, style Style) (*ascii.Grid, error) {
	fit, err := ascii.FitGeometry(frame.Width(), frame.Height(), term)
	if err != nil {
		return nil, fmt.Errorf("fitting geometry: %w", err)
	}

	pixels, err := p.resampler.Resample(frame, fit)
	if err != nil {
		return nil, fmt.Errorf("resampling frame: %w", err)
	}

	grid, err := p.rasterizer.Rasterize(pixels, style.Palette, style.Scheme)
	if err != nil {
		return nil, fmt.Errorf("rasterizing frame: %w", err)
	}

	if fit != p.lastGeom {
		p.log.Debug("render geometry changed",
			"cols", fit.Cols, "rows", fit.Rows,
			"source", fmt.Sprintf("%dx%d", frame.Width(), frame.Height()))
		p.lastGeom = fit
	}
	p.last = grid
	return grid, nil
}

// LastGrid returns the most recent successfully rasterized grid, or nil if
// no cycle has succeeded yet. A failed cycle does not change it.
func (p *Pipeline) LastGrid() *ascii.Grid { return p.last }
