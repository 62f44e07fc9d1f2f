package camera

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

// Pattern is a synthetic source producing an animated test card: a slow
// horizontal colour sweep over a vertical luminance ramp. It lets the whole
// pipeline run without a camera (demo mode) and gives tests a deterministic
// producer.
type Pattern struct {
	width  int
	height int
	start  time.Time
	seq    uint64
}

// NewPattern creates a test-pattern source at the given resolution.
func NewPattern(width, height int) *Pattern {
	if width < 1 {
		width = 320
	}
	if height < 1 {
		height = 240
	}
	return &Pattern{width: width, height: height}
}

// Start records the animation epoch.
func (p *Pattern) Start(ctx context.Context) error {
	p.start = time.Now()
	return nil
}

// NextFrame synthesises a frame for the current time. The pattern source is
// always ready, so every call yields a frame.
func (p *Pattern) NextFrame() *ascii.Frame {
	return p.FrameAt(time.Since(p.start))
}

// FrameAt renders the pattern at a fixed animation offset. Split out so
// tests can pin the phase.
func (p *Pattern) FrameAt(elapsed time.Duration) *ascii.Frame {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	phase := elapsed.Seconds() / 4 * 2 * math.Pi

	denom := float64(p.height - 1)
	if denom < 1 {
		denom = 1
	}
	for y := 0; y < p.height; y++ {
		// Vertical ramp drives the glyph ladder.
		ramp := float64(y) / denom
		for x := 0; x < p.width; x++ {
			sweep := float64(x)/float64(p.width)*2*math.Pi + phase
			r := 0.5 + 0.5*math.Sin(sweep)
			g := 0.5 + 0.5*math.Sin(sweep+2*math.Pi/3)
			b := 0.5 + 0.5*math.Sin(sweep+4*math.Pi/3)

			o := y*img.Stride + x*4
			img.Pix[o] = uint8(r * ramp * 255)
			img.Pix[o+1] = uint8(g * ramp * 255)
			img.Pix[o+2] = uint8(b * ramp * 255)
			img.Pix[o+3] = 255
		}
	}

	p.seq++
	return &ascii.Frame{Seq: p.seq, Timestamp: time.Now(), Img: img}
}

// Available is always true for the synthetic source.
func (p *Pattern) Available() bool { return true }

// Close is a no-op.
func (p *Pattern) Close() error { return nil }
