package camera

import (
	"context"
	"testing"
	"time"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

func TestFrameSlot_OverwriteLatest(t *testing.T) {
	var s frameSlot

	if f := s.take(); f != nil {
		t.Fatal("empty slot returned a frame")
	}

	first := &ascii.Frame{Seq: 1}
	second := &ascii.Frame{Seq: 2}
	s.put(first)
	s.put(second)

	// The stale frame is gone; only the newest survives.
	if f := s.take(); f == nil || f.Seq != 2 {
		t.Fatalf("take = %+v, want seq 2", f)
	}
	// Consuming drains the slot until the producer publishes again.
	if f := s.take(); f != nil {
		t.Fatalf("second take = %+v, want nil", f)
	}
}

func TestPattern_ProducesCanonicalFrames(t *testing.T) {
	p := NewPattern(32, 24)
	if err := p.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !p.Available() {
		t.Fatal("pattern source not available")
	}

	f := p.NextFrame()
	if f == nil {
		t.Fatal("pattern produced no frame")
	}
	if f.Width() != 32 || f.Height() != 24 {
		t.Errorf("frame is %dx%d, want 32x24", f.Width(), f.Height())
	}
	if f.Seq != 1 {
		t.Errorf("seq = %d, want 1", f.Seq)
	}

	// Alpha is opaque everywhere; the top row is the dark end of the ramp.
	if a := f.Img.Pix[3]; a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	top := f.Img.RGBAAt(0, 0)
	bottom := f.Img.RGBAAt(0, 23)
	topLum := ascii.Luminance(top.R, top.G, top.B)
	bottomLum := ascii.Luminance(bottom.R, bottom.G, bottom.B)
	if topLum > bottomLum {
		t.Errorf("ramp inverted: top lum %d > bottom lum %d", topLum, bottomLum)
	}
}

func TestPattern_Animates(t *testing.T) {
	p := NewPattern(64, 8)
	if err := p.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	a := p.FrameAt(0)
	b := p.FrameAt(2 * time.Second)

	same := true
	for i := range a.Img.Pix {
		if a.Img.Pix[i] != b.Img.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("pattern did not change over time")
	}
	if b.Seq <= a.Seq {
		t.Errorf("sequence did not advance: %d then %d", a.Seq, b.Seq)
	}
}

func TestFFmpegConfig_Defaults(t *testing.T) {
	var cfg FFmpegConfig
	cfg.defaults()

	if cfg.Device != "/dev/video0" {
		t.Errorf("device = %q, want /dev/video0", cfg.Device)
	}
	if cfg.InputFormat != "v4l2" {
		t.Errorf("input format = %q, want v4l2", cfg.InputFormat)
	}
	if cfg.Width != 640 || cfg.Height != 480 || cfg.FPS != 30 {
		t.Errorf("defaults = %dx%d@%d, want 640x480@30", cfg.Width, cfg.Height, cfg.FPS)
	}

	// Explicit values survive.
	cfg = FFmpegConfig{Device: "/dev/video2", Width: 1280, Height: 720, FPS: 15}
	cfg.defaults()
	if cfg.Device != "/dev/video2" || cfg.Width != 1280 || cfg.FPS != 15 {
		t.Errorf("explicit config overridden: %+v", cfg)
	}
}
