package camera

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os/exec"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

// FFmpegConfig configures a webcam capture process.
type FFmpegConfig struct {
	// Device is the capture device path, e.g. /dev/video0.
	Device string
	// InputFormat is the ffmpeg demuxer, v4l2 on Linux.
	InputFormat string
	// Width and Height of the capture resolution.
	Width  int
	Height int
	// FPS is the capture rate requested from the device.
	FPS int
}

func (c *FFmpegConfig) defaults() {
	if c.Device == "" {
		c.Device = "/dev/video0"
	}
	if c.InputFormat == "" {
		c.InputFormat = "v4l2"
	}
	if c.Width == 0 {
		c.Width = 640
	}
	if c.Height == 0 {
		c.Height = 480
	}
	if c.FPS == 0 {
		c.FPS = 30
	}
}

// FFmpeg captures webcam frames by running ffmpeg as a subprocess and
// reading raw rgb24 video off its stdout pipe. Channel order is
// canonicalised to RGBA here, at ingestion, so the rest of the pipeline
// never sees device byte order.
type FFmpeg struct {
	cfg  FFmpegConfig
	log  *slog.Logger
	slot frameSlot

	cmd       *exec.Cmd
	stdout    io.ReadCloser
	cancel    context.CancelFunc
	group     *errgroup.Group
	available atomic.Bool
	seq       atomic.Uint64
}

// NewFFmpeg creates an ffmpeg-backed camera source.
func NewFFmpeg(cfg FFmpegConfig, log *slog.Logger) *FFmpeg {
	cfg.defaults()
	return &FFmpeg{cfg: cfg, log: log}
}

// Start launches the capture process and its reader goroutine.
func (c *FFmpeg) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner",
		"-loglevel", "error",
		"-f", c.cfg.InputFormat,
		"-framerate", fmt.Sprintf("%d", c.cfg.FPS),
		"-video_size", fmt.Sprintf("%dx%d", c.cfg.Width, c.cfg.Height),
		"-i", c.cfg.Device,
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("creating capture pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting ffmpeg for %s: %w", c.cfg.Device, err)
	}

	c.cmd = cmd
	c.stdout = stdout
	c.available.Store(true)
	c.log.Info("camera capture started",
		"device", c.cfg.Device,
		"size", fmt.Sprintf("%dx%d", c.cfg.Width, c.cfg.Height),
		"fps", c.cfg.FPS)

	c.group, _ = errgroup.WithContext(ctx)
	c.group.Go(func() error {
		defer c.available.Store(false)
		return c.readLoop(ctx)
	})
	c.group.Go(func() error {
		// Reap the process; an error here usually means the device
		// vanished or is busy.
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			c.log.Error("ffmpeg exited", "err", err)
			return err
		}
		return nil
	})
	return nil
}

// readLoop reads rgb24 frames off the pipe and publishes them one at a time.
func (c *FFmpeg) readLoop(ctx context.Context) error {
	frameSize := c.cfg.Width * c.cfg.Height * 3
	raw := make([]byte, frameSize)

	for {
		if ctx.Err() != nil {
			return nil
		}
		if _, err := io.ReadFull(c.stdout, raw); err != nil {
			if ctx.Err() != nil || err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return fmt.Errorf("reading frame: %w", err)
		}
		c.slot.put(c.toFrame(raw))
	}
}

// toFrame expands packed rgb24 into a fresh RGBA frame. Each published frame
// gets its own buffer: the consumer may still be rasterizing the previous
// one while the next arrives.
func (c *FFmpeg) toFrame(raw []byte) *ascii.Frame {
	img := image.NewRGBA(image.Rect(0, 0, c.cfg.Width, c.cfg.Height))
	si, di := 0, 0
	for p := 0; p < c.cfg.Width*c.cfg.Height; p++ {
		img.Pix[di] = raw[si]
		img.Pix[di+1] = raw[si+1]
		img.Pix[di+2] = raw[si+2]
		img.Pix[di+3] = 255
		si += 3
		di += 4
	}
	return &ascii.Frame{
		Seq:       c.seq.Add(1),
		Timestamp: time.Now(),
		Img:       img,
	}
}

// NextFrame returns the newest unconsumed frame, or nil if the device has
// produced nothing since the last call.
func (c *FFmpeg) NextFrame() *ascii.Frame {
	return c.slot.take()
}

// Available reports whether the capture process is delivering frames.
func (c *FFmpeg) Available() bool {
	return c.available.Load()
}

// Close stops the capture process and waits for the reader to finish.
func (c *FFmpeg) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	if c.group != nil {
		if err := c.group.Wait(); err != nil {
			return err
		}
	}
	return nil
}
