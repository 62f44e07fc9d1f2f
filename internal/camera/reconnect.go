package camera

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

// reconnectBackoff is the minimum wait between capture restart attempts.
const reconnectBackoff = 2 * time.Second

// Reconnecting wraps a capture source and restarts it when the device stops
// delivering frames, e.g. a webcam that was unplugged and plugged back in.
// Restart attempts are throttled so a missing device does not spawn a
// process per render cycle.
type Reconnecting struct {
	dial    func(ctx context.Context) (Source, error)
	log     *slog.Logger
	backoff time.Duration

	mu      sync.Mutex
	ctx     context.Context
	cur     Source
	lastTry time.Time
}

// NewReconnecting creates a self-healing ffmpeg capture source.
func NewReconnecting(cfg FFmpegConfig, log *slog.Logger) *Reconnecting {
	return &Reconnecting{
		dial: func(ctx context.Context) (Source, error) {
			c := NewFFmpeg(cfg, log)
			if err := c.Start(ctx); err != nil {
				return nil, err
			}
			return c, nil
		},
		log:     log,
		backoff: reconnectBackoff,
	}
}

// Start launches the initial capture. A failure here is fatal: it means
// ffmpeg itself could not be started, not that the device is flaky.
func (r *Reconnecting) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctx = ctx
	cur, err := r.dial(ctx)
	if err != nil {
		return err
	}
	r.cur = cur
	r.lastTry = time.Now()
	return nil
}

// NextFrame returns the newest frame, restarting the capture process first
// if it has died and the backoff window has passed.
func (r *Reconnecting) NextFrame() *ascii.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cur != nil && r.cur.Available() {
		return r.cur.NextFrame()
	}

	if time.Since(r.lastTry) < r.backoff {
		return nil
	}
	r.lastTry = time.Now()

	if r.cur != nil {
		r.cur.Close()
		r.cur = nil
	}

	cur, err := r.dial(r.ctx)
	if err != nil {
		r.log.Warn("camera restart failed", "err", err)
		return nil
	}
	r.log.Info("camera capture restarted")
	r.cur = cur
	return nil
}

// Restart tears down the current capture so the next NextFrame redials
// immediately, bypassing the backoff. Bound to an interactive key.
func (r *Reconnecting) Restart() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cur != nil {
		r.cur.Close()
		r.cur = nil
	}
	r.lastTry = time.Time{}
}

// Available reports whether the underlying capture is delivering frames.
func (r *Reconnecting) Available() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur != nil && r.cur.Available()
}

// Close stops the current capture process, if any.
func (r *Reconnecting) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cur == nil {
		return nil
	}
	err := r.cur.Close()
	r.cur = nil
	return err
}
