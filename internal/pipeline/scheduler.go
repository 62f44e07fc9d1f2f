package pipeline

import (
	"time"
)

// Mode selects the target frame rate.
type Mode int

const (
	// ModeFast targets ~15 fps for a fluid live feel.
	ModeFast Mode = iota
	// ModeSlow targets ~5 fps to cut CPU on slow terminals.
	ModeSlow
)

// Target frame intervals per mode.
const (
	FastInterval = 66 * time.Millisecond
	SlowInterval = 200 * time.Millisecond
)

func (m Mode) String() string {
	if m == ModeSlow {
		return "slow"
	}
	return "fast"
}

// Interval returns the mode's default target frame interval.
func (m Mode) Interval() time.Duration {
	if m == ModeSlow {
		return SlowInterval
	}
	return FastInterval
}

// Scheduler decides when the next frame may be accepted. It is a plain state
// machine: the caller's loop asks Delay for the remaining budget, sleeps that
// long (cancellably), then reports Accept/Skip and the measured processing
// time. Nothing here blocks, so shutdown latency is bounded by whatever
// sleep primitive the caller uses.
type Scheduler struct {
	mode         Mode
	fastInterval time.Duration
	slowInterval time.Duration

	lastAccept   time.Time
	lastDuration time.Duration
	skipped      uint64

	// Rolling rate measurement: frames accepted over a ~1s window.
	windowStart  time.Time
	windowFrames int
	rate         float64
}

// NewScheduler creates a scheduler starting in fast mode. Non-positive
// intervals fall back to the mode defaults.
func NewScheduler(fast, slow time.Duration) *Scheduler {
	if fast <= 0 {
		fast = FastInterval
	}
	if slow <= 0 {
		slow = SlowInterval
	}
	return &Scheduler{
		mode:         ModeFast,
		fastInterval: fast,
		slowInterval: slow,
	}
}

// Mode returns the current speed mode.
func (s *Scheduler) Mode() Mode { return s.mode }

// Interval returns the current target frame interval.
func (s *Scheduler) Interval() time.Duration {
	if s.mode == ModeSlow {
		return s.slowInterval
	}
	return s.fastInterval
}

// SetMode switches speed modes and resets the timing accumulators, so the
// new interval governs the very next cycle instead of a stale countdown.
func (s *Scheduler) SetMode(mode Mode, now time.Time) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.lastAccept = now
	s.windowStart = now
	s.windowFrames = 0
}

// Delay returns how long the caller should wait before running the next
// cycle. Zero means the frame budget has already elapsed. The result is
// never larger than the target interval, which bounds every sleep.
func (s *Scheduler) Delay(now time.Time) time.Duration {
	if s.lastAccept.IsZero() {
		return 0
	}
	elapsed := now.Sub(s.lastAccept)
	interval := s.Interval()
	if elapsed >= interval {
		return 0
	}
	if elapsed < 0 {
		// Clock went backwards; re-arm the full budget rather than
		// stretching the sleep.
		return interval
	}
	return interval - elapsed
}

// Accept records that a frame was accepted for processing and advances the
// rolling rate window.
func (s *Scheduler) Accept(now time.Time) {
	s.lastAccept = now
	if s.windowStart.IsZero() {
		s.windowStart = now
	}
	s.windowFrames++
	if window := now.Sub(s.windowStart); window >= time.Second {
		s.rate = float64(s.windowFrames) / window.Seconds()
		s.windowFrames = 0
		s.windowStart = now
	}
}

// Skip records a cycle that produced no new frame (budget not elapsed, or
// the camera had nothing ready).
func (s *Scheduler) Skip() { s.skipped++ }

// Observe records the processing duration of the last accepted frame.
func (s *Scheduler) Observe(d time.Duration) { s.lastDuration = d }

// Rate returns the measured frame rate over the last full window.
func (s *Scheduler) Rate() float64 { return s.rate }

// LastDuration returns the processing time of the last accepted frame.
func (s *Scheduler) LastDuration() time.Duration { return s.lastDuration }

// Skipped returns the number of skipped cycles since start.
func (s *Scheduler) Skipped() uint64 { return s.skipped }
