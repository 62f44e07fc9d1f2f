// Package camera supplies video frames to the conversion pipeline. Sources
// push the newest frame into a single slot; the pipeline pulls at its own
// pace and stale frames are silently replaced. Lowest latency wins over
// lossless delivery — there is never more than one frame in flight.
package camera

import (
	"context"
	"sync"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
)

// Source is the capture side of the pipeline boundary. NextFrame returns nil
// when no new frame has arrived since the last call; that is not an error,
// the cycle just keeps showing the last grid.
type Source interface {
	// Start begins capturing. It returns once capture is running; frames
	// arrive asynchronously until ctx is cancelled or Close is called.
	Start(ctx context.Context) error
	// NextFrame returns the newest unconsumed frame, or nil.
	NextFrame() *ascii.Frame
	// Available reports whether the source is currently delivering.
	Available() bool
	// Close releases the capture device.
	Close() error
}

// frameSlot is a single-slot handoff between the capture goroutine and the
// render loop: the producer overwrites, the consumer takes at most once per
// frame, and nobody ever blocks.
type frameSlot struct {
	mu    sync.Mutex
	frame *ascii.Frame
}

func (s *frameSlot) put(f *ascii.Frame) {
	s.mu.Lock()
	s.frame = f
	s.mu.Unlock()
}

func (s *frameSlot) take() *ascii.Frame {
	s.mu.Lock()
	f := s.frame
	s.frame = nil
	s.mu.Unlock()
	return f
}
