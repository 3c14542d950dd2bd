package core

import (
	"sync"
	"time"
)

// DefaultFrameWindow is the number of frames after which a FrameRate starts a
// new measuring window.
const DefaultFrameWindow = 200

// FrameRate measures how many frames are produced per wall-clock second.
// It is safe for concurrent use.
type FrameRate struct {
	mu      sync.Mutex
	window  int
	frames  int
	started time.Time
	last    float64
	now     func() time.Time
}

// NewFrameRate creates a counter that restarts its window every `window` frames.
func NewFrameRate(window int) *FrameRate {
	if window <= 0 {
		window = DefaultFrameWindow
	}
	f := &FrameRate{window: window, now: time.Now}
	f.started = f.now()
	return f
}

// Start resets the counter and starts timing from now.
func (f *FrameRate) Start() {
	f.mu.Lock()
	f.frames = 0
	f.started = f.now()
	f.mu.Unlock()
}

// Frame records one produced frame and returns the rate over the current window.
// Once the window fills up, the count restarts.
func (f *FrameRate) Frame() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.frames++
	f.last = f.rate()
	if f.frames > f.window {
		f.frames = 0
		f.started = f.now()
	}
	return f.last
}

// FPS returns the rate computed by the most recent Frame call.
func (f *FrameRate) FPS() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func (f *FrameRate) rate() float64 {
	elapsed := f.now().Sub(f.started)
	if elapsed <= 0 {
		return 0
	}
	return float64(f.frames) / elapsed.Seconds()
}
