package core

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestFrameRate(window int) (*FrameRate, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	f := NewFrameRate(window)
	f.now = clock.now
	f.Start()
	return f, clock
}

func TestFrameRateComputesFPS(t *testing.T) {
	f, clock := newTestFrameRate(100)

	for i := 0; i < 10; i++ {
		clock.advance(100 * time.Millisecond)
		f.Frame()
	}

	// 10 frames in 1 second
	if got := f.FPS(); math.Abs(got-10) > 1e-9 {
		t.Errorf("FPS() = %v, expected 10", got)
	}
}

func TestFrameRateZeroElapsed(t *testing.T) {
	f, _ := newTestFrameRate(10)
	if got := f.Frame(); got != 0 {
		t.Errorf("Frame() with no elapsed time = %v, expected 0", got)
	}
}

func TestFrameRateWindowReset(t *testing.T) {
	f, clock := newTestFrameRate(5)

	for i := 0; i < 6; i++ {
		clock.advance(10 * time.Millisecond)
		f.Frame()
	}

	// Window filled up on the sixth frame, so timing restarted
	clock.advance(50 * time.Millisecond)
	if got := f.Frame(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Frame() after reset = %v, expected 20", got)
	}
}

func TestFrameRateDefaultWindow(t *testing.T) {
	f := NewFrameRate(0)
	if f.window != DefaultFrameWindow {
		t.Errorf("window = %d, expected %d", f.window, DefaultFrameWindow)
	}
}
