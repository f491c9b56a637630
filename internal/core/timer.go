package core

import "time"

// FrameClock paces a render loop at a steady frames-per-second rate and
// measures the rate actually achieved.
type FrameClock struct {
	frame time.Duration
	start time.Time
	last  time.Duration
	sleep func(time.Duration)
	now   func() time.Time
}

// NewFrameClock constructs a FrameClock targeting the given FPS.
func NewFrameClock(fps int) *FrameClock {
	fc := &FrameClock{sleep: time.Sleep, now: time.Now}
	fc.SetFPS(fps)
	return fc
}

// SetFPS changes the frame rate. Non-positive rates fall back to 24.
func (f *FrameClock) SetFPS(fps int) {
	if fps <= 0 {
		fps = 24
	}
	f.frame = time.Second / time.Duration(fps)
}

// Frame returns the target frame duration.
func (f *FrameClock) Frame() time.Duration { return f.frame }

// Begin marks the start of a frame.
func (f *FrameClock) Begin() { f.start = f.now() }

// Remaining returns how long to wait so that a frame which took elapsed
// lasts one full frame duration.
func (f *FrameClock) Remaining(elapsed time.Duration) time.Duration {
	if elapsed >= f.frame {
		return 0
	}
	return f.frame - elapsed
}

// Measure records the time spent since Begin and returns it.
func (f *FrameClock) Measure() time.Duration {
	f.last = f.now().Sub(f.start)
	return f.last
}

// Hold sleeps out the rest of the frame started by Begin.
func (f *FrameClock) Hold() {
	if d := f.Remaining(f.Measure()); d > 0 {
		f.sleep(d)
	}
}

// ActualFPS reports the rate implied by the work time of the most recent
// Measure or Hold.
func (f *FrameClock) ActualFPS() float64 {
	if f.last <= 0 {
		return 0
	}
	return float64(time.Second) / float64(f.last)
}
