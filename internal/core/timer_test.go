package core

import (
	"testing"
	"time"
)

func TestFrameClockRemaining(t *testing.T) {
	fc := NewFrameClock(10)
	if fc.Frame() != 100*time.Millisecond {
		t.Fatalf("frame = %v, want 100ms", fc.Frame())
	}
	if got := fc.Remaining(30 * time.Millisecond); got != 70*time.Millisecond {
		t.Fatalf("Remaining(30ms) = %v", got)
	}
	if got := fc.Remaining(150 * time.Millisecond); got != 0 {
		t.Fatalf("overlong frame should not wait, got %v", got)
	}
}

func TestFrameClockHold(t *testing.T) {
	fc := NewFrameClock(20)
	base := time.Unix(0, 0)
	now := base
	var slept time.Duration
	fc.now = func() time.Time { return now }
	fc.sleep = func(d time.Duration) { slept = d }

	fc.Begin()
	now = base.Add(10 * time.Millisecond)
	fc.Hold()

	if slept != 40*time.Millisecond {
		t.Fatalf("slept %v, want 40ms", slept)
	}
	if got := fc.ActualFPS(); got != 100 {
		t.Fatalf("ActualFPS = %v, want 100", got)
	}
}

func TestFrameClockDefaultsFPS(t *testing.T) {
	if fc := NewFrameClock(0); fc.Frame() != time.Second/24 {
		t.Fatalf("default frame = %v", fc.Frame())
	}
}

func TestFrameClockMeasureCurrentFrame(t *testing.T) {
	fc := NewFrameClock(20)
	base := time.Unix(0, 0)
	now := base
	fc.now = func() time.Time { return now }
	fc.sleep = func(time.Duration) {}

	fc.Begin()
	now = base.Add(10 * time.Millisecond)
	fc.Hold()

	fc.Begin()
	now = now.Add(25 * time.Millisecond)
	if got := fc.Measure(); got != 25*time.Millisecond {
		t.Fatalf("Measure = %v, want 25ms", got)
	}
	if got := fc.ActualFPS(); got != 40 {
		t.Fatalf("ActualFPS = %v, want 40 for the frame in progress", got)
	}
}
