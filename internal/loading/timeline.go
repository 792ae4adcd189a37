package loading

import (
	"math"
	"time"
)

// DefaultDuration is the length of one animation cycle
const DefaultDuration = 3 * time.Second

// FullAngle is the sweep of a complete cycle in degrees
const FullAngle float32 = 360

// Frame is one sample of the button animation
type Frame struct {
	SweepAngle float32 // degrees, [0,360)
	FillOffset float32 // pixels from the left edge, [0,width)
}

// Timeline is a looping linear timeline that drives both the arc sweep and the
// background fill from the same fraction.
type Timeline struct {
	duration time.Duration
	width    float32
}

// NewTimeline creates a timeline for a control of the given width
func NewTimeline(duration time.Duration, width float32) Timeline {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if width < 0 {
		width = 0
	}
	return Timeline{duration: duration, width: width}
}

// Duration returns the cycle length
func (t Timeline) Duration() time.Duration {
	return t.duration
}

// Width returns the width the fill offset is bound to
func (t Timeline) Width() float32 {
	return t.width
}

// Fraction returns (elapsed mod duration) / duration
func (t Timeline) Fraction(elapsed time.Duration) float32 {
	rem := elapsed % t.duration
	if rem < 0 {
		rem += t.duration
	}
	return float32(float64(rem) / float64(t.duration))
}

// Sample derives a frame from a cycle fraction. Values outside [0,1) wrap.
func (t Timeline) Sample(f float32) Frame {
	f = wrap(f)
	return Frame{
		SweepAngle: FullAngle * f,
		FillOffset: t.width * f,
	}
}

// At samples the timeline after elapsed time
func (t Timeline) At(elapsed time.Duration) Frame {
	return t.Sample(t.Fraction(elapsed))
}

func wrap(f float32) float32 {
	w := f - float32(math.Floor(float64(f)))
	if w >= 1 {
		return 0
	}
	return w
}
