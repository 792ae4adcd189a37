package loading

import "math"

// Progress circle placement
const (
	ProgressSizeMultiplier float32 = 0.4
	ProgressLeftMargin     float32 = 16
)

// Rect is an axis aligned rectangle in control coordinates
type Rect struct {
	Left, Top, Right, Bottom float32
}

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Center returns the middle point of the rectangle
func (r Rect) Center() (float32, float32) {
	return r.Left + r.Width()/2, r.Top + r.Height()/2
}

// TextMetrics describes a rendered string. Ascent is negative (above the
// baseline) and Descent positive.
type TextMetrics struct {
	Width   float32
	Ascent  float32
	Descent float32
}

// TextMeasurer measures a string with the button font
type TextMeasurer func(text string) TextMetrics

// Geometry is computed once, on the first Loading state, and reused
type Geometry struct {
	TextBounds Rect
	Progress   Rect
}

// ProgressRadius returns the progress circle radius for a control size
func ProgressRadius(width, height float32) float32 {
	return float32(math.Min(float64(width), float64(height))) / 2 * ProgressSizeMultiplier
}

// ComputeGeometry places the progress circle right of the text bounds and
// vertically centred. Text bounds are measured at the origin.
func ComputeGeometry(text TextMetrics, height, radius float32) Geometry {
	bounds := Rect{Left: 0, Top: text.Ascent, Right: text.Width, Bottom: text.Descent}
	cx := bounds.Right + bounds.Width() + ProgressLeftMargin
	cy := height / 2
	return Geometry{
		TextBounds: bounds,
		Progress: Rect{
			Left:   cx - radius,
			Top:    cy - radius,
			Right:  cx + radius,
			Bottom: cy + radius,
		},
	}
}

// TextOffset is added to the vertical centre to get the text baseline
func TextOffset(ascent, descent float32) float32 {
	return (descent-ascent)/2 - descent
}

// InArc reports whether point (x, y) lies in the pie slice inscribed in r that
// starts at 0 degrees (3 o'clock) and sweeps clockwise by sweep degrees.
func InArc(x, y float32, r Rect, sweep float32) bool {
	if sweep <= 0 {
		return false
	}
	rx, ry := r.Width()/2, r.Height()/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	cx, cy := r.Center()
	dx := float64((x - cx) / rx)
	dy := float64((y - cy) / ry)
	if dx*dx+dy*dy > 1 {
		return false
	}
	if sweep >= FullAngle {
		return true
	}
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle <= float64(sweep)
}
