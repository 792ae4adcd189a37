package loading

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressRadius(t *testing.T) {
	require.InDelta(t, 12, ProgressRadius(400, 60), 1e-5)
	require.InDelta(t, 12, ProgressRadius(60, 400), 1e-5)
	require.Equal(t, float32(0), ProgressRadius(0, 100))
}

func TestComputeGeometry(t *testing.T) {
	req := require.New(t)
	g := ComputeGeometry(TextMetrics{Width: 100, Ascent: -20, Descent: 5}, 60, 12)

	req.Equal(Rect{Left: 0, Top: -20, Right: 100, Bottom: 5}, g.TextBounds)
	cx, cy := g.Progress.Center()
	req.InDelta(216, cx, 1e-5)
	req.InDelta(30, cy, 1e-5)
	req.InDelta(24, g.Progress.Width(), 1e-5)
	req.InDelta(24, g.Progress.Height(), 1e-5)
}

func TestTextOffset(t *testing.T) {
	// ascent -20, descent 5: glyph box spans 25, baseline sits 7.5 below centre
	require.InDelta(t, 7.5, TextOffset(-20, 5), 1e-5)
	require.InDelta(t, 0, TextOffset(-5, 5), 1e-5)
}

func TestInArc(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 20, Bottom: 20}
	tests := []struct {
		name     string
		x, y     float32
		sweep    float32
		expected bool
	}{
		{"no sweep", 15, 10, 0, false},
		{"outside circle", 0, 0, 360, false},
		{"full circle", 5, 5, 360, true},
		{"3 o'clock edge inside first degrees", 18, 10.1, 10, true},
		{"6 o'clock needs quarter turn", 10, 18, 80, false},
		{"6 o'clock inside quarter turn", 10, 18, 95, true},
		{"12 o'clock needs three quarters", 10, 2, 260, false},
		{"12 o'clock inside three quarters", 10, 2, 275, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, InArc(tt.x, tt.y, r, tt.sweep))
		})
	}
}

func TestInArc_EmptyRect(t *testing.T) {
	require.False(t, InArc(0, 0, Rect{}, 360))
}
