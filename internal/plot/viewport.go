// Package plot maps a byte histogram onto an interactive chart: the visible
// window (Viewport) and its rasterisation through go-chart.
package plot

import "math"

const (
	// DomainMin and DomainMax bound the byte values on the x axis.
	DomainMin = 0.0
	DomainMax = 255.0

	minSpanX = 4.0
	maxSpanX = 512.0
	minSpanY = 1e-3
	maxSpanY = 1e15

	headroom = 1.05
)

// Viewport is the visible data window. X is the byte value, Y the plotted
// frequency (already log transformed when the log scale is on).
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultViewport shows every byte value and the full height up to peak.
func DefaultViewport(peak float64) Viewport {
	yMax := peak * headroom
	if yMax < 1 || math.IsNaN(yMax) {
		yMax = 1
	}
	return Viewport{XMin: DomainMin, XMax: DomainMax, YMin: 0, YMax: yMax}
}

func (v Viewport) SpanX() float64 { return v.XMax - v.XMin }
func (v Viewport) SpanY() float64 { return v.YMax - v.YMin }

// Valid reports whether both ranges are finite and non-empty.
func (v Viewport) Valid() bool {
	for _, f := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return v.XMax > v.XMin && v.YMax > v.YMin
}

// Pan shifts the window by a fraction of its size. Positive dxFrac drags the
// content to the right; positive dyFrac drags it down (screen coordinates).
func (v Viewport) Pan(dxFrac, dyFrac float64) Viewport {
	sx, sy := v.SpanX(), v.SpanY()
	out := Viewport{
		XMin: v.XMin - dxFrac*sx,
		XMax: v.XMax - dxFrac*sx,
		YMin: v.YMin + dyFrac*sy,
		YMax: v.YMax + dyFrac*sy,
	}
	return out.clampX()
}

// Zoom scales the window by factor around an anchor given as plot fractions
// (ax from the left, ay from the bottom). factor > 1 zooms in.
func (v Viewport) Zoom(factor, ax, ay float64) Viewport {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return v
	}
	ax = clamp01(ax)
	ay = clamp01(ay)

	sx := clamp(v.SpanX()/factor, minSpanX, maxSpanX)
	sy := clamp(v.SpanY()/factor, minSpanY, maxSpanY)

	anchorX := v.XMin + ax*v.SpanX()
	anchorY := v.YMin + ay*v.SpanY()

	out := Viewport{
		XMin: anchorX - ax*sx,
		XMax: anchorX + (1-ax)*sx,
		YMin: anchorY - ay*sy,
		YMax: anchorY + (1-ay)*sy,
	}
	return out.clampX()
}

// Contains reports whether the data point lies inside the window.
func (v Viewport) Contains(x, y float64) bool {
	return x >= v.XMin && x <= v.XMax && y >= v.YMin && y <= v.YMax
}

// ByteAt maps a horizontal plot fraction to the nearest byte value. ok is
// false when the position falls outside the byte domain.
func (v Viewport) ByteAt(xFrac float64) (value byte, ok bool) {
	x := math.Round(v.XMin + xFrac*v.SpanX())
	if x < DomainMin || x > DomainMax || math.IsNaN(x) {
		return 0, false
	}
	return byte(x), true
}

// clampX keeps at least half of the window over the byte domain so the
// series never scrolls out of sight.
func (v Viewport) clampX() Viewport {
	half := v.SpanX() / 2
	if lo := DomainMin - half; v.XMin < lo {
		v.XMax += lo - v.XMin
		v.XMin = lo
	}
	if hi := DomainMax + half; v.XMax > hi {
		v.XMin -= v.XMax - hi
		v.XMax = hi
	}
	return v
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return 0.5
	}
	return clamp(f, 0, 1)
}
