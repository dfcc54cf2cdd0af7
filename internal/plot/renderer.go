package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"file-histogram/internal/histogram"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	SeriesName = "Byte frequency"
	XAxisLabel = "Byte Value (0-255)"
	YAxisLabel = "Frequency"

	MinWidth  = 160
	MinHeight = 120

	xTickCount = 9
	yTickCount = 6
)

// Padding around the chart canvas. Axis labels are laid out inside it by
// go-chart, so the plot area is approximated by PlotArea.
var Padding = chart.Box{Top: 14, Left: 16, Right: 16, Bottom: 12}

// Options control a single render
type Options struct {
	Width    int
	Height   int
	Viewport Viewport
	LogScale bool
	Color    drawing.Color
}

// Values returns the plotted y values for h, log transformed when requested.
func Values(h *histogram.Histogram, logScale bool) (xs, ys []float64) {
	xs, ys = h.Points()
	if logScale {
		for i := range ys {
			ys[i] = logValue(ys[i])
		}
	}
	return xs, ys
}

// PeakValue returns the largest plotted value of h.
func PeakValue(h *histogram.Histogram, logScale bool) float64 {
	_, peak := h.Peak()
	if logScale {
		return logValue(float64(peak))
	}
	return float64(peak)
}

// Render draws h inside the viewport. On failure a blank image of the
// requested size is returned together with the error.
func Render(h *histogram.Histogram, opts Options) (image.Image, error) {
	width, height := opts.Width, opts.Height
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}

	vp := opts.Viewport
	if !vp.Valid() {
		return Blank(width, height), fmt.Errorf("invalid viewport %+v", vp)
	}

	strokeColor := opts.Color
	if strokeColor.IsZero() {
		strokeColor = DefaultSeriesColor
	}

	xs, ys := Values(h, opts.LogScale)
	xs, ys = clip(xs, ys, vp)
	if len(xs) < 2 {
		return Blank(width, height), fmt.Errorf("no data inside viewport %+v", vp)
	}

	yLabel := formatCount
	axisName := YAxisLabel
	if opts.LogScale {
		yLabel = formatLogCount
		axisName = YAxisLabel + " (log)"
	}

	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: Padding},
		XAxis: chart.XAxis{
			Name:  XAxisLabel,
			Range: &chart.ContinuousRange{Min: vp.XMin, Max: vp.XMax},
			Ticks: byteTicks(vp.XMin, vp.XMax, xTickCount),
		},
		YAxis: chart.YAxis{
			Name:  axisName,
			Range: &chart.ContinuousRange{Min: vp.YMin, Max: vp.YMax},
			Ticks: niceTicks(vp.YMin, vp.YMax, yTickCount, yLabel),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    SeriesName,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: strokeColor,
					StrokeWidth: 2,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return Blank(width, height), fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return Blank(width, height), fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// clip limits the series to the viewport, interpolating the points where the
// line crosses the left and right edges and clamping y to the visible range.
func clip(xs, ys []float64, vp Viewport) ([]float64, []float64) {
	outX := make([]float64, 0, len(xs)+2)
	outY := make([]float64, 0, len(ys)+2)

	for i := range xs {
		x, y := xs[i], ys[i]
		if i > 0 {
			px, py := xs[i-1], ys[i-1]
			if px < vp.XMin && x > vp.XMin {
				outX = append(outX, vp.XMin)
				outY = append(outY, lerp(px, py, x, y, vp.XMin))
			}
			if px < vp.XMax && x > vp.XMax {
				outX = append(outX, vp.XMax)
				outY = append(outY, lerp(px, py, x, y, vp.XMax))
			}
		}
		if x >= vp.XMin && x <= vp.XMax {
			outX = append(outX, x)
			outY = append(outY, y)
		}
	}

	for i := range outY {
		outY[i] = clamp(outY[i], vp.YMin, vp.YMax)
	}
	return outX, outY
}

func lerp(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// PlotArea estimates where go-chart places the plot box inside an image of
// the given size.
func PlotArea(width, height int) image.Rectangle {
	const axisLeft, axisBottom = 64, 44
	x0, y0 := Padding.Left+axisLeft, Padding.Top
	x1, y1 := width-Padding.Right, height-Padding.Bottom-axisBottom
	if x1 <= x0 || y1 <= y0 {
		return image.Rect(0, 0, width, height)
	}
	return image.Rect(x0, y0, x1, y1)
}

// Fraction converts a pixel position into plot fractions (x from the left,
// y from the bottom). inside is false outside the plot box.
func Fraction(area image.Rectangle, px, py float64) (fx, fy float64, inside bool) {
	fx = (px - float64(area.Min.X)) / float64(area.Dx())
	fy = (float64(area.Max.Y) - py) / float64(area.Dy())
	inside = fx >= 0 && fx <= 1 && fy >= 0 && fy <= 1
	return fx, fy, inside
}

// Blank returns a plain white image.
func Blank(w, h int) image.Image {
	w = int(math.Max(1, float64(w)))
	h = int(math.Max(1, float64(h)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
