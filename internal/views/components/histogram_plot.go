package components

import (
	"fmt"
	"image"
	"math"

	"file-histogram/internal/histogram"
	"file-histogram/internal/logger"
	"file-histogram/internal/plot"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultPlotHeight = 300

	// zoom factor per scrolled unit
	scrollZoomRate = 0.01
)

// HistogramPlot is an interactive line chart of a byte histogram. Dragging
// pans, scrolling zooms around the cursor, double tap resets the view and
// hovering shows the count under the cursor.
type HistogramPlot struct {
	widget.BaseWidget

	hist     *histogram.Histogram
	color    drawing.Color
	viewport plot.Viewport
	logScale bool
	height   float32
	logger   logger.Logger

	image    *canvas.Image
	readout  *canvas.Text
	rendered fyne.Size
	readText string
}

// NewHistogramPlot creates an empty plot
func NewHistogramPlot(height float32, log logger.Logger) *HistogramPlot {
	if height <= 0 {
		height = DefaultPlotHeight
	}
	if log == nil {
		log = logger.Nop{}
	}
	p := &HistogramPlot{
		height:   height,
		logger:   log,
		viewport: plot.DefaultViewport(0),
		color:    plot.DefaultSeriesColor,
	}
	p.image = canvas.NewImageFromImage(plot.Blank(1, 1))
	p.image.FillMode = canvas.ImageFillStretch
	p.image.ScaleMode = canvas.ImageScaleSmooth
	p.readout = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	p.readout.TextSize = theme.CaptionTextSize()
	p.ExtendBaseWidget(p)
	return p
}

// SetHistogram replaces the plotted data and resets the view
func (p *HistogramPlot) SetHistogram(h *histogram.Histogram, path string) {
	p.hist = h
	p.color = plot.SeriesColor(path)
	p.resetViewport()
	p.redraw()
}

// Clear removes the plotted data
func (p *HistogramPlot) Clear() {
	p.hist = nil
	p.setReadout("")
	p.viewport = plot.DefaultViewport(0)
	p.redraw()
}

// SetLogScale switches the y scale and resets the view
func (p *HistogramPlot) SetLogScale(enabled bool) {
	if p.logScale == enabled {
		return
	}
	p.logScale = enabled
	p.resetViewport()
	p.redraw()
}

// LogScale reports whether the y axis is logarithmic
func (p *HistogramPlot) LogScale() bool {
	return p.logScale
}

// ResetView restores the full byte range and height
func (p *HistogramPlot) ResetView() {
	p.resetViewport()
	p.redraw()
}

// Viewport returns the visible window
func (p *HistogramPlot) Viewport() plot.Viewport {
	return p.viewport
}

// Readout returns the hover text
func (p *HistogramPlot) Readout() string {
	return p.readText
}

// Image returns the last rendered chart
func (p *HistogramPlot) Image() image.Image {
	return p.image.Image
}

// HasData reports whether a histogram is plotted
func (p *HistogramPlot) HasData() bool {
	return p.hist != nil
}

func (p *HistogramPlot) resetViewport() {
	if p.hist == nil {
		p.viewport = plot.DefaultViewport(0)
		return
	}
	p.viewport = plot.DefaultViewport(plot.PeakValue(p.hist, p.logScale))
}

// Dragged pans the view
func (p *HistogramPlot) Dragged(ev *fyne.DragEvent) {
	if p.hist == nil {
		return
	}
	area := p.plotArea()
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	p.viewport = p.viewport.Pan(
		float64(ev.Dragged.DX)/float64(area.Dx()),
		float64(ev.Dragged.DY)/float64(area.Dy()),
	)
	p.redraw()
}

// DragEnd implements fyne.Draggable
func (p *HistogramPlot) DragEnd() {}

// Scrolled zooms around the cursor
func (p *HistogramPlot) Scrolled(ev *fyne.ScrollEvent) {
	if p.hist == nil {
		return
	}
	delta := float64(ev.Scrolled.DY)
	if delta == 0 {
		delta = float64(ev.Scrolled.DX)
	}
	if delta == 0 {
		return
	}

	fx, fy, inside := plot.Fraction(p.plotArea(), float64(ev.Position.X), float64(ev.Position.Y))
	if !inside {
		fx, fy = 0.5, 0.5
	}
	p.viewport = p.viewport.Zoom(math.Exp(delta*scrollZoomRate), fx, fy)
	p.redraw()
}

// DoubleTapped resets the view
func (p *HistogramPlot) DoubleTapped(*fyne.PointEvent) {
	p.ResetView()
}

// MouseIn implements desktop.Hoverable
func (p *HistogramPlot) MouseIn(ev *desktop.MouseEvent) {
	p.MouseMoved(ev)
}

// MouseMoved updates the readout for the byte under the cursor
func (p *HistogramPlot) MouseMoved(ev *desktop.MouseEvent) {
	p.setReadout(p.readoutAt(ev.Position))
}

// MouseOut clears the readout
func (p *HistogramPlot) MouseOut() {
	p.setReadout("")
}

func (p *HistogramPlot) setReadout(text string) {
	p.readText = text
	p.readout.Text = text
	p.placeReadout(p.Size())
	p.readout.Refresh()
}

// placeReadout pins the hover text to the top right corner
func (p *HistogramPlot) placeReadout(size fyne.Size) {
	textSize := p.readout.MinSize()
	p.readout.Resize(textSize)
	p.readout.Move(fyne.NewPos(size.Width-textSize.Width-theme.Padding()*4, theme.Padding()))
}

func (p *HistogramPlot) readoutAt(pos fyne.Position) string {
	if p.hist == nil {
		return ""
	}
	fx, _, inside := plot.Fraction(p.plotArea(), float64(pos.X), float64(pos.Y))
	if !inside {
		return ""
	}
	value, ok := p.viewport.ByteAt(fx)
	if !ok {
		return ""
	}
	return FormatReadout(value, p.hist[value])
}

// FormatReadout renders the hover text for one byte value
func FormatReadout(value byte, count uint64) string {
	return fmt.Sprintf("byte 0x%02X (%d): %d", value, value, count)
}

func (p *HistogramPlot) plotArea() image.Rectangle {
	size := p.Size()
	return plot.PlotArea(int(size.Width), int(size.Height))
}

func (p *HistogramPlot) redraw() {
	size := p.Size()
	if size.Width < 1 || size.Height < 1 {
		return
	}
	p.render(size)
}

func (p *HistogramPlot) render(size fyne.Size) {
	p.rendered = size
	if p.hist == nil {
		p.image.Image = plot.Blank(int(size.Width), int(size.Height))
		p.image.Refresh()
		return
	}

	img, err := plot.Render(p.hist, plot.Options{
		Width:    int(size.Width),
		Height:   int(size.Height),
		Viewport: p.viewport,
		LogScale: p.logScale,
		Color:    p.color,
	})
	if err != nil {
		p.logger.Warning("Plot render failed", map[string]interface{}{
			"error":    err.Error(),
			"viewport": fmt.Sprintf("%+v", p.viewport),
		})
	}
	p.image.Image = img
	p.image.Refresh()
}

// CreateRenderer implements fyne.Widget
func (p *HistogramPlot) CreateRenderer() fyne.WidgetRenderer {
	return &histogramPlotRenderer{
		plot:    p,
		objects: []fyne.CanvasObject{p.image, p.readout},
	}
}

type histogramPlotRenderer struct {
	plot    *HistogramPlot
	objects []fyne.CanvasObject
}

func (r *histogramPlotRenderer) Layout(size fyne.Size) {
	r.plot.image.Resize(size)
	r.plot.image.Move(fyne.NewPos(0, 0))

	r.plot.placeReadout(size)

	if size != r.plot.rendered {
		r.plot.render(size)
	}
}

func (r *histogramPlotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(plot.MinWidth, r.plot.height)
}

func (r *histogramPlotRenderer) Refresh() {
	r.plot.readout.Color = theme.Color(theme.ColorNameForeground)
	r.plot.readout.Refresh()
	canvas.Refresh(r.plot.image)
}

func (r *histogramPlotRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *histogramPlotRenderer) Destroy() {}

var (
	_ fyne.Draggable      = (*HistogramPlot)(nil)
	_ fyne.Scrollable     = (*HistogramPlot)(nil)
	_ fyne.DoubleTappable = (*HistogramPlot)(nil)
	_ desktop.Hoverable   = (*HistogramPlot)(nil)
)
