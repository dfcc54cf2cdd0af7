package components

import (
	"testing"

	"file-histogram/internal/histogram"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolbarHandlers(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()
	chosen := 0
	resets := 0
	var logScale []bool
	toolbar.SetChooseHandler(func() { chosen++ })
	toolbar.SetResetHandler(func() { resets++ })
	toolbar.SetLogScaleHandler(func(v bool) { logScale = append(logScale, v) })

	test.Tap(toolbar.ChooseButton())
	assert.Equal(t, 1, chosen)

	assert.True(t, toolbar.ResetButton().Disabled())
	test.Tap(toolbar.ResetButton())
	assert.Equal(t, 0, resets)

	toolbar.EnablePlotOperations(true)
	test.Tap(toolbar.ResetButton())
	assert.Equal(t, 1, resets)

	toolbar.SetLogScale(true)
	assert.True(t, toolbar.LogScale())
	assert.Empty(t, logScale)
}

func TestFileInfo(t *testing.T) {
	test.NewTempApp(t)

	fi := NewFileInfo()
	assert.False(t, fi.Visible())

	fi.SetPath("/tmp/a.bin")
	assert.True(t, fi.Visible())
	assert.Equal(t, "Selected file: /tmp/a.bin", fi.Text())

	fi.SetPath("")
	assert.False(t, fi.Visible())
}

func TestErrorLabel(t *testing.T) {
	test.NewTempApp(t)

	el := NewErrorLabel()
	assert.False(t, el.Visible())

	el.SetError("Error reading file: boom")
	assert.True(t, el.Visible())
	assert.Equal(t, "Error reading file: boom", el.Text())

	el.SetError("")
	assert.False(t, el.Visible())
}

func TestStatsBar(t *testing.T) {
	test.NewTempApp(t)

	h := histogram.Count([]byte{0x41, 0x41, 0x42})
	sb := NewStatsBar()
	sb.SetSummary(h.Summarize())

	assert.Equal(t, "Statistics: 3 total bytes, 2 unique bytes, max frequency: 2", sb.Summary())
	assert.Contains(t, sb.Details(), "Most frequent byte: 0x41 (65)")
	assert.Contains(t, sb.Details(), "bits/byte")

	sb.Reset()
	assert.Empty(t, sb.Summary())
}

func TestFormatDetailsEmpty(t *testing.T) {
	var h histogram.Histogram
	assert.Equal(t, "Entropy: 0.0000 bits/byte", FormatDetails(h.Summarize()))
}

func newSizedPlot(t *testing.T, data []byte) *HistogramPlot {
	t.Helper()
	test.NewTempApp(t)

	h := histogram.Count(data)
	p := NewHistogramPlot(300, nil)
	p.Resize(fyne.NewSize(640, 320))
	p.SetHistogram(&h, "/tmp/sample.bin")
	return p
}

func TestHistogramPlotRendersAtWidgetSize(t *testing.T) {
	p := newSizedPlot(t, []byte("plot me"))

	require.True(t, p.HasData())
	require.NotNil(t, p.Image())
	assert.Equal(t, 640, p.Image().Bounds().Dx())
	assert.Equal(t, 320, p.Image().Bounds().Dy())
}

func TestHistogramPlotScrollZooms(t *testing.T) {
	p := newSizedPlot(t, []byte("zoom zoom"))
	before := p.Viewport()

	p.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(320, 160)},
		Scrolled:   fyne.Delta{DY: 50},
	})

	assert.Less(t, p.Viewport().SpanX(), before.SpanX())

	p.DoubleTapped(&fyne.PointEvent{})
	assert.Equal(t, before, p.Viewport())
}

func TestHistogramPlotDragPans(t *testing.T) {
	p := newSizedPlot(t, []byte("pan pan"))
	before := p.Viewport()

	p.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: -40}})
	p.DragEnd()

	assert.Greater(t, p.Viewport().XMin, before.XMin)
	assert.InDelta(t, before.SpanX(), p.Viewport().SpanX(), 1e-9)
}

func TestHistogramPlotLogScale(t *testing.T) {
	p := newSizedPlot(t, []byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 2})
	linear := p.Viewport()

	p.SetLogScale(true)
	assert.True(t, p.LogScale())
	assert.Less(t, p.Viewport().YMax, linear.YMax)

	p.SetLogScale(false)
	assert.Equal(t, linear, p.Viewport())
}

func TestHistogramPlotReadout(t *testing.T) {
	p := newSizedPlot(t, []byte{0, 0, 0})

	area := p.plotArea()
	p.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{
		Position: fyne.NewPos(float32(area.Min.X), float32(area.Min.Y+10)),
	}})
	assert.Equal(t, "byte 0x00 (0): 3", p.Readout())

	p.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(1, 1)}})
	assert.Empty(t, p.Readout())

	p.MouseIn(&desktop.MouseEvent{PointEvent: fyne.PointEvent{
		Position: fyne.NewPos(float32(area.Max.X), float32(area.Min.Y+10)),
	}})
	assert.Equal(t, "byte 0xFF (255): 0", p.Readout())

	p.MouseOut()
	assert.Empty(t, p.Readout())
}

func TestHistogramPlotIgnoresInputWithoutData(t *testing.T) {
	test.NewTempApp(t)

	p := NewHistogramPlot(0, nil)
	p.Resize(fyne.NewSize(400, 200))
	before := p.Viewport()

	p.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 10}})
	p.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 10}})

	assert.Equal(t, before, p.Viewport())
	assert.False(t, p.HasData())
	assert.Equal(t, 400, p.Image().Bounds().Dx())
}
