package plot

import (
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/colorhash"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultSeriesColor is used when no file name is known.
var DefaultSeriesColor = drawing.Color{R: 0, G: 116, B: 217, A: 255}

// SeriesColor derives a stable line colour from the file name so the same
// file is always drawn in the same colour.
func SeriesColor(path string) drawing.Color {
	name := filepath.Base(path)
	if path == "" || name == "." || name == string(filepath.Separator) {
		return DefaultSeriesColor
	}

	hue := colorhash.HashString(name) % 360
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsl(float64(hue), 0.65, 0.42).RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
