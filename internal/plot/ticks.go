package plot

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// niceTicks generates about n tick marks on 1/2/2.5/5 increments scaled by a
// power of ten. The first and last ticks sit exactly on min and max because
// go-chart spans the axis from the first to the last tick; a boundary that
// is not itself a multiple of the step gets an empty label.
func niceTicks(min, max float64, n int, label func(float64) string) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || max <= min {
		return nil
	}
	return ticksAt(min, max, niceStep(max-min, n), label)
}

func niceStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	return bestStep
}

const maxTicks = 64

func ticksAt(min, max, step float64, label func(float64) string) []chart.Tick {
	eps := step * 1e-9
	boundary := func(v float64) chart.Tick {
		if math.Abs(v-math.Round(v/step)*step) <= eps {
			return chart.Tick{Value: v, Label: label(v)}
		}
		return chart.Tick{Value: v}
	}

	ticks := []chart.Tick{boundary(min)}
	first := math.Floor(min / step)
	count := int(math.Min(math.Ceil((max-min)/step), maxTicks))
	for i := 1; i <= count; i++ {
		v := (first + float64(i)) * step
		if v <= min+eps {
			continue
		}
		if v >= max-eps {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: label(v)})
	}
	return append(ticks, boundary(max))
}

// byteTicks labels whole byte values only; steps below 1 are rounded up to 1.
func byteTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || max <= min {
		return nil
	}
	return ticksAt(min, max, math.Max(1, niceStep(max-min, n)), formatByte)
}

func formatByte(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

func formatCount(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", v/1_000_000_000)
	case av >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case av >= 10_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// logValue is the y transform of the log scale; log10(1+c) keeps zero at zero.
func logValue(count float64) float64 {
	if count <= 0 {
		return 0
	}
	return math.Log10(1 + count)
}

func inverseLogValue(v float64) float64 {
	return math.Pow(10, v) - 1
}

func formatLogCount(v float64) string {
	return formatCount(inverseLogValue(v))
}
