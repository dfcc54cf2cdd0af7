// Package histogram counts byte value frequencies.
package histogram

import "math"

// Buckets is the number of distinct byte values.
const Buckets = 256

// Histogram holds one counter per byte value.
type Histogram [Buckets]uint64

// Summary contains the statistics shown next to the plot
type Summary struct {
	Total    uint64
	Unique   int
	Peak     uint64
	PeakByte byte
	Entropy  float64
}

// Count tallies every byte of data in a single pass.
func Count(data []byte) Histogram {
	var h Histogram
	for _, b := range data {
		h[b]++
	}
	return h
}

// Total returns the sum of all counters.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h {
		total += c
	}
	return total
}

// Unique returns the number of byte values seen at least once.
func (h *Histogram) Unique() int {
	unique := 0
	for _, c := range h {
		if c > 0 {
			unique++
		}
	}
	return unique
}

// Peak returns the most frequent byte value and its count. Ties resolve to
// the lowest byte value; an empty histogram yields (0, 0).
func (h *Histogram) Peak() (byte, uint64) {
	var value byte
	var peak uint64
	for i, c := range h {
		if c > peak {
			peak = c
			value = byte(i)
		}
	}
	return value, peak
}

// Entropy returns the Shannon entropy in bits per byte, within [0, 8].
func (h *Histogram) Entropy() float64 {
	total := float64(h.Total())
	if total == 0 {
		return 0
	}

	var entropy float64
	for _, c := range h {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	if entropy < 0 {
		return 0
	}
	return entropy
}

// Summarize computes all summary statistics.
func (h *Histogram) Summarize() Summary {
	peakByte, peak := h.Peak()
	return Summary{
		Total:    h.Total(),
		Unique:   h.Unique(),
		Peak:     peak,
		PeakByte: peakByte,
		Entropy:  h.Entropy(),
	}
}

// Points returns the histogram as a plot series of (byte value, count).
func (h *Histogram) Points() (xs, ys []float64) {
	xs = make([]float64, Buckets)
	ys = make([]float64, Buckets)
	for i, c := range h {
		xs[i] = float64(i)
		ys[i] = float64(c)
	}
	return xs, ys
}

// IsEmpty reports whether no byte was counted.
func (h *Histogram) IsEmpty() bool {
	return h.Total() == 0
}
