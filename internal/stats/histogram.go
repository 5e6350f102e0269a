package stats

import (
	"fmt"
	"math"
)

// Histogram counts samples over fixed bin edges. Bins are half-open
// [Edges[i], Edges[i+1]); the final bin includes its upper edge so the
// maximum sample is not dropped.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// NewHistogram builds nBins linear bins spanning [low, high].
func NewHistogram(low, high float64, nBins int) (*Histogram, error) {
	if nBins <= 0 {
		return nil, fmt.Errorf("histogram: bin count must be positive, got %d", nBins)
	}
	if high <= low {
		return nil, fmt.Errorf("histogram: high %f must exceed low %f", high, low)
	}
	edges := make([]float64, nBins+1)
	step := (high - low) / float64(nBins)
	for i := range edges {
		edges[i] = low + float64(i)*step
	}
	edges[nBins] = high
	return &Histogram{Edges: edges, Counts: make([]int, nBins)}, nil
}

// NewLogHistogram builds nBins logarithmically spaced bins over [low, high].
func NewLogHistogram(low, high float64, nBins int) (*Histogram, error) {
	if low <= 0 {
		return nil, fmt.Errorf("histogram: log bins need positive low edge, got %f", low)
	}
	if nBins <= 0 || high <= low {
		return nil, fmt.Errorf("histogram: invalid log binning [%f, %f] x%d", low, high, nBins)
	}
	edges := make([]float64, nBins+1)
	ratio := math.Log(high/low) / float64(nBins)
	for i := range edges {
		edges[i] = low * math.Exp(float64(i)*ratio)
	}
	edges[nBins] = high
	return &Histogram{Edges: edges, Counts: make([]int, nBins)}, nil
}

// Observe adds one sample. Values outside the edges are ignored.
func (h *Histogram) Observe(v float64) {
	n := len(h.Counts)
	if v < h.Edges[0] || v > h.Edges[n] {
		return
	}
	if v == h.Edges[n] {
		h.Counts[n-1]++
		return
	}
	// binary search for the containing bin
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if v >= h.Edges[mid+1] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	h.Counts[lo]++
}

// ObserveAll adds every sample in vs.
func (h *Histogram) ObserveAll(vs []float64) {
	for _, v := range vs {
		h.Observe(v)
	}
}

// Total is the number of observed samples inside the edges.
func (h *Histogram) Total() int {
	t := 0
	for _, c := range h.Counts {
		t += c
	}
	return t
}

// Merge adds the counts of other into h. The edge grids must match.
func (h *Histogram) Merge(other *Histogram) error {
	if len(h.Edges) != len(other.Edges) {
		return fmt.Errorf("histogram: cannot merge %d edges with %d", len(h.Edges), len(other.Edges))
	}
	for i, e := range h.Edges {
		if e != other.Edges[i] {
			return fmt.Errorf("histogram: edge %d differs (%f vs %f)", i, e, other.Edges[i])
		}
	}
	for i, c := range other.Counts {
		h.Counts[i] += c
	}
	return nil
}

// Centers returns the midpoint of every bin.
func (h *Histogram) Centers() []float64 {
	out := make([]float64, len(h.Counts))
	for i := range out {
		out[i] = 0.5 * (h.Edges[i] + h.Edges[i+1])
	}
	return out
}
