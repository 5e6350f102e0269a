package plot

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/srcsim/internal/stats"
)

// Figure accumulates one or more named series for overlay plotting. A nil
// *Figure passed to Energy, Position or Direction starts a fresh figure;
// the returned handle is threaded through subsequent calls. There is no
// shared global state between figures.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	hists  []histSeries
	points []pointSeries

	binning binning
}

type histSeries struct {
	name string
	hist *stats.Histogram
}

type pointSeries struct {
	name string
	xs   []float64
	ys   []float64
}

type binning struct {
	bins     int
	log      bool
	low, hi  float64
	explicit bool
}

// Option adjusts figure construction on the call that creates the figure.
type Option func(*Figure)

// Bins sets the histogram bin count (default 40).
func Bins(n int) Option {
	return func(f *Figure) { f.binning.bins = n }
}

// LogBins switches energy histograms to logarithmic bin spacing.
func LogBins() Option {
	return func(f *Figure) { f.binning.log = true }
}

// Range fixes the histogram range instead of deriving it from the first
// batch of samples.
func Range(low, high float64) Option {
	return func(f *Figure) {
		f.binning.low, f.binning.hi = low, high
		f.binning.explicit = true
	}
}

// Title sets the figure caption.
func Title(s string) Option {
	return func(f *Figure) { f.Title = s }
}

// Energy overlays a histogram of the given energies (eV) onto fig under the
// series name, creating the figure if fig is nil. All series on one figure
// share bin edges, so accumulation order does not change the aggregate.
func Energy(fig *Figure, name string, energies []float64, opts ...Option) (*Figure, error) {
	if len(energies) == 0 {
		return fig, fmt.Errorf("energy plot: no samples for series %q", name)
	}
	if fig == nil {
		fig = &Figure{XLabel: "energy [eV]", YLabel: "count", binning: binning{bins: 40}}
		for _, opt := range opts {
			opt(fig)
		}
	}
	if len(fig.points) > 0 {
		return fig, fmt.Errorf("energy plot: figure already holds scatter data")
	}

	hist, err := fig.newHist(energies)
	if err != nil {
		return fig, err
	}
	hist.ObserveAll(energies)

	for i := range fig.hists {
		if fig.hists[i].name == name {
			if err := fig.hists[i].hist.Merge(hist); err != nil {
				return fig, err
			}
			return fig, nil
		}
	}
	fig.hists = append(fig.hists, histSeries{name: name, hist: hist})
	return fig, nil
}

func (f *Figure) newHist(samples []float64) (*stats.Histogram, error) {
	if len(f.hists) > 0 {
		// keep the established grid so overlays stay mergeable
		first := f.hists[0].hist
		h := &stats.Histogram{
			Edges:  append([]float64(nil), first.Edges...),
			Counts: make([]int, len(first.Counts)),
		}
		return h, nil
	}
	low, hi := f.binning.low, f.binning.hi
	if !f.binning.explicit {
		s := stats.Summarize(samples)
		low, hi = s.Min, s.Max
		if low == hi {
			low, hi = low-0.5, hi+0.5
		}
	}
	if f.binning.log {
		return stats.NewLogHistogram(low, hi, f.binning.bins)
	}
	return stats.NewHistogram(low, hi, f.binning.bins)
}

// Aggregate merges every histogram series into one histogram.
func (f *Figure) Aggregate() (*stats.Histogram, error) {
	if len(f.hists) == 0 {
		return nil, fmt.Errorf("figure holds no histogram series")
	}
	agg := &stats.Histogram{
		Edges:  append([]float64(nil), f.hists[0].hist.Edges...),
		Counts: make([]int, len(f.hists[0].hist.Counts)),
	}
	for _, s := range f.hists {
		if err := agg.Merge(s.hist); err != nil {
			return nil, err
		}
	}
	return agg, nil
}

// Render draws the figure as text: asciigraph line histograms for energy
// figures, a Braille scatter for position/direction figures.
func (f *Figure) Render(width, height int) string {
	if len(f.hists) > 0 {
		return f.renderHists(width, height)
	}
	return f.renderScatter(width, height)
}

func (f *Figure) renderHists(width, height int) string {
	series := make([][]float64, len(f.hists))
	for i, s := range f.hists {
		data := make([]float64, len(s.hist.Counts))
		for j, c := range s.hist.Counts {
			data[j] = float64(c)
		}
		series[i] = data
	}

	caption := f.Title
	if caption == "" {
		caption = f.XLabel
	}

	var graph string
	if len(series) == 1 {
		graph = asciigraph.Plot(series[0],
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(caption),
		)
	} else {
		graph = asciigraph.PlotMany(series,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(caption),
		)
	}

	var b strings.Builder
	b.WriteString(graph)
	b.WriteString("\n")
	edges := f.hists[0].hist.Edges
	fmt.Fprintf(&b, "bins: %d over [%.4g, %.4g] %s\n", len(edges)-1, edges[0], edges[len(edges)-1], f.XLabel)
	for _, s := range f.hists {
		fmt.Fprintf(&b, "  %-20s %d samples\n", s.name, s.hist.Total())
	}
	return b.String()
}
