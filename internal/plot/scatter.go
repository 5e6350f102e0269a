package plot

import (
	"fmt"
	"strings"

	"github.com/san-kum/srcsim/internal/source"
)

// Projection selects the position plane drawn by Position.
type Projection int

const (
	// XY projects onto the horizontal plane.
	XY Projection = iota
	// RZ projects cylindrical radius against height.
	RZ
)

// Position overlays a scatter of particle birth positions onto fig,
// creating the figure if fig is nil.
func Position(fig *Figure, name string, particles []source.Particle, proj Projection) (*Figure, error) {
	if len(particles) == 0 {
		return fig, fmt.Errorf("position plot: no particles for series %q", name)
	}
	xl, yl := "x [cm]", "y [cm]"
	if proj == RZ {
		xl, yl = "r [cm]", "z [cm]"
	}
	if fig == nil {
		fig = &Figure{XLabel: xl, YLabel: yl}
	}
	if len(fig.hists) > 0 {
		return fig, fmt.Errorf("position plot: figure already holds histogram data")
	}

	xs := make([]float64, len(particles))
	ys := make([]float64, len(particles))
	for i, p := range particles {
		switch proj {
		case RZ:
			xs[i] = p.Position.R()
			ys[i] = p.Position.Z
		default:
			xs[i] = p.Position.X
			ys[i] = p.Position.Y
		}
	}
	fig.addPoints(name, xs, ys)
	return fig, nil
}

// Direction overlays a scatter of emission directions (u against v, i.e.
// the unit sphere seen along the z axis) onto fig.
func Direction(fig *Figure, name string, particles []source.Particle) (*Figure, error) {
	if len(particles) == 0 {
		return fig, fmt.Errorf("direction plot: no particles for series %q", name)
	}
	if fig == nil {
		fig = &Figure{XLabel: "u", YLabel: "v"}
	}
	if len(fig.hists) > 0 {
		return fig, fmt.Errorf("direction plot: figure already holds histogram data")
	}

	xs := make([]float64, len(particles))
	ys := make([]float64, len(particles))
	for i, p := range particles {
		xs[i] = p.Direction.U
		ys[i] = p.Direction.V
	}
	fig.addPoints(name, xs, ys)
	return fig, nil
}

func (f *Figure) addPoints(name string, xs, ys []float64) {
	for i := range f.points {
		if f.points[i].name == name {
			f.points[i].xs = append(f.points[i].xs, xs...)
			f.points[i].ys = append(f.points[i].ys, ys...)
			return
		}
	}
	f.points = append(f.points, pointSeries{name: name, xs: xs, ys: ys})
}

// NumPoints is the total scatter point count across series.
func (f *Figure) NumPoints() int {
	n := 0
	for _, s := range f.points {
		n += len(s.xs)
	}
	return n
}

func (f *Figure) bounds() (xMin, xMax, yMin, yMax float64) {
	first := true
	for _, s := range f.points {
		for i := range s.xs {
			if first {
				xMin, xMax = s.xs[i], s.xs[i]
				yMin, yMax = s.ys[i], s.ys[i]
				first = false
				continue
			}
			if s.xs[i] < xMin {
				xMin = s.xs[i]
			}
			if s.xs[i] > xMax {
				xMax = s.xs[i]
			}
			if s.ys[i] < yMin {
				yMin = s.ys[i]
			}
			if s.ys[i] > yMax {
				yMax = s.ys[i]
			}
		}
	}
	if xMax == xMin {
		xMin, xMax = xMin-1, xMax+1
	}
	if yMax == yMin {
		yMin, yMax = yMin-1, yMax+1
	}
	return xMin, xMax, yMin, yMax
}

func (f *Figure) renderScatter(width, height int) string {
	if len(f.points) == 0 {
		return "(empty figure)\n"
	}
	canvas := NewCanvas(width, height)
	xMin, xMax, yMin, yMax := f.bounds()

	pw := float64(width*2 - 1)
	ph := float64(height*4 - 1)
	for _, s := range f.points {
		for i := range s.xs {
			px := int(pw * (s.xs[i] - xMin) / (xMax - xMin))
			py := int(ph * (s.ys[i] - yMin) / (yMax - yMin))
			canvas.Set(px, height*4-1-py)
		}
	}

	var b strings.Builder
	if f.Title != "" {
		b.WriteString(f.Title + "\n")
	}
	b.WriteString(canvas.String())
	fmt.Fprintf(&b, "%s: [%.4g, %.4g]  %s: [%.4g, %.4g]\n", f.XLabel, xMin, xMax, f.YLabel, yMin, yMax)
	for _, s := range f.points {
		fmt.Fprintf(&b, "  %-20s %d points\n", s.name, len(s.xs))
	}
	return b.String()
}
