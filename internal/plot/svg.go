package plot

import (
	"fmt"
	"strings"
)

// SVG renders the figure as a standalone SVG document. Histogram figures
// become polylines over the bin centers; scatter figures are rasterized
// through the Braille canvas and emitted as dots.
func (f *Figure) SVG(width, height int) string {
	if len(f.hists) > 0 {
		return f.histSVG(width, height)
	}
	return f.scatterSVG(width, height)
}

var svgPalette = []string{"#00ff88", "#00ccff", "#ff00ff", "#ffaa00", "#ff4444", "#aaaaff"}

func (f *Figure) histSVG(width, height int) string {
	maxCount := 1
	for _, s := range f.hists {
		for _, c := range s.hist.Counts {
			if c > maxCount {
				maxCount = c
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for si, s := range f.hists {
		color := svgPalette[si%len(svgPalette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		n := len(s.hist.Counts)
		for i, c := range s.hist.Counts {
			x := float64(i) / float64(n-1) * float64(width)
			y := float64(height) - float64(c)/float64(maxCount)*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func (f *Figure) scatterSVG(width, height int) string {
	// rasterize through the same canvas the terminal renderer uses
	cols := width / 4
	rows := height / 8
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	canvas := NewCanvas(cols, rows)
	xMin, xMax, yMin, yMax := f.bounds()
	pw := float64(cols*2 - 1)
	ph := float64(rows*4 - 1)
	for _, s := range f.points {
		for i := range s.xs {
			px := int(pw * (s.xs[i] - xMin) / (xMax - xMin))
			py := int(ph * (s.ys[i] - yMin) / (yMax - yMin))
			canvas.Set(px, rows*4-1-py)
		}
	}

	scale := 2.0
	dotRadius := scale * 0.4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff88">
`, width, height, width, height))

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
