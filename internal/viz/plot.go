// Package viz renders solver output in the terminal: asciigraph plots
// of densities and potentials, and a bubbletea live view of a packet
// evolving in time. It only ever consumes finished solver values; no
// numerics live here.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qwave/internal/quantum"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// PlotSeries renders one sampled curve with a caption.
func PlotSeries(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotDensity renders |ψ|² over the grid.
func PlotDensity(w *quantum.WaveFunction, caption string) string {
	return PlotSeries(w.Density(), caption)
}
