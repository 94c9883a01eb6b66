package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// SweepPoint is one recomputation of a parameter sweep
type SweepPoint struct {
	Param float64
	EI    float64 // N·mm²
}

// PlotSweep renders EI (in N·m²) over the sweep as an ASCII graph
func PlotSweep(points []SweepPoint, caption string) string {
	if len(points) == 0 {
		return ""
	}

	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.EI / 1e6
	}

	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("%s (%.1f → %.1f)", caption, points[0].Param, points[len(points)-1].Param)),
	)
}
