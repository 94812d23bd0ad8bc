package TracerAdvection2D

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/nereus-ocean/nereus/grid"
)

// Plot draws the tracer profile along the domain centerline.
func (m *Tracer) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		g          = m.G
		pMin, pMax = float32(-0.1), float32(1.1)
	)
	if !showGraph {
		return
	}
	m.PlotOnce.Do(func() {
		xmin := float32(g.Coord(grid.XAxis, grid.Center, 1))
		xmax := float32(g.Coord(grid.XAxis, grid.Center, g.Nx))
		m.chart = chart2d.NewChart2D(1280, 1024, xmin, xmax, pMin, pMax)
		m.colorMap = utils2.NewColorMap(-1, 1, 1)
		go m.chart.Plot()
	})

	var (
		jmid = (g.Ny + 1) / 2
		x    = make([]float64, g.Nx)
		c    = make([]float64, g.Nx)
	)
	for i := 1; i <= g.Nx; i++ {
		x[i-1] = g.Coord(grid.XAxis, grid.Center, i)
		c[i-1] = m.C.At(i, jmid, 1)
	}
	if err := m.chart.AddSeries("C", x, c,
		chart2d.NoGlyph, chart2d.Solid, m.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
