package Burgers1D

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"
)

func (c *Burgers) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		g = c.Grid
	)
	if !showGraph {
		return
	}
	c.plotOnce.Do(func() {
		var (
			fmin, fmax = floats.Min(c.U), floats.Max(c.U)
			margin     = 0.1 * (fmax - fmin)
		)
		if margin == 0 {
			margin = 0.1
		}
		c.chart = chart2d.NewChart2D(1920, 1280, float32(g.XMin), float32(g.XMax),
			float32(fmin-margin), float32(fmax+margin))
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})
	if err := c.chart.AddSeries("U", g.X, c.U,
		chart2d.CrossGlyph, chart2d.Solid, c.colorMap.GetRGB(-0.7)); err != nil {
		panic("unable to add graph series")
	}
	if UExact, ok := c.ExactSolution(); ok {
		if err := c.chart.AddSeries("Exact", g.X, UExact,
			chart2d.XGlyph, chart2d.NoLine, c.colorMap.GetRGB(0.7)); err != nil {
			panic("unable to add exact solution")
		}
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
