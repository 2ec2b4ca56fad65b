package chart

import "math"

// tickStep picks the power of base nearest below the visible range, which
// keeps the number of ticks roughly constant at any zoom level.
func tickStep(rng, base float64) float64 {
	return math.Pow(base, math.Floor(math.Log(rng)/math.Log(base)))
}

func usableStep(step float64) bool {
	return step > 0 && !math.IsInf(step, 0) && !math.IsNaN(step)
}

// renderOverlay draws both axes over the margins. Margins are cleared
// first so the overlay always wins against line pixels drawn under it.
func (c *Chart) renderOverlay() {
	axisRow := c.Height - c.XMargin

	// Time axis: clear the bottom margin, rule a line, then ticks.
	for y := axisRow; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			c.canvas.Set(x, y, ' ', ColorNone)
		}
	}
	c.canvas.HLine(c.YMargin, c.Width-1, axisRow, '─', ColorAxis)

	if step := tickStep(c.ScaleXMax-c.ScaleXMin, XTickBase); usableStep(step) {
		for ax := math.Floor(c.ScaleXMin/step) * step; ax <= c.ScaleXMax; ax += step {
			px := int(math.Round(Lerp(ax, c.ScaleXMin, c.ScaleXMax, float64(c.YMargin), float64(c.Width))))
			if px < c.YMargin || px >= c.Width {
				continue
			}
			c.canvas.Set(px, axisRow, '┴', ColorAxis)

			label := c.XLabel(ax)
			c.canvas.SetString(px-len(label)/2, axisRow+1, label, ColorLabel)
		}
	}

	// Price axis: clear the left margin, rule a line, then ticks.
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.YMargin; x++ {
			c.canvas.Set(x, y, ' ', ColorNone)
		}
	}
	c.canvas.VLine(c.YMargin, 0, c.Height-1, '│', ColorAxis)
	c.canvas.Set(c.YMargin, axisRow, '┼', ColorAxis)

	if step := tickStep(c.ScaleYMax-c.ScaleYMin, YTickBase); usableStep(step) {
		for ay := math.Floor(c.ScaleYMin/step) * step; ay <= c.ScaleYMax; ay += step {
			row := int(math.Round(Lerp(ay, c.ScaleYMin, c.ScaleYMax, float64(axisRow), 0)))
			if row < 0 || row > axisRow {
				continue
			}
			// The tick on the axis row keeps its label; the cell stays '┼'.
			if row < axisRow {
				c.canvas.Set(c.YMargin, row, '┤', ColorAxis)
			}

			label := c.YLabel(ay)
			c.canvas.SetString(c.YMargin-1-len(label), row, label, ColorLabel)
		}
	}
}
