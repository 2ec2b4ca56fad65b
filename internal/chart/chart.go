// Package chart renders a caller-supplied time→price function as a
// zoomable, auto-scaling line chart on a terminal cell canvas.
package chart

import (
	"math"
	"strconv"
)

// PriceFn resolves a simulated time to a price. ok is false when no price
// exists at that instant; the chart draws those columns as gap bands.
type PriceFn func(t float64) (float64, bool)

// Tick density bases for the axis overlay. Time spans bucket in larger
// chunks than prices, so the horizontal base is coarser.
const (
	XTickBase = 15
	YTickBase = 10

	// DefaultScaleMargin is the headroom AdjustScale leaves above and
	// below the visible price range.
	DefaultScaleMargin = 0.125
)

// Config holds the chart's layout and styling knobs.
type Config struct {
	// XMargin is the number of rows reserved at the bottom for the time axis.
	XMargin int
	// YMargin is the number of columns reserved at the left for the price axis.
	YMargin int
	// Initial visible domain bounds.
	ScaleXMin, ScaleXMax float64
	ScaleYMin, ScaleYMax float64
	// Axis label formatters.
	XLabel func(float64) string
	YLabel func(float64) string
	// Palette styles the rendered cells.
	Palette Palette
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		XMargin:   2,
		YMargin:   9,
		ScaleXMin: 0,
		ScaleXMax: 100,
		ScaleYMin: 0,
		ScaleYMax: 100,
		XLabel:    func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) },
		YLabel:    func(y float64) string { return strconv.FormatFloat(y, 'g', -1, 64) },
		Palette:   DefaultPalette(),
	}
}

// Chart owns the coordinate mapping and rasterization state for one plot.
// The caller mutates the layout and scale fields freely between frames;
// every Render rebuilds the cell buffer from scratch.
type Chart struct {
	Fn     PriceFn
	Width  int
	Height int

	XMargin int
	YMargin int

	ScaleXMin, ScaleXMax float64
	ScaleYMin, ScaleYMax float64

	XLabel func(float64) string
	YLabel func(float64) string

	Palette Palette

	canvas *Canvas
}

// New creates a Chart bound to fn. Zero config fields fall back to
// DefaultConfig values.
func New(fn PriceFn, width, height int, cfg Config) *Chart {
	def := DefaultConfig()
	if cfg.XMargin <= 0 {
		cfg.XMargin = def.XMargin
	}
	if cfg.YMargin <= 0 {
		cfg.YMargin = def.YMargin
	}
	if cfg.ScaleXMin == 0 && cfg.ScaleXMax == 0 {
		cfg.ScaleXMin, cfg.ScaleXMax = def.ScaleXMin, def.ScaleXMax
	}
	if cfg.ScaleYMin == 0 && cfg.ScaleYMax == 0 {
		cfg.ScaleYMin, cfg.ScaleYMax = def.ScaleYMin, def.ScaleYMax
	}
	if cfg.XLabel == nil {
		cfg.XLabel = def.XLabel
	}
	if cfg.YLabel == nil {
		cfg.YLabel = def.YLabel
	}

	return &Chart{
		Fn:        fn,
		Width:     width,
		Height:    height,
		XMargin:   cfg.XMargin,
		YMargin:   cfg.YMargin,
		ScaleXMin: cfg.ScaleXMin,
		ScaleXMax: cfg.ScaleXMax,
		ScaleYMin: cfg.ScaleYMin,
		ScaleYMax: cfg.ScaleYMax,
		XLabel:    cfg.XLabel,
		YLabel:    cfg.YLabel,
		Palette:   cfg.Palette,
		canvas:    NewCanvas(width, height),
	}
}

// AdjustScale fits the vertical scale to the prices visible in the
// current window, leaving marginPercent headroom on both sides. With no
// finite samples the scale is left unchanged; same for a constant series,
// which would otherwise collapse the plot to zero height. Callers invoke
// this before Render whenever the visible window moved.
func (c *Chart) AdjustScale(marginPercent float64) {
	low := math.Inf(1)
	high := math.Inf(-1)
	found := false

	for x := c.YMargin; x < c.Width; x++ {
		s := c.At(x)
		if !s.HasPrice || math.IsNaN(s.Price) || math.IsInf(s.Price, 0) {
			continue
		}
		found = true
		if s.Price < low {
			low = s.Price
		}
		if s.Price > high {
			high = s.Price
		}
	}
	if !found {
		return
	}

	yMin := low - (high-low)*marginPercent
	yMax := high + (high-low)*marginPercent
	if yMin != yMax {
		c.ScaleYMin = yMin
		c.ScaleYMax = yMax
	}
}

// Render rasterizes the line chart and axis overlay into the cell buffer
// and returns it as styled terminal text. The overlay is drawn last so it
// owns the margin areas.
func (c *Chart) Render() string {
	c.canvas.Resize(c.Width, c.Height)
	c.renderLine()
	c.renderOverlay()
	return c.canvas.Render(c.Palette)
}

// renderLine walks the plot area column by column, drawing gap bands for
// unavailable prices and one-column segments colored by trend otherwise.
func (c *Chart) renderLine() {
	plotBottom := c.Height - c.XMargin

	prevRow := math.NaN()
	lastTrend := 0 // 1 gain, -1 loss

	for x := c.YMargin; x < c.Width; x++ {
		s := c.At(x)
		if !s.HasPrice || math.IsNaN(s.Price) {
			// No segment connects across a gap.
			prevRow = math.NaN()
			c.canvas.VLine(x, 0, plotBottom, '░', ColorGap)
			continue
		}

		// Row 0 is the top, so higher price = smaller row.
		row := Lerp(s.Price, c.ScaleYMin, c.ScaleYMax, float64(plotBottom), 0)

		if math.IsNaN(prevRow) {
			prevRow = row
			continue
		}

		color := ColorFg
		switch {
		case row < prevRow:
			color = ColorGain
			lastTrend = 1
		case row > prevRow:
			color = ColorLoss
			lastTrend = -1
		// Ties continue the prevailing trend instead of resetting it.
		case lastTrend == 1:
			color = ColorGain
		case lastTrend == -1:
			color = ColorLoss
		}

		c.canvas.VLine(x, clampRow(prevRow, plotBottom), clampRow(row, plotBottom), '█', color)
		prevRow = row
	}
}

func clampRow(row float64, bottom int) int {
	r := int(math.Round(row))
	if r < 0 {
		return 0
	}
	if r > bottom {
		return bottom
	}
	return r
}
