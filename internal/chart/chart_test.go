package chart

import (
	"math"
	"strings"
	"testing"
)

// columnChart builds a chart whose price fn is keyed by pixel column:
// ScaleX spans [YMargin, Width] so At(x).Time ≈ x.
func columnChart(width, height int, prices map[int]float64) *Chart {
	cfg := DefaultConfig()
	cfg.YMargin = 1
	cfg.XMargin = 2
	cfg.ScaleXMin = float64(cfg.YMargin)
	cfg.ScaleXMax = float64(width)
	cfg.ScaleYMin = 0
	cfg.ScaleYMax = float64(height - cfg.XMargin)

	fn := func(t float64) (float64, bool) {
		p, ok := prices[int(math.Round(t))]
		return p, ok
	}
	return New(fn, width, height, cfg)
}

func TestAdjustScaleFitsVisiblePrices(t *testing.T) {
	c := columnChart(6, 102, map[int]float64{1: 10, 2: 15, 3: 20, 4: 12, 5: 18})

	c.AdjustScale(DefaultScaleMargin)

	if math.Abs(c.ScaleYMin-8.75) > 1e-9 {
		t.Errorf("expected ScaleYMin 8.75, got %v", c.ScaleYMin)
	}
	if math.Abs(c.ScaleYMax-21.25) > 1e-9 {
		t.Errorf("expected ScaleYMax 21.25, got %v", c.ScaleYMax)
	}
}

func TestAdjustScaleEmptyViewUnchanged(t *testing.T) {
	c := columnChart(6, 102, nil)
	yMin, yMax := c.ScaleYMin, c.ScaleYMax

	c.AdjustScale(DefaultScaleMargin)

	if c.ScaleYMin != yMin || c.ScaleYMax != yMax {
		t.Errorf("empty view must leave scale unchanged, got [%v, %v]", c.ScaleYMin, c.ScaleYMax)
	}
}

func TestAdjustScaleConstantSeriesUnchanged(t *testing.T) {
	c := columnChart(6, 102, map[int]float64{1: 50, 2: 50, 3: 50, 4: 50, 5: 50})
	yMin, yMax := c.ScaleYMin, c.ScaleYMax

	c.AdjustScale(DefaultScaleMargin)

	if c.ScaleYMin != yMin || c.ScaleYMax != yMax {
		t.Errorf("constant series must leave scale unchanged, got [%v, %v]", c.ScaleYMin, c.ScaleYMax)
	}
}

// Rows [50, 48, 48, 52]: up, tie continuing the up trend, then down.
func TestTrendColoring(t *testing.T) {
	// plotBottom = 100, row = 100 - price.
	c := columnChart(6, 102, map[int]float64{1: 50, 2: 52, 3: 52, 4: 48})

	c.canvas.Resize(c.Width, c.Height)
	c.renderLine()

	// Column 1 is the anchor: nothing drawn.
	if _, col := c.canvas.at(1, 50); col != ColorNone {
		t.Errorf("anchor column should stay empty, got %v", col)
	}
	// Column 2: price rose, gain color.
	if _, col := c.canvas.at(2, 48); col != ColorGain {
		t.Errorf("expected gain at rising segment, got %v", col)
	}
	// Column 3: tie inherits the gain trend.
	if _, col := c.canvas.at(3, 48); col != ColorGain {
		t.Errorf("expected tie to continue gain trend, got %v", col)
	}
	// Column 4: price fell, loss color spanning rows 48..52.
	if _, col := c.canvas.at(4, 50); col != ColorLoss {
		t.Errorf("expected loss at falling segment, got %v", col)
	}
}

func TestTieWithoutTrendIsNeutral(t *testing.T) {
	c := columnChart(6, 102, map[int]float64{1: 50, 2: 50, 3: 50})

	c.canvas.Resize(c.Width, c.Height)
	c.renderLine()

	if _, col := c.canvas.at(2, 50); col != ColorFg {
		t.Errorf("flat run with no prior trend should be neutral, got %v", col)
	}
}

func TestGapBandResetsRun(t *testing.T) {
	c := columnChart(7, 102, map[int]float64{1: 50, 2: 55, 4: 60, 5: 70})

	c.canvas.Resize(c.Width, c.Height)
	c.renderLine()

	// Column 3 has no price: full-height gap band.
	for _, row := range []int{0, 50, 100} {
		if _, col := c.canvas.at(3, row); col != ColorGap {
			t.Errorf("expected gap band at row %d, got %v", row, col)
		}
	}
	// Column 4 is a fresh anchor after the gap: no segment drawn.
	if _, col := c.canvas.at(4, 40); col != ColorNone {
		t.Errorf("no segment may connect across a gap, got %v", col)
	}
	// Column 5 resumes drawing.
	if _, col := c.canvas.at(5, 35); col != ColorGain {
		t.Errorf("expected gain after gap anchor, got %v", col)
	}
}

// overlayChart renders only the axis overlay for tick assertions.
func overlayChart(width, height int, cfg Config) *Chart {
	c := New(func(float64) (float64, bool) { return 0, false }, width, height, cfg)
	c.canvas.Resize(c.Width, c.Height)
	c.renderOverlay()
	return c
}

func TestXTickPlacement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YMargin = 1
	cfg.XMargin = 2
	cfg.ScaleXMin = 0
	cfg.ScaleXMax = 100
	cfg.ScaleYMin = 0
	cfg.ScaleYMax = 50
	c := overlayChart(101, 20, cfg)

	axisRow := c.Height - c.XMargin

	// Range 100 at base 15 → step 15; one column per domain unit, so
	// ticks land 15 cells apart from the left edge.
	for _, px := range []int{16, 31, 46, 61, 76, 91} {
		if r, _ := c.canvas.at(px, axisRow); r != '┴' {
			t.Errorf("expected x tick at column %d, got %q", px, r)
		}
	}
	// The tick at the origin yields to the axis intersection.
	if r, _ := c.canvas.at(1, axisRow); r != '┼' {
		t.Errorf("expected axis intersection at the origin, got %q", r)
	}
	// Between ticks the axis line runs plain.
	if r, _ := c.canvas.at(9, axisRow); r != '─' {
		t.Errorf("expected plain axis between ticks, got %q", r)
	}
}

func TestXTickStartFloorsBelowScaleMin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YMargin = 1
	cfg.XMargin = 2
	cfg.ScaleXMin = 7
	cfg.ScaleXMax = 107
	cfg.ScaleYMin = 0
	cfg.ScaleYMax = 50
	c := overlayChart(101, 20, cfg)

	axisRow := c.Height - c.XMargin

	// Ticks start at floor(7/15)*15 = 0; that one falls off-plot, so
	// the first drawn tick is the multiple 15 at column 1 + (15-7).
	for _, px := range []int{9, 24, 39, 54, 69, 84, 99} {
		if r, _ := c.canvas.at(px, axisRow); r != '┴' {
			t.Errorf("expected x tick at column %d, got %q", px, r)
		}
	}
	for px := 2; px < 9; px++ {
		if r, _ := c.canvas.at(px, axisRow); r == '┴' {
			t.Errorf("unexpected tick before the first multiple at column %d", px)
		}
	}
}

func TestYTickPlacement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XMargin = 2
	cfg.ScaleXMin = 0
	cfg.ScaleXMax = 100
	cfg.ScaleYMin = 0
	cfg.ScaleYMax = 50
	c := overlayChart(40, 52, cfg)

	axisRow := c.Height - c.XMargin

	// Range 50 at base 10 → step 10 → a tick every 10 rows.
	for _, row := range []int{0, 10, 20, 30, 40} {
		if r, _ := c.canvas.at(c.YMargin, row); r != '┤' {
			t.Errorf("expected y tick at row %d, got %q", row, r)
		}
	}

	// The ScaleYMin tick maps onto the axis row: the intersection cell
	// wins, but the label still appears.
	if r, _ := c.canvas.at(c.YMargin, axisRow); r != '┼' {
		t.Errorf("expected intersection on the axis row, got %q", r)
	}
	if r, col := c.canvas.at(c.YMargin-2, axisRow); r != '0' || col != ColorLabel {
		t.Errorf("expected bottom tick label 0, got %q (%v)", r, col)
	}
	if r, _ := c.canvas.at(c.YMargin-3, 0); r != '5' {
		t.Errorf("expected top tick label 50, got %q", r)
	}
}

func TestRenderProducesFullBuffer(t *testing.T) {
	c := columnChart(40, 12, map[int]float64{5: 3, 10: 5, 20: 4, 30: 6})
	c.XLabel = func(x float64) string { return "t" }
	c.YLabel = func(y float64) string { return "$" }

	out := c.Render()
	if got := strings.Count(out, "\n"); got != c.Height-1 {
		t.Errorf("expected %d rows, got %d", c.Height, got+1)
	}
}
