package panels

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/tapetrader/internal/chart"
	"github.com/zappabad/tapetrader/internal/series"
	"github.com/zappabad/tapetrader/internal/sim"
	"github.com/zappabad/tapetrader/tui/styles"
)

// ChartPanel renders the current asset's price line for the visible
// time window ending at the simulated clock.
type ChartPanel struct {
	session *sim.Session
	chart   *chart.Chart

	hover    chart.Sample
	hasHover bool

	focused bool
	width   int
	height  int
}

// NewChartPanel builds the panel and its chart, bound to whichever asset
// the session currently selects.
func NewChartPanel(s *sim.Session) *ChartPanel {
	cfg := chart.DefaultConfig()
	fg, gain, loss, gap, axis, label := styles.ChartPalette()
	cfg.Palette = chart.Palette{Fg: fg, Gain: gain, Loss: loss, Gap: gap, Axis: axis, Label: label}
	cfg.YLabel = func(y float64) string { return fmt.Sprintf("$%.2f", y) }

	fn := func(t float64) (float64, bool) { return s.Current().Price(t) }
	return &ChartPanel{
		session: s,
		chart:   chart.New(fn, 80, 20, cfg),
	}
}

// View renders the chart for the current frame: window follows the
// clock, vertical scale refits, then the line and overlay are drawn.
func (p *ChartPanel) View() string {
	innerW := p.width - 4  // border + padding
	innerH := p.height - 4 // border + title + hover line
	if innerW < 20 {
		innerW = 20
	}
	if innerH < 6 {
		innerH = 6
	}

	now := p.session.Now()
	zoom := p.session.Zoom()

	p.chart.Width = innerW
	p.chart.Height = innerH
	p.chart.ScaleXMin = now - zoom
	p.chart.ScaleXMax = now
	p.chart.XLabel = func(x float64) string { return sim.FormatClock(x, zoom > series.DaySeconds) }

	p.chart.AdjustScale(chart.DefaultScaleMargin)
	body := p.chart.Render()

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	asset := p.session.Current()
	title := styles.RenderTitle(fmt.Sprintf("Chart - %s (%s)", asset.Pseudonym(), asset.Kind), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, body, p.hoverLine())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *ChartPanel) hoverLine() string {
	if !p.hasHover {
		return styles.MutedStyle.Render("hover the plot to inspect")
	}

	s := p.hover
	var price string
	switch {
	case s.HasPrice:
		price = fmt.Sprintf("$%.4f", s.Price)
	case p.session.Current().HasEnded(s.Time):
		price = "SIMULATION ENDED"
	default:
		price = "CLOSED"
	}
	return styles.MutedStyle.Render(fmt.Sprintf("%s | %s", sim.FormatClock(s.Time, true), price))
}

// Inspect maps a panel-local cell position to a domain sample for the
// cursor readout. Positions outside the plot clear the readout.
func (p *ChartPanel) Inspect(localX, localY int) {
	s := p.chart.At(localX)
	if !s.InPlot || localY < 0 || localY >= p.chart.Height-p.chart.XMargin {
		p.hasHover = false
		return
	}
	p.hover = s
	p.hasHover = true
}

// SetFocus sets the focus state of the panel.
func (p *ChartPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ChartPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
