package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/zappabad/tapetrader/internal/sim"
	"github.com/zappabad/tapetrader/tui/styles"
)

// HUDPanel shows the session vitals: balance, clock, current price and
// the selected asset's position breakdown.
type HUDPanel struct {
	session *sim.Session

	focused bool
	width   int
	height  int
}

// NewHUDPanel creates the HUD bound to a session.
func NewHUDPanel(s *sim.Session) *HUDPanel {
	return &HUDPanel{session: s}
}

// View renders the HUD for the current frame.
func (p *HUDPanel) View() string {
	s := p.session
	asset := s.Current()
	acc := s.Account()

	price, priceOK := s.CurrentPrice()

	var priceLine string
	switch {
	case priceOK:
		priceLine = styles.PriceStyle.Render(fmt.Sprintf("$%.4f", price))
	case s.HasEnded():
		priceLine = styles.EndedStyle.Render("SIMULATION ENDED")
	default:
		priceLine = styles.ClosedStyle.Render("CLOSED")
	}

	tradingHours := "-"
	if !s.HasEnded() {
		if asset.IsStock() {
			tradingHours = "9:00 - 15:30"
		} else {
			tradingHours = "0:00 - 23:55"
		}
	}

	owned := acc.Position()
	potential := "UNAVAILABLE"
	delta := "UNAVAILABLE"
	if priceOK {
		ownedValue := owned.InexactFloat64() * price
		potential = fmt.Sprintf("$%s", humanize.CommafWithDigits(ownedValue, 4))

		d := acc.ReturnedMoney.InexactFloat64() + ownedValue - acc.InvestedMoney.InexactFloat64()
		if d < 0 {
			delta = styles.SellStyle.Render(fmt.Sprintf("-$%s", humanize.CommafWithDigits(-d, 4)))
		} else {
			delta = styles.BuyStyle.Render(fmt.Sprintf("+$%s", humanize.CommafWithDigits(d, 4)))
		}
	}

	input := s.Input()
	if input == "" {
		input = styles.MutedStyle.Render("type an amount, then b/s")
	}

	rows := []string{
		styles.HeaderStyle.Render(fmt.Sprintf("[%d] %s (↑/↓) | %ds/s (←/→) | Zoom -%.0fs (wheel)",
			s.CurrentIndex()+1, asset.Pseudonym(), s.Speed(), s.Zoom())),
		"",
		fmt.Sprintf("Balance          : $%s", humanize.CommafWithDigits(s.Balance().InexactFloat64(), 4)),
		fmt.Sprintf("Clock            : %s", sim.FormatClock(s.Now(), true)),
		fmt.Sprintf("Price            : %s", priceLine),
		fmt.Sprintf("Trading time     : %s", tradingHours),
		"",
		fmt.Sprintf("Owned amount     : %s", owned.StringFixed(4)),
		fmt.Sprintf("Total investment : $%s", acc.InvestedMoney.StringFixed(4)),
		fmt.Sprintf("Sold return      : $%s", acc.ReturnedMoney.StringFixed(4)),
		fmt.Sprintf("Potential return : %s", potential),
		fmt.Sprintf("Total delta      : %s", delta),
		"",
		fmt.Sprintf("Amount           : %s", input),
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Position", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n"))
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *HUDPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *HUDPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
