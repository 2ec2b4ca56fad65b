package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/zappabad/tapetrader/internal/ledger"
	"github.com/zappabad/tapetrader/internal/sim"
	"github.com/zappabad/tapetrader/tui/panels"
	"github.com/zappabad/tapetrader/tui/styles"
)

// frameInterval paces the simulation clock. Every tick advances the
// session by the elapsed wall time scaled by the speed multiplier.
const frameInterval = 100 * time.Millisecond

type tickMsg time.Time

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusChart PanelFocus = iota
	FocusHUD
)

// Model is the main TUI application model.
type Model struct {
	session *sim.Session
	logger  *zap.Logger

	chartPanel *panels.ChartPanel
	hudPanel   *panels.HUDPanel

	focusedPanel PanelFocus

	lastTick  time.Time
	statusMsg string
	statusErr bool

	width  int
	height int
	ready  bool
}

// NewModel creates the TUI model over a prepared session.
func NewModel(session *sim.Session, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	chartPanel := panels.NewChartPanel(session)
	chartPanel.SetFocus(true)

	return &Model{
		session:    session,
		logger:     logger,
		chartPanel: chartPanel,
		hudPanel:   panels.NewHUDPanel(session),
	}
}

// Init starts the frame ticker.
func (m *Model) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		// A wedged terminal shouldn't fast-forward the simulation.
		if dt > 1 {
			dt = 1
		}
		m.session.Advance(dt)
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		if err := m.session.Save(); err != nil {
			m.logger.Error("save session", zap.Error(err))
		}
		return m, tea.Quit

	case key.Matches(msg, keys.NextAsset):
		m.session.NextAsset()
		m.statusMsg = ""
	case key.Matches(msg, keys.PrevAsset):
		m.session.PrevAsset()
		m.statusMsg = ""
	case key.Matches(msg, keys.SpeedUp):
		m.session.SpeedUp()
	case key.Matches(msg, keys.SpeedDown):
		m.session.SpeedDown()
	case key.Matches(msg, keys.ResetSpeed):
		m.session.ResetSpeed()
	case key.Matches(msg, keys.Backspace):
		m.session.InputBackspace()
	case key.Matches(msg, keys.Buy):
		m.executeTrade(m.session.Buy)
	case key.Matches(msg, keys.Sell):
		m.executeTrade(m.session.Sell)

	case msg.String() == "tab":
		m.toggleFocus()

	default:
		s := msg.String()
		if len(s) == 1 {
			switch r := rune(s[0]); {
			case r >= '0' && r <= '9':
				m.session.InputDigit(r)
			case r == '.' || r == ',':
				m.session.InputPoint()
			}
		}
	}
	return m, nil
}

func (m *Model) executeTrade(op func() (ledger.Trade, error)) {
	trade, err := op()
	if err != nil {
		// No amount entered is not worth a status line; the original
		// simply ignored the keypress.
		if errors.Is(err, sim.ErrNoAmount) {
			return
		}
		m.statusMsg = err.Error()
		m.statusErr = true
		return
	}
	m.statusMsg = fmt.Sprintf("%s %s %s for $%s",
		trade.Action, trade.Amount, m.session.Current().Pseudonym(), trade.Delta.StringFixed(4))
	m.statusErr = false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.session.ZoomIn()
	case tea.MouseButtonWheelDown:
		m.session.ZoomOut()
	default:
		if msg.Action == tea.MouseActionMotion {
			// Chart content starts inside the border, padding and title.
			m.chartPanel.Inspect(msg.X-2, msg.Y-2)
		}
	}
}

func (m *Model) toggleFocus() {
	if m.focusedPanel == FocusChart {
		m.focusedPanel = FocusHUD
	} else {
		m.focusedPanel = FocusChart
	}
	m.chartPanel.SetFocus(m.focusedPanel == FocusChart)
	m.hudPanel.SetFocus(m.focusedPanel == FocusHUD)
}

func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	statusHeight := 1
	chartHeight := (m.height - statusHeight) * 6 / 10
	if chartHeight < 10 {
		chartHeight = 10
	}
	hudHeight := m.height - statusHeight - chartHeight

	m.chartPanel.SetSize(m.width, chartHeight)
	m.hudPanel.SetSize(m.width, hudHeight)
}

// View renders the whole screen: chart on top, HUD below, status bar last.
func (m *Model) View() string {
	if !m.ready {
		return "starting..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.chartPanel.View(),
		m.hudPanel.View(),
		m.statusBar(),
	)
}

func (m *Model) statusBar() string {
	status := m.statusMsg
	if status == "" {
		status = fmt.Sprintf("%s asset  %s speed  %s reset  %s buy  %s sell  %s quit",
			styles.StatusBarKeyStyle.Render("↑/↓"),
			styles.StatusBarKeyStyle.Render("←/→"),
			styles.StatusBarKeyStyle.Render("space"),
			styles.StatusBarKeyStyle.Render("b"),
			styles.StatusBarKeyStyle.Render("s"),
			styles.StatusBarKeyStyle.Render("q"),
		)
	} else if m.statusErr {
		status = styles.ErrorStyle.Render(status)
	}
	return styles.StatusBarStyle.Width(m.width).Render(status)
}
