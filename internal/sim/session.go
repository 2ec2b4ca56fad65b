// Package sim owns the mutable simulation state: the clock, the cash
// balance, per-asset ledger accounts, and the orchestration of trade
// commands against the price model. Single-threaded by design; one
// caller drives it frame by frame.
package sim

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zappabad/tapetrader/internal/audit"
	"github.com/zappabad/tapetrader/internal/ledger"
	"github.com/zappabad/tapetrader/internal/series"
)

var (
	ErrNoAssets          = errors.New("session needs at least one asset")
	ErrNoAmount          = errors.New("no amount entered")
	ErrBadAmount         = errors.New("amount is not a valid number")
	ErrMarketClosed      = errors.New("no price available right now")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Session is the application state the event loop passes around.
type Session struct {
	cfg    Config
	sink   audit.Sink
	logger *zap.Logger

	assets   []*series.Asset
	accounts map[string]*ledger.Account

	balance decimal.Decimal
	simTime float64
	speed   int
	zoom    float64

	cur   int
	input string
}

// NewSession builds a session over the given assets. Zero config fields
// fall back to DefaultConfig values; nil sink and logger are replaced
// with no-ops.
func NewSession(assets []*series.Asset, sink audit.Sink, logger *zap.Logger, cfg Config) (*Session, error) {
	if len(assets) == 0 {
		return nil, ErrNoAssets
	}
	def := DefaultConfig()
	if cfg.StartTime == 0 {
		cfg.StartTime = def.StartTime
	}
	if cfg.StartBalance == 0 {
		cfg.StartBalance = def.StartBalance
	}
	if cfg.StartZoom == 0 {
		cfg.StartZoom = def.StartZoom
	}
	if cfg.MinZoom == 0 {
		cfg.MinZoom = def.MinZoom
	}
	if cfg.MaxZoom == 0 {
		cfg.MaxZoom = def.MaxZoom
	}
	if cfg.MaxSpeed == 0 {
		cfg.MaxSpeed = def.MaxSpeed
	}
	if sink == nil {
		sink = audit.NewNoopSink()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		cfg:      cfg,
		sink:     sink,
		logger:   logger,
		assets:   assets,
		accounts: make(map[string]*ledger.Account, len(assets)),
		balance:  decimal.NewFromFloat(cfg.StartBalance),
		simTime:  cfg.StartTime,
		speed:    1,
		zoom:     cfg.StartZoom,
	}
	for _, a := range assets {
		s.accounts[a.Symbol] = ledger.NewAccount(a.Symbol)
	}
	return s, nil
}

// Advance moves the simulated clock by one frame's wall-clock delta
// scaled by the current speed multiplier.
func (s *Session) Advance(wallDelta float64) {
	s.simTime += wallDelta * float64(s.speed)
}

func (s *Session) Now() float64              { return s.simTime }
func (s *Session) Balance() decimal.Decimal  { return s.balance }
func (s *Session) Speed() int                { return s.speed }
func (s *Session) Zoom() float64             { return s.zoom }
func (s *Session) Input() string             { return s.input }
func (s *Session) Assets() []*series.Asset   { return s.assets }
func (s *Session) CurrentIndex() int         { return s.cur }
func (s *Session) Current() *series.Asset    { return s.assets[s.cur] }

// Account returns the ledger account for the current asset.
func (s *Session) Account() *ledger.Account {
	return s.accounts[s.Current().Symbol]
}

// AccountFor returns the ledger account for a symbol, or nil.
func (s *Session) AccountFor(symbol string) *ledger.Account {
	return s.accounts[symbol]
}

// CurrentPrice resolves the current asset's price at the simulated clock.
func (s *Session) CurrentPrice() (float64, bool) {
	return s.Current().Price(s.simTime)
}

// HasEnded reports whether the current asset's history is exhausted.
func (s *Session) HasEnded() bool {
	return s.Current().HasEnded(s.simTime)
}

// NextAsset and PrevAsset cycle the selected asset. Fractional pending
// input is truncated when landing on a stock, which only trades whole
// shares.
func (s *Session) NextAsset() {
	s.cur = (s.cur + 1) % len(s.assets)
	s.truncateInputForStock()
}

func (s *Session) PrevAsset() {
	s.cur = (s.cur - 1 + len(s.assets)) % len(s.assets)
	s.truncateInputForStock()
}

func (s *Session) truncateInputForStock() {
	if s.input == "" || s.Current().IsCrypto() {
		return
	}
	if i := strings.IndexByte(s.input, '.'); i >= 0 {
		s.input = s.input[:i]
	}
}

// SpeedUp doubles the clock multiplier up to the configured maximum.
func (s *Session) SpeedUp() {
	if s.speed < s.cfg.MaxSpeed {
		s.speed *= 2
	}
}

// SpeedDown halves the clock multiplier down to real time.
func (s *Session) SpeedDown() {
	if s.speed > 1 {
		s.speed /= 2
	}
}

// ResetSpeed drops back to real time.
func (s *Session) ResetSpeed() { s.speed = 1 }

// ZoomIn halves the visible window width; ZoomOut doubles it. Both stay
// on powers of two within the configured bounds.
func (s *Session) ZoomIn() {
	if s.zoom/2 >= s.cfg.MinZoom {
		s.zoom /= 2
	}
}

func (s *Session) ZoomOut() {
	if s.zoom*2 <= s.cfg.MaxZoom {
		s.zoom *= 2
	}
}

// InputDigit appends a digit to the pending amount entry.
func (s *Session) InputDigit(r rune) {
	if r >= '0' && r <= '9' {
		s.input += string(r)
	}
}

// InputPoint appends a decimal point. Only crypto trades in fractions,
// and only one point is allowed.
func (s *Session) InputPoint() {
	if s.Current().IsCrypto() && !strings.Contains(s.input, ".") {
		s.input += "."
	}
}

// InputBackspace removes the last entered character.
func (s *Session) InputBackspace() {
	if s.input != "" {
		s.input = s.input[:len(s.input)-1]
	}
}

func (s *Session) pendingAmount() (decimal.Decimal, error) {
	if s.input == "" {
		return decimal.Decimal{}, ErrNoAmount
	}
	// A trailing point is still a whole number: "10." trades 10.
	amount, err := decimal.NewFromString(strings.TrimSuffix(s.input, "."))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, ErrBadAmount
	}
	return amount, nil
}

// Buy executes a purchase of the pending amount at the current price.
// The price is read exactly once; the funds check and the ledger delta
// both use that read, so validation can't diverge from mutation.
func (s *Session) Buy() (ledger.Trade, error) {
	amount, err := s.pendingAmount()
	if err != nil {
		return ledger.Trade{}, err
	}

	p, ok := s.CurrentPrice()
	if !ok {
		return ledger.Trade{}, ErrMarketClosed
	}
	price := decimal.NewFromFloat(p)

	total := amount.Mul(price)
	if total.GreaterThan(s.balance) {
		return ledger.Trade{}, ErrInsufficientFunds
	}

	trade, err := s.Account().Buy(s.simTime, amount, price)
	if err != nil {
		return ledger.Trade{}, err
	}

	s.balance = s.balance.Sub(total)
	s.input = ""
	s.record(trade)
	return trade, nil
}

// Sell executes a sale of the pending amount at the current price. The
// ledger rejects selling more than the open position.
func (s *Session) Sell() (ledger.Trade, error) {
	amount, err := s.pendingAmount()
	if err != nil {
		return ledger.Trade{}, err
	}

	p, ok := s.CurrentPrice()
	if !ok {
		return ledger.Trade{}, ErrMarketClosed
	}
	price := decimal.NewFromFloat(p)

	trade, err := s.Account().Sell(s.simTime, amount, price)
	if err != nil {
		return ledger.Trade{}, err
	}

	s.balance = s.balance.Add(trade.Delta)
	s.input = ""
	s.record(trade)
	return trade, nil
}

func (s *Session) record(trade ledger.Trade) {
	if err := s.sink.Append(trade); err != nil {
		s.logger.Warn("audit append failed", zap.Error(err))
	}
	s.logger.Info("trade executed",
		zap.String("symbol", trade.Symbol),
		zap.String("action", trade.Action.String()),
		zap.String("amount", trade.Amount.String()),
		zap.String("delta", trade.Delta.String()),
		zap.Float64("sim_time", trade.Time),
	)
}
