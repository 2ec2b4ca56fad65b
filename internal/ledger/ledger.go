package ledger

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("trade amount must be positive")
	ErrOversell          = errors.New("sell exceeds open position")
)

// Action is the direction of an executed trade.
type Action uint8

const (
	ActionBuy Action = iota
	ActionSell
)

func (a Action) String() string {
	switch a {
	case ActionBuy:
		return "buy"
	case ActionSell:
		return "sell"
	default:
		return "unknown"
	}
}

// Trade is the audit record emitted for every executed buy or sell.
type Trade struct {
	ID     uuid.UUID
	Time   float64
	Symbol string
	Action Action
	Amount decimal.Decimal
	Delta  decimal.Decimal // Amount * price at execution
}

// Account tracks cumulative money and amount flows for one asset.
// Deterministic core: no goroutines, channels, or time calls. Fields are
// exported so the session persister can read and restore them directly.
//
// Buy and Sell never look prices up themselves. The orchestrating layer
// resolves the price once, validates funds against that same read, and
// passes it in, so validation and mutation can't diverge.
type Account struct {
	Symbol string

	InvestedMoney  decimal.Decimal
	InvestedAmount decimal.Decimal
	ReturnedMoney  decimal.Decimal
	ReturnedAmount decimal.Decimal
}

// NewAccount creates an empty account for one asset.
func NewAccount(symbol string) *Account {
	return &Account{Symbol: symbol}
}

// Position returns the net open amount, InvestedAmount - ReturnedAmount.
// Buy and Sell keep it non-negative.
func (a *Account) Position() decimal.Decimal {
	return a.InvestedAmount.Sub(a.ReturnedAmount)
}

// Buy adds amount*price to the invested totals and returns the audit trade.
// No state is mutated on rejection.
func (a *Account) Buy(t float64, amount, price decimal.Decimal) (Trade, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Trade{}, ErrNonPositiveAmount
	}

	delta := amount.Mul(price)
	a.InvestedMoney = a.InvestedMoney.Add(delta)
	a.InvestedAmount = a.InvestedAmount.Add(amount)

	return a.trade(t, ActionBuy, amount, delta), nil
}

// Sell mirrors Buy against the returned totals. Selling more than the
// current open position is rejected with ErrOversell.
func (a *Account) Sell(t float64, amount, price decimal.Decimal) (Trade, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Trade{}, ErrNonPositiveAmount
	}
	if amount.GreaterThan(a.Position()) {
		return Trade{}, ErrOversell
	}

	delta := amount.Mul(price)
	a.ReturnedMoney = a.ReturnedMoney.Add(delta)
	a.ReturnedAmount = a.ReturnedAmount.Add(amount)

	return a.trade(t, ActionSell, amount, delta), nil
}

func (a *Account) trade(t float64, action Action, amount, delta decimal.Decimal) Trade {
	return Trade{
		ID:     uuid.New(),
		Time:   t,
		Symbol: a.Symbol,
		Action: action,
		Amount: amount,
		Delta:  delta,
	}
}
