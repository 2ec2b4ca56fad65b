package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestBuyAccumulates(t *testing.T) {
	a := NewAccount("AAPL")

	trade, err := a.Buy(1000, d("10"), d("50"))
	require.NoError(t, err)

	assert.True(t, a.InvestedMoney.Equal(d("500")), "invested money %s", a.InvestedMoney)
	assert.True(t, a.InvestedAmount.Equal(d("10")))
	assert.True(t, a.ReturnedMoney.IsZero(), "returned money untouched by buy")
	assert.True(t, a.ReturnedAmount.IsZero())

	assert.Equal(t, "AAPL", trade.Symbol)
	assert.Equal(t, ActionBuy, trade.Action)
	assert.Equal(t, float64(1000), trade.Time)
	assert.True(t, trade.Delta.Equal(d("500")))
	assert.NotZero(t, trade.ID)
}

func TestBuyThenSellRoundTrip(t *testing.T) {
	a := NewAccount("BTC")

	_, err := a.Buy(1000, d("10"), d("50"))
	require.NoError(t, err)

	trade, err := a.Sell(1005, d("10"), d("60"))
	require.NoError(t, err)

	assert.True(t, a.ReturnedMoney.Equal(d("600")))
	assert.True(t, a.ReturnedAmount.Equal(d("10")))
	assert.True(t, a.Position().IsZero(), "position closed")
	assert.Equal(t, ActionSell, trade.Action)
	assert.True(t, trade.Delta.Equal(d("600")))
}

func TestSellRejectsOversell(t *testing.T) {
	a := NewAccount("ETH")

	_, err := a.Buy(0, d("5"), d("100"))
	require.NoError(t, err)

	_, err = a.Sell(10, d("6"), d("100"))
	assert.ErrorIs(t, err, ErrOversell)

	// Rejection must leave state untouched.
	assert.True(t, a.ReturnedMoney.IsZero())
	assert.True(t, a.ReturnedAmount.IsZero())
	assert.True(t, a.Position().Equal(d("5")))

	// Position never goes negative over a valid sequence.
	_, err = a.Sell(20, d("5"), d("120"))
	require.NoError(t, err)
	assert.True(t, a.Position().IsZero())
	_, err = a.Sell(30, d("0.0001"), d("120"))
	assert.ErrorIs(t, err, ErrOversell)
}

func TestRejectNonPositiveAmount(t *testing.T) {
	a := NewAccount("DOGE")

	_, err := a.Buy(0, decimal.Zero, d("1"))
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = a.Sell(0, d("-3"), d("1"))
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	assert.True(t, a.InvestedMoney.IsZero())
	assert.True(t, a.InvestedAmount.IsZero())
}

func TestFractionalCryptoAmounts(t *testing.T) {
	a := NewAccount("BTC")

	_, err := a.Buy(0, d("0.25"), d("40000"))
	require.NoError(t, err)
	assert.True(t, a.InvestedMoney.Equal(d("10000")))

	_, err = a.Sell(5, d("0.1"), d("42000"))
	require.NoError(t, err)
	assert.True(t, a.ReturnedMoney.Equal(d("4200")))
	assert.True(t, a.Position().Equal(d("0.15")))
}
