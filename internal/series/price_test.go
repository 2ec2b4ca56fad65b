package series

import (
	"math"
	"testing"
)

func cryptoAsset(days ...[]float64) *Asset {
	return &Asset{Symbol: "BTC", Kind: KindCrypto, Days: days}
}

func TestPriceLookup(t *testing.T) {
	a := cryptoAsset(
		[]float64{100, 101, 102, math.NaN(), 103},
		[]float64{200, 201},
	)

	p, ok := a.Price(10) // sample index 2
	if !ok {
		t.Fatal("expected price at t=10")
	}
	if p != 102 {
		t.Errorf("expected 102, got %v", p)
	}

	// Gap sample.
	if _, ok := a.Price(15); ok {
		t.Error("expected gap at t=15")
	}

	// Second day.
	p, ok = a.Price(86400 + 5)
	if !ok || p != 201 {
		t.Errorf("expected 201 on day 1, got %v ok=%v", p, ok)
	}

	// Past the end of the day's samples: market closed.
	if _, ok := a.Price(86400 - 1); ok {
		t.Error("expected no price past end of day samples")
	}
}

func TestPricePastHistory(t *testing.T) {
	a := cryptoAsset(
		[]float64{100, 101, 102, math.NaN(), 103},
		[]float64{200, 201},
	)

	if _, ok := a.Price(86400 * 3); ok {
		t.Error("expected no price past recorded history")
	}
	if !a.HasEnded(86400 * 3) {
		t.Error("expected HasEnded past recorded history")
	}
	if a.HasEnded(86400 + 10) {
		t.Error("HasEnded true inside recorded history")
	}

	// Before day zero.
	if _, ok := a.Price(-10); ok {
		t.Error("expected no price before day zero")
	}
}

func TestStockSessionOffset(t *testing.T) {
	a := &Asset{Symbol: "AAPL", Kind: KindStock, Days: [][]float64{{50, 51, 52}}}

	// Pre-market: before the 9-hour session offset there is no price.
	if _, ok := a.Price(3600); ok {
		t.Error("expected no price before stock session open")
	}

	// Exactly at open the first sample is live.
	p, ok := a.Price(9 * 3600)
	if !ok || p != 50 {
		t.Errorf("expected 50 at session open, got %v ok=%v", p, ok)
	}

	p, ok = a.Price(9*3600 + 10)
	if !ok || p != 52 {
		t.Errorf("expected 52 two samples in, got %v ok=%v", p, ok)
	}

	// HasEnded is shifted by the session offset too.
	if a.HasEnded(86400) {
		t.Error("stock day 0 session spills past midnight, not ended yet")
	}
	if !a.HasEnded(86400 + 9*3600) {
		t.Error("expected HasEnded once the shifted day index passes history")
	}
}

func TestCaesar(t *testing.T) {
	if got := Caesar("AAPL", 3); got != "DDSO" {
		t.Errorf("expected DDSO, got %q", got)
	}
	if got := Caesar("xyz", 3); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
	if got := Caesar("BTC-USD", 3); got != "EWF-XVG" {
		t.Errorf("expected EWF-XVG, got %q", got)
	}

	// Reversible.
	if got := Caesar(Caesar("DOGE", 3), 23); got != "DOGE" {
		t.Errorf("expected round trip DOGE, got %q", got)
	}

	a := &Asset{Symbol: "TSLA", Kind: KindStock}
	if a.Pseudonym() != "WVOD" {
		t.Errorf("expected pseudonym WVOD, got %q", a.Pseudonym())
	}
}
