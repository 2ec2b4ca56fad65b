package chart

import (
	"math"
	"testing"
)

func TestLerpRoundTrip(t *testing.T) {
	cases := []struct{ v, x1, x2, y1, y2 float64 }{
		{5, 0, 10, 0, 100},
		{-3, -10, 10, 50, 150},
		{0.125, 0, 1, 600, 0},
		{86400, 0, 172800, 64, 800},
	}
	for _, tc := range cases {
		mapped := Lerp(tc.v, tc.x1, tc.x2, tc.y1, tc.y2)
		back := Lerp(mapped, tc.y1, tc.y2, tc.x1, tc.x2)
		if math.Abs(back-tc.v) > 1e-9 {
			t.Errorf("round trip of %v gave %v", tc.v, back)
		}
	}
}

func TestLerpInvertedAxis(t *testing.T) {
	// Mapping a price into rows with row 0 on top.
	if got := Lerp(100, 0, 100, 100, 0); got != 0 {
		t.Errorf("max price should land on row 0, got %v", got)
	}
	if got := Lerp(0, 0, 100, 100, 0); got != 100 {
		t.Errorf("min price should land on the bottom row, got %v", got)
	}
}

func TestAtOutsidePlotArea(t *testing.T) {
	c := New(func(float64) (float64, bool) { return 42, true }, 80, 24, DefaultConfig())

	if s := c.At(c.YMargin - 1); s.InPlot {
		t.Error("column left of the plot area should not map")
	}
	if s := c.At(c.Width + 1); s.InPlot {
		t.Error("column right of the plot area should not map")
	}

	s := c.At(c.YMargin)
	if !s.InPlot || !s.HasPrice {
		t.Fatal("first plot column should map")
	}
	if s.Time != c.ScaleXMin {
		t.Errorf("left edge should map to ScaleXMin, got %v", s.Time)
	}
	if s.Price != 42 {
		t.Errorf("expected price 42, got %v", s.Price)
	}
}

func TestTickStep(t *testing.T) {
	if got := tickStep(100, 10); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	if got := tickStep(128, 15); got != 15 {
		t.Errorf("expected 15, got %v", got)
	}
	if got := tickStep(0.5, 10); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("expected 0.1, got %v", got)
	}
	if got := tickStep(16, 15); got != 15 {
		t.Errorf("expected 15, got %v", got)
	}
	// Degenerate ranges must be detected, not drawn.
	if usableStep(tickStep(0, 10)) {
		t.Error("zero range must not produce a usable step")
	}
	if usableStep(tickStep(math.NaN(), 10)) {
		t.Error("NaN range must not produce a usable step")
	}
}
