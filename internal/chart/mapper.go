package chart

// Lerp linearly maps v from the range [x1, x2] into [y1, y2]. Both the
// pixel→domain and domain→pixel directions use it by swapping argument
// order. A degenerate source range (x1 == x2) is a caller error; the
// scale invariants below never produce one.
func Lerp(v, x1, x2, y1, y2 float64) float64 {
	return y1 + (v-x1)*(y2-y1)/(x2-x1)
}

// Sample is the result of mapping a pixel column into the domain.
type Sample struct {
	Time     float64
	Price    float64
	InPlot   bool // column lies within the plot area
	HasPrice bool // a price exists at Time
}

// At maps pixel column x to a (time, price) pair via the current scale.
// Columns outside [YMargin, Width] are outside the plot area.
func (c *Chart) At(x int) Sample {
	if x < c.YMargin || x > c.Width {
		return Sample{}
	}

	t := Lerp(float64(x), float64(c.YMargin), float64(c.Width), c.ScaleXMin, c.ScaleXMax)
	p, ok := c.Fn(t)
	return Sample{Time: t, Price: p, InPlot: true, HasPrice: ok}
}
