package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color classifies what a canvas cell is part of. The palette decides how
// each class looks on screen.
type Color uint8

const (
	ColorNone Color = iota
	ColorFg
	ColorGain
	ColorLoss
	ColorGap
	ColorAxis
	ColorLabel
)

// Palette maps cell color classes to lipgloss styles.
type Palette struct {
	Fg    lipgloss.Style
	Gain  lipgloss.Style
	Loss  lipgloss.Style
	Gap   lipgloss.Style
	Axis  lipgloss.Style
	Label lipgloss.Style
}

// DefaultPalette matches the rest of the terminal UI.
func DefaultPalette() Palette {
	return Palette{
		Fg:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB")),
		Gain:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Loss:  lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		Gap:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7F1D1D")),
		Axis:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

func (p Palette) style(c Color) lipgloss.Style {
	switch c {
	case ColorFg:
		return p.Fg
	case ColorGain:
		return p.Gain
	case ColorLoss:
		return p.Loss
	case ColorGap:
		return p.Gap
	case ColorAxis:
		return p.Axis
	case ColorLabel:
		return p.Label
	default:
		return lipgloss.NewStyle()
	}
}

type cell struct {
	r     rune
	color Color
}

// Canvas is the cell buffer the chart engine draws into. One cell is one
// terminal character, the closest thing a TUI has to a pixel.
type Canvas struct {
	w, h  int
	cells [][]cell
}

// NewCanvas allocates a cleared w×h buffer.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the buffer if the size changed. The previous
// contents are discarded either way, since every frame redraws fully.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if c.w != w || c.h != h {
		c.w, c.h = w, h
		c.cells = make([][]cell, h)
		for y := range c.cells {
			c.cells[y] = make([]cell, w)
		}
		return
	}
	c.Clear()
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{}
		}
	}
}

// Set writes one cell; out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int, r rune, col Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, color: col}
}

// SetString writes a horizontal run of cells starting at (x, y).
func (c *Canvas) SetString(x, y int, s string, col Color) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, col)
	}
}

// VLine fills column x from y0 to y1 inclusive, in either order.
func (c *Canvas) VLine(x, y0, y1 int, r rune, col Color) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.Set(x, y, r, col)
	}
}

// HLine fills row y from x0 to x1 inclusive.
func (c *Canvas) HLine(x0, x1, y int, r rune, col Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.Set(x, y, r, col)
	}
}

func (c *Canvas) at(x, y int) (rune, Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return 0, ColorNone
	}
	cl := c.cells[y][x]
	return cl.r, cl.color
}

// Render styles the buffer into a printable block of text, batching runs
// of equal color to keep the ANSI output small.
func (c *Canvas) Render(p Palette) string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		x := 0
		for x < c.w {
			col := c.cells[y][x].color
			var run strings.Builder
			for x < c.w && c.cells[y][x].color == col {
				r := c.cells[y][x].r
				if r == 0 {
					r = ' '
				}
				run.WriteRune(r)
				x++
			}
			if col == ColorNone {
				b.WriteString(run.String())
			} else {
				b.WriteString(p.style(col).Render(run.String()))
			}
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
