package sim

import "github.com/zappabad/tapetrader/internal/series"

// Config holds configuration for a trading session.
type Config struct {
	// StartTime is the initial simulated clock in seconds.
	StartTime float64
	// StartBalance is the initial cash balance.
	StartBalance float64
	// StartZoom is the initial visible window width in simulated seconds.
	StartZoom float64
	// MinZoom and MaxZoom bound the zoom window; both powers of two.
	MinZoom float64
	MaxZoom float64
	// MaxSpeed bounds the clock multiplier; a power of two. Minimum is 1.
	MaxSpeed int
	// StateFile is where the session persists itself. Empty disables saving.
	StateFile string
}

// DefaultConfig returns a Config with reasonable defaults. The clock
// starts at the second week's stock opening hour so the chart has some
// history behind it.
func DefaultConfig() Config {
	return Config{
		StartTime:    7*series.DaySeconds + 9*3600,
		StartBalance: 1_000_000,
		StartZoom:    128,
		MinZoom:      16,
		MaxZoom:      1 << 20,
		MaxSpeed:     1 << 10,
		StateFile:    "save.json",
	}
}
