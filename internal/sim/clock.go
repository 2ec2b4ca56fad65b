package sim

import "fmt"

// FormatClock renders simulated seconds as HH:MM:SS, optionally prefixed
// with the simulated day number. Used for the chart's time axis labels
// and the HUD clock.
func FormatClock(secs float64, withDays bool) string {
	day := int(secs) / 86400
	hour := int(secs) / 3600 % 24
	minute := int(secs) / 60 % 60
	second := int(secs) % 60

	if withDays {
		return fmt.Sprintf("D%d %02d:%02d:%02d", day, hour, minute, second)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}
