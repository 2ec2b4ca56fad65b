package series

import "math"

// Price returns the recorded price at simulated time t. ok is false when
// the instant falls outside recorded history, outside the day's session,
// or on a gap sample. Gaps and closed sessions are indistinguishable
// here on purpose; HasEnded tells them apart.
func (a *Asset) Price(t float64) (float64, bool) {
	t -= a.Kind.SessionOffset()

	day := int(math.Floor(t / DaySeconds))
	if day < 0 || day >= len(a.Days) {
		return 0, false
	}

	idx := int(math.Mod(t, DaySeconds)) / SampleInterval
	if idx < 0 || idx >= len(a.Days[day]) {
		return 0, false
	}

	v := a.Days[day][idx]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// HasEnded reports whether simulated time has advanced past the end of
// recorded history, i.e. no future Price call can ever succeed again.
func (a *Asset) HasEnded(t float64) bool {
	t -= a.Kind.SessionOffset()
	return math.Floor(t/DaySeconds) >= float64(len(a.Days))
}
