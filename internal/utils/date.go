package utils

import "time"

// DateOnly strips the clock from a timestamp, keeping the calendar day
// in the timestamp's own location. Truncating by 24h instead would cut
// at UTC boundaries and shift evening times onto the wrong day.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
