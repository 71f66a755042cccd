package domain

import "time"

// DateOf truncates t to midnight UTC. Schedule slots and the game clock work
// at day granularity.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same UTC day.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
