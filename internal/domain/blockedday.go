package domain

import "time"

// BlockedDay is a calendar date on which no public bookings are accepted
// (maintenance, private events). Staff may still book past it manually.
type BlockedDay struct {
	ID     int64
	Date   time.Time // calendar day, no time component
	Reason string

	CreatedAt time.Time
}

// Matches reports whether the blocked day covers the given date
func (b *BlockedDay) Matches(date time.Time) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
