package domain

import "time"

// Extra is an optional add-on that can be attached to a booking.
// Bookings copy name and price by value at creation time.
type Extra struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot returns the by-value copy stored inside a booking
func (e *Extra) Snapshot() ExtraSelection {
	return ExtraSelection{Name: e.Name, Price: e.Price}
}
