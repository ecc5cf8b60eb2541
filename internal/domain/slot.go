package domain

import "github.com/avanturapark/booking-service/pkg/types"

// Slot represents a bookable start time with its remaining capacity
type Slot struct {
	StartTime  types.TimeString
	EndTime    types.TimeString
	FreePlaces int // clamped to >= 0 for display
	MaxPlaces  int
}

// IsFull returns true if the slot has no free places
func (s *Slot) IsFull() bool {
	return s.FreePlaces <= 0
}

// IsNearlyFull returns true when 10 or fewer places remain.
// The booking form highlights such slots.
func (s *Slot) IsNearlyFull() bool {
	return s.FreePlaces > 0 && s.FreePlaces <= 10
}
