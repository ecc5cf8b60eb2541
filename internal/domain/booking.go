package domain

import (
	"time"

	"github.com/avanturapark/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// ValidStatuses lists every status the API accepts
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValidStatus reports whether s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ExtraSelection is a by-value snapshot of an extra taken at booking time.
// The live Extra record may be edited or deleted later without affecting
// existing bookings.
type ExtraSelection struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PaymentOnSite is the only supported payment method: guests pay at the venue
const PaymentOnSite = "on_site"

// Booking represents a reservation at the park
type Booking struct {
	ID              int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	PackageID       int64
	PackageName     string // denormalized for history
	NumberOfPersons int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	SpecialRequests string
	SelectedFood    string
	Extras          []ExtraSelection
	TotalPrice      float64
	PaymentMethod   string
	Status          BookingStatus
	CalendarEventID *string // set after a successful calendar sync

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies capacity.
// Only cancelled bookings release their places.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeConfirmed returns true if the booking can transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// IsTerminal returns true for states the workflow never leaves
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanTransitionTo validates a status change against the booking lifecycle:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
