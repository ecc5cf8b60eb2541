package domain

import "github.com/avanturapark/booking-service/pkg/types"

// Venue-wide booking constants
const (
	// VenueCapacity is the maximum number of persons inside the park at once
	VenueCapacity = 35

	// SlotStepMinutes is the granularity of bookable start times
	SlotStepMinutes = 30

	// DefaultDurationHours applies when a package has no duration set
	DefaultDurationHours = 2.0

	// DefaultPricePerExtraPerson party surcharge per person above the base group
	DefaultPricePerExtraPerson = 20.0

	// PartyBasePersons persons included in the party base price
	PartyBasePersons = 8

	// PartyFreePersonFrom party size from which one person is free
	// (Geburtstagskind gratis ab 10 Personen)
	PartyFreePersonFrom = 10
)

// Opening hours. The park closes at 18:30 on every day; 17:30 is the last
// bookable start. Holidays follow the weekend schedule by manual convention:
// the engine has no holiday calendar, staff block or book such days explicitly.
var (
	WeekendOpenTime = types.TimeString("10:30")
	WeekdayOpenTime = types.TimeString("13:00")
	LastStartTime   = types.TimeString("17:30")
	ClosingTime     = types.TimeString("18:30")
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
