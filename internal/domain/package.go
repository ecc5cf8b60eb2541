package domain

import "time"

// PackageType determines how the base price is applied
type PackageType string

const (
	PackageHourly    PackageType = "hourly"     // price is per person
	PackageParty     PackageType = "party"      // flat price up to 8 persons, surcharge above
	PackageDayTicket PackageType = "day_ticket" // flat price per booking
)

// IsValidPackageType reports whether t is a known package type
func IsValidPackageType(t PackageType) bool {
	return t == PackageHourly || t == PackageParty || t == PackageDayTicket
}

// PricingMode selects the pricing strategy for a package.
// FlatGroup replaces the old hard-coded per-name override ("4-Stunden Ticket"):
// from GroupMinPersons on, the whole price becomes persons * GroupRatePerPerson.
type PricingMode string

const (
	PricingStandard  PricingMode = "standard"
	PricingFlatGroup PricingMode = "flat_group"
)

// Package is a bookable product (Erlebnispaket)
type Package struct {
	ID                  int64
	Name                string
	Description         string
	Type                PackageType
	Price               float64
	DurationHours       float64 // defaults to 2 when unset
	MinPersons          int
	MaxPersons          int
	PricePerExtraPerson float64 // party surcharge per person above 8, defaults to 20
	IncludedFeatures    []string
	IncludesFood        bool
	FoodOptions         []string
	PricingMode         PricingMode
	GroupRatePerPerson  float64 // flat_group: per-person rate
	GroupMinPersons     int     // flat_group: rate applies from this party size
	AvailableDays       DaySet  // explicit day restriction, replaces name-marker matching
	IsActive            bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the package duration, applying the 2-hour default
func (p *Package) Duration() float64 {
	if p.DurationHours <= 0 {
		return DefaultDurationHours
	}
	return p.DurationHours
}

// ExtraPersonPrice returns the party surcharge rate, applying the default
func (p *Package) ExtraPersonPrice() float64 {
	if p.PricePerExtraPerson <= 0 {
		return DefaultPricePerExtraPerson
	}
	return p.PricePerExtraPerson
}

// RequiresFoodSelection returns true when a booking of this package
// must carry a food choice
func (p *Package) RequiresFoodSelection() bool {
	return p.IncludesFood && len(p.FoodOptions) > 0
}

// HasFoodOption reports whether the given food choice is offered
func (p *Package) HasFoodOption(food string) bool {
	for _, opt := range p.FoodOptions {
		if opt == food {
			return true
		}
	}
	return false
}

// AvailableOn reports whether the package may be booked on the given date
func (p *Package) AvailableOn(date time.Time) bool {
	return p.AvailableDays.Contains(date.Weekday())
}
