package domain

import (
	"fmt"
	"strings"
	"time"
)

// DaySet is a set of weekdays on which a package may be booked, stored as a
// bitmask (bit 0 = Sunday, matching time.Weekday). It replaces the original
// day-restriction markers embedded in package display names ("Fr-So", "Mo-Do").
type DaySet uint8

const (
	daySunday DaySet = 1 << iota
	dayMonday
	dayTuesday
	dayWednesday
	dayThursday
	dayFriday
	daySaturday
)

// Предопределенные наборы дней, соответствующие историческим ограничениям пакетов
var (
	AllDays  = DaySet(0b1111111)
	FriToSun = daySunday | dayFriday | daySaturday
	MonToThu = dayMonday | dayTuesday | dayWednesday | dayThursday
)

var dayNames = map[string]DaySet{
	"sun": daySunday,
	"mon": dayMonday,
	"tue": dayTuesday,
	"wed": dayWednesday,
	"thu": dayThursday,
	"fri": dayFriday,
	"sat": daySaturday,
}

var dayOrder = []struct {
	name string
	bit  DaySet
}{
	{"mon", dayMonday},
	{"tue", dayTuesday},
	{"wed", dayWednesday},
	{"thu", dayThursday},
	{"fri", dayFriday},
	{"sat", daySaturday},
	{"sun", daySunday},
}

// Contains reports whether the weekday belongs to the set
func (d DaySet) Contains(w time.Weekday) bool {
	return d&(1<<uint(w)) != 0
}

// IsEmpty returns true when no weekday is allowed
func (d DaySet) IsEmpty() bool {
	return d&AllDays == 0
}

// Names returns the set as lowercase three-letter day names, Monday first
func (d DaySet) Names() []string {
	names := make([]string, 0, 7)
	for _, day := range dayOrder {
		if d&day.bit != 0 {
			names = append(names, day.name)
		}
	}
	return names
}

// ParseDaySet builds a DaySet from three-letter day names.
// An empty list means no restriction (all days).
func ParseDaySet(names []string) (DaySet, error) {
	if len(names) == 0 {
		return AllDays, nil
	}

	var set DaySet
	for _, name := range names {
		bit, ok := dayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown weekday name: %q", name)
		}
		set |= bit
	}
	return set, nil
}
