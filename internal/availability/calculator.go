// Package availability computes opening-hour time slots and package
// day-eligibility for a given date. It is pure: no clock, no storage.
package availability

import (
	"time"

	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/pkg/types"
)

// IsWeekend reports whether the date follows the weekend schedule
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// OpeningSlots возвращает все стартовые слоты на дату с шагом 30 минут
// Сб/Вс: 10:30-17:30, Пн-Пт: 13:00-17:30 (последний старт, парк закрывается в 18:30)
func OpeningSlots(date time.Time) []types.TimeString {
	open := domain.WeekdayOpenTime
	if IsWeekend(date) {
		open = domain.WeekendOpenTime
	}

	slots := make([]types.TimeString, 0, 16)
	current := open

	for !current.IsAfter(domain.LastStartTime) {
		slots = append(slots, current)
		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// EligiblePackages фильтрует пакеты по ограничению дней недели
// Ограничение задано явным полем AvailableDays, а не маркером в названии
func EligiblePackages(date time.Time, packages []*domain.Package) []*domain.Package {
	eligible := make([]*domain.Package, 0, len(packages))
	for _, pkg := range packages {
		if pkg.AvailableOn(date) {
			eligible = append(eligible, pkg)
		}
	}
	return eligible
}

// FeasibleSlots оставляет только слоты, в которые пакет успевает закончиться
// до закрытия парка (18:30). Неподходящие слоты исключаются, а не помечаются.
func FeasibleSlots(pkg *domain.Package, slots []types.TimeString) []types.TimeString {
	feasible := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if SlotFits(slot, pkg.Duration()) {
			feasible = append(feasible, slot)
		}
	}
	return feasible
}

// SlotFits проверяет, что start + duration не выходит за время закрытия
func SlotFits(start types.TimeString, durationHours float64) bool {
	startMin, err := start.Minutes()
	if err != nil {
		return false
	}
	closingMin, _ := domain.ClosingTime.Minutes()
	return startMin+durationMinutes(durationHours) <= closingMin
}

// EndTime вычисляет время окончания start + duration с сохранением минут
// Результат ограничен временем закрытия (18:30)
func EndTime(start types.TimeString, durationHours float64) types.TimeString {
	startMin, err := start.Minutes()
	if err != nil {
		return ""
	}

	endMin := startMin + durationMinutes(durationHours)
	closingMin, _ := domain.ClosingTime.Minutes()
	if endMin > closingMin {
		return domain.ClosingTime
	}

	return types.FromMinutes(endMin)
}

// durationMinutes переводит длительность в часах (возможно дробную) в минуты
func durationMinutes(hours float64) int {
	return int(hours*60 + 0.5)
}
