// Package capacity accounts venue capacity across overlapping bookings.
// All functions are pure over the supplied booking list; callers are
// responsible for fetching a fresh list at decision time.
package capacity

import (
	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/pkg/types"
)

// UsedCapacity суммирует число персон по всем активным бронированиям,
// пересекающимся с интервалом-кандидатом [start, end)
//
// Интервалы считаются пересекающимися только при строгих неравенствах:
// s1 < e2 && s2 < e1. Бронирование, заканчивающееся ровно в момент начала
// другого, НЕ пересекается с ним (граничные случаи исключены).
func UsedCapacity(candidateStart, candidateEnd types.TimeString, bookings []*domain.Booking) int {
	newStart, err := candidateStart.Minutes()
	if err != nil {
		return 0
	}
	newEnd, err := candidateEnd.Minutes()
	if err != nil {
		return 0
	}

	used := 0
	for _, b := range bookings {
		// Отменённые бронирования не занимают места
		if !b.IsActive() {
			continue
		}

		existingStart, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}
		existingEnd, err := b.EndTime.Minutes()
		if err != nil {
			continue
		}

		if newStart < existingEnd && existingStart < newEnd {
			used += b.NumberOfPersons
		}
	}

	return used
}

// FreeCapacity возвращает свободные места для интервала-кандидата
// Значение может быть отрицательным, если админ создал бронирование сверх
// лимита; для отображения вызывающий код обрезает до >= 0, но для проверок
// используется знаковое значение
func FreeCapacity(candidateStart, candidateEnd types.TimeString, bookings []*domain.Booking) int {
	return domain.VenueCapacity - UsedCapacity(candidateStart, candidateEnd, bookings)
}

// WouldFit проверяет, помещается ли группа из partySize персон в интервал
func WouldFit(candidateStart, candidateEnd types.TimeString, partySize int, bookings []*domain.Booking) bool {
	return UsedCapacity(candidateStart, candidateEnd, bookings)+partySize <= domain.VenueCapacity
}
