package create_booking

import (
	"errors"
	"fmt"

	"github.com/avanturapark/booking-service/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPackageNotFound возвращается, когда пакет не найден или неактивен
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrExtraNotFound возвращается, когда дополнительная услуга не найдена или неактивна
	ErrExtraNotFound = errors.New("create_booking: extra not found")

	// ErrPackageNotAvailableOnDay возвращается, когда пакет недоступен в этот день недели
	ErrPackageNotAvailableOnDay = errors.New("create_booking: package is not available on this day")

	// ErrInvalidTimeSlot возвращается, когда время начала не входит в сетку слотов
	// или бронирование не укладывается до закрытия
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrFoodSelectionRequired возвращается, когда пакет с питанием забронирован без выбора еды
	ErrFoodSelectionRequired = errors.New("create_booking: food selection is required for this package")

	// ErrInvalidFoodSelection возвращается при выборе еды, которой нет в пакете
	ErrInvalidFoodSelection = errors.New("create_booking: selected food is not offered by this package")

	// ErrPersonsOutOfRange возвращается при размере группы вне границ пакета
	ErrPersonsOutOfRange = errors.New("create_booking: number of persons is out of range for this package")

	// ErrDateInPast возвращается при публичном бронировании на прошедшую дату
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrDayBlocked возвращается при публичном бронировании на заблокированный день
	ErrDayBlocked = errors.New("create_booking: day is blocked for bookings")

	// ErrNoCapacity возвращается, когда в слоте не хватает мест для группы
	ErrNoCapacity = errors.New("create_booking: not enough free places in this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// CapacityError детализирует отказ по вместимости: сколько мест свободно
// и какие слоты этого дня еще вмещают группу
type CapacityError struct {
	Requested    int
	FreePlaces   int
	Alternatives []types.TimeString
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: requested=%d, free=%d, alternatives=%d",
		ErrNoCapacity, e.Requested, e.FreePlaces, len(e.Alternatives))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrNoCapacity)
func (e *CapacityError) Unwrap() error {
	return ErrNoCapacity
}
