package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/avanturapark/booking-service/internal/availability"
	"github.com/avanturapark/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса без обращения к хранилищу
func validateRequest(req *Request) error {
	if req.Channel != ChannelPublic && req.Channel != ChannelAdmin {
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, req.Channel)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if req.NumberOfPersons <= 0 {
		return fmt.Errorf("%w: numberOfPersons must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	// Публичная форма требует контактные данные; персонал может
	// принять бронирование по телефону без них
	if req.Channel == ChannelPublic {
		if strings.TrimSpace(req.CustomerEmail) == "" {
			return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
		}
		if strings.TrimSpace(req.CustomerPhone) == "" {
			return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
		}
	}

	// Статус задает только персонал
	if req.Status != "" {
		if req.Channel != ChannelAdmin {
			return fmt.Errorf("%w: status can only be set by staff", ErrInvalidInput)
		}
		if req.Status != domain.StatusPending && req.Status != domain.StatusConfirmed {
			return fmt.Errorf("%w: initial status must be pending or confirmed", ErrInvalidInput)
		}
	}

	return nil
}

// validatePackageRules проверяет запрос против правил выбранного пакета
func validatePackageRules(req *Request, pkg *domain.Package) error {
	// День недели
	if !pkg.AvailableOn(req.Date) {
		return ErrPackageNotAvailableOnDay
	}

	// Размер группы
	if pkg.MinPersons > 0 && req.NumberOfPersons < pkg.MinPersons {
		return fmt.Errorf("%w: minimum %d persons", ErrPersonsOutOfRange, pkg.MinPersons)
	}
	if pkg.MaxPersons > 0 && req.NumberOfPersons > pkg.MaxPersons {
		return fmt.Errorf("%w: maximum %d persons", ErrPersonsOutOfRange, pkg.MaxPersons)
	}

	// Выбор еды
	if pkg.RequiresFoodSelection() {
		if strings.TrimSpace(req.SelectedFood) == "" {
			return ErrFoodSelectionRequired
		}
		if !pkg.HasFoodOption(req.SelectedFood) {
			return fmt.Errorf("%w: %q", ErrInvalidFoodSelection, req.SelectedFood)
		}
	}

	return nil
}

// validateTimeSlot проверяет, что время начала входит в сетку слотов дня
// и бронирование укладывается до закрытия
func validateTimeSlot(req *Request, pkg *domain.Package) error {
	inGrid := false
	for _, slot := range availability.OpeningSlots(req.Date) {
		if slot == req.StartTime {
			inGrid = true
			break
		}
	}
	if !inGrid {
		return fmt.Errorf("%w: %s is not a bookable start time", ErrInvalidTimeSlot, req.StartTime)
	}

	if !availability.SlotFits(req.StartTime, pkg.Duration()) {
		return fmt.Errorf("%w: %s does not fit before closing", ErrInvalidTimeSlot, req.StartTime)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
