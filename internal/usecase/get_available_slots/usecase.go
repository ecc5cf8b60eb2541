package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avanturapark/booking-service/internal/availability"
	"github.com/avanturapark/booking-service/internal/capacity"
	"github.com/avanturapark/booking-service/internal/domain"
	blockedRepo "github.com/avanturapark/booking-service/internal/infra/storage/blockedday"
	packageRepo "github.com/avanturapark/booking-service/internal/infra/storage/packages"
)

// UseCase use case для расчета доступных слотов на дату
type UseCase struct {
	bookingRepo    BookingRepository
	packageRepo    PackageRepository
	blockedDayRepo BlockedDayRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	blockedDayRepo BlockedDayRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		packageRepo:    packageRepo,
		blockedDayRepo: blockedDayRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute возвращает слоты дня с остатком мест для выбранного пакета.
// Чтение идет без блокировок: точность на момент ответа достаточна,
// настоящую проверку делает создание бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, package=%d, persons=%d",
		req.Date.Format(domain.DateFormat), req.PackageID, req.NumberOfPersons)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.PackageID <= 0 {
		return nil, fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	persons := req.NumberOfPersons
	if persons <= 0 {
		persons = 1
	}

	// 2. Получаем пакет
	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			uc.logger.Warn("GetAvailableSlots: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	if !pkg.IsActive {
		uc.logger.Warn("GetAvailableSlots: package id=%d is inactive", req.PackageID)
		return nil, ErrPackageNotFound
	}

	// 3. День недели пакета
	if !pkg.AvailableOn(req.Date) {
		uc.logger.Info("GetAvailableSlots: package id=%d not offered on %s", req.PackageID, req.Date.Weekday())
		return nil, ErrPackageNotAvailableOnDay
	}

	// 4. Заблокированный день: отвечаем пустым списком с причиной
	blocked, err := uc.blockedDayRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, blockedRepo.ErrBlockedDayNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to check blocked day: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked day: %v", ErrInternal, err)
	}
	if blocked != nil {
		uc.logger.Info("GetAvailableSlots: date %s is blocked: %s", req.Date.Format(domain.DateFormat), blocked.Reason)
		return &Response{
			Date:      req.Date,
			PackageID: req.PackageID,
			Blocked:   true,
			Reason:    blocked.Reason,
			Slots:     []SlotInfo{},
		}, nil
	}

	// 5. Бронирования дня
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Считаем остаток мест per слот
	slots := make([]SlotInfo, 0)
	for _, start := range availability.FeasibleSlots(pkg, availability.OpeningSlots(req.Date)) {
		end := availability.EndTime(start, pkg.Duration())

		free := capacity.FreeCapacity(start, end, bookings)
		if free < 0 {
			free = 0
		}

		slot := domain.Slot{
			StartTime:  start,
			EndTime:    end,
			FreePlaces: free,
			MaxPlaces:  domain.VenueCapacity,
		}

		slots = append(slots, SlotInfo{
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
			FreePlaces: slot.FreePlaces,
			MaxPlaces:  slot.MaxPlaces,
			Available:  free >= persons,
			NearlyFull: slot.IsNearlyFull(),
		})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, package=%d: %d slots", req.Date.Format(domain.DateFormat), req.PackageID, len(slots))

	return &Response{
		Date:      req.Date,
		PackageID: req.PackageID,
		Slots:     slots,
	}, nil
}
