package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avanturapark/booking-service/internal/availability"
	"github.com/avanturapark/booking-service/internal/capacity"
	"github.com/avanturapark/booking-service/internal/domain"
	blockedRepo "github.com/avanturapark/booking-service/internal/infra/storage/blockedday"
	extraRepo "github.com/avanturapark/booking-service/internal/infra/storage/extras"
	packageRepo "github.com/avanturapark/booking-service/internal/infra/storage/packages"
	"github.com/avanturapark/booking-service/internal/pricing"
	"github.com/avanturapark/booking-service/pkg/types"
)

// UseCase use case для создания бронирования.
// Обслуживает оба канала: публичную форму сайта и ручные бронирования персонала.
type UseCase struct {
	bookingRepo    BookingRepository
	packageRepo    PackageRepository
	extraRepo      ExtraRepository
	blockedDayRepo BlockedDayRepository
	txManager      TransactionManager
	notifier       Notifier
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	extraRepo ExtraRepository,
	blockedDayRepo BlockedDayRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		packageRepo:    packageRepo,
		extraRepo:      extraRepo,
		blockedDayRepo: blockedDayRepo,
		txManager:      txManager,
		notifier:       notifier,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка выполняются в сериализуемой транзакции
// с блокировкой бронирований дня, чтобы исключить гонку двух параллельных заявок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: channel=%s, date=%s, time=%s, package=%d, persons=%d",
		req.Channel, req.Date.Format(domain.DateFormat), req.StartTime, req.PackageID, req.NumberOfPersons)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пакет
	pkg, err := uc.packageRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			uc.logger.Warn("CreateBooking: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	if !pkg.IsActive {
		uc.logger.Warn("CreateBooking: package id=%d is inactive", req.PackageID)
		return nil, ErrPackageNotFound
	}

	// 3. Правила пакета: день недели, размер группы, выбор еды
	if err := validatePackageRules(req, pkg); err != nil {
		uc.logger.Warn("CreateBooking: package rules failed: %v", err)
		return nil, err
	}

	// 4. Публичная форма не принимает прошедшие даты.
	// Персонал может дооформить сегодняшний визит задним числом.
	// Проверяется после правил пакета: неподходящий день недели
	// важнее, чем прошедшая дата.
	if req.Channel == ChannelPublic && isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 5. Время начала и закрытие парка
	if err := validateTimeSlot(req, pkg); err != nil {
		uc.logger.Warn("CreateBooking: time slot validation failed: %v", err)
		return nil, err
	}

	// 6. Заблокированные дни останавливают только публичные заявки:
	// персонал бронирует закрытые дни под частные мероприятия
	if req.Channel == ChannelPublic {
		if err := uc.checkDayNotBlocked(ctx, req); err != nil {
			return nil, err
		}
	}

	// 7. Снимаем копии выбранных дополнительных услуг
	extras, err := uc.resolveExtras(ctx, req.ExtraIDs)
	if err != nil {
		return nil, err
	}

	// 8. Расчет времени окончания и стоимости
	endTime := availability.EndTime(req.StartTime, pkg.Duration())
	totalPrice := pricing.ComputeTotal(pkg, req.NumberOfPersons, extras)

	status := domain.StatusPending
	if req.Channel == ChannelAdmin && req.Status != "" {
		status = req.Status
	}

	var result *domain.Booking
	var capacityWarning string

	// 9. Проверка вместимости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Бронирования дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.2. Проверяем свободные места
		if !capacity.WouldFit(req.StartTime, endTime, req.NumberOfPersons, bookings) {
			free := capacity.FreeCapacity(req.StartTime, endTime, bookings)
			if free < 0 {
				free = 0
			}

			if req.Channel == ChannelPublic {
				alternatives := uc.findAlternatives(req, pkg, bookings)
				uc.logger.Warn("CreateBooking: no capacity, requested=%d, free=%d, alternatives=%d",
					req.NumberOfPersons, free, len(alternatives))
				return &CapacityError{
					Requested:    req.NumberOfPersons,
					FreePlaces:   free,
					Alternatives: alternatives,
				}
			}

			// Персонал бронирует с перегрузом осознанно
			capacityWarning = fmt.Sprintf("Kapazität überschritten: %d Personen angefragt, nur %d Plätze frei", req.NumberOfPersons, free)
			uc.logger.Warn("CreateBooking: admin overbooking, requested=%d, free=%d", req.NumberOfPersons, free)
		}

		// 9.3. Создаем бронирование с денормализацией пакета
		booking := &domain.Booking{
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			PackageID:       pkg.ID,
			PackageName:     pkg.Name,
			NumberOfPersons: req.NumberOfPersons,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			SpecialRequests: req.SpecialRequests,
			SelectedFood:    req.SelectedFood,
			Extras:          extras,
			TotalPrice:      totalPrice,
			PaymentMethod:   domain.PaymentOnSite,
			Status:          status,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s, total=%.2f",
		result.ID, result.Status, result.TotalPrice)

	// 10. Побочные эффекты выполняются после коммита, в фоне
	uc.notifier.BookingCreated(result)
	if result.Status == domain.StatusConfirmed {
		uc.notifier.BookingConfirmed(result)
	}

	return &Response{
		ID:              result.ID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		PackageID:       result.PackageID,
		PackageName:     result.PackageName,
		NumberOfPersons: result.NumberOfPersons,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
		SpecialRequests: result.SpecialRequests,
		SelectedFood:    result.SelectedFood,
		Extras:          result.Extras,
		TotalPrice:      result.TotalPrice,
		PaymentMethod:   result.PaymentMethod,
		Status:          string(result.Status),
		CapacityWarning: capacityWarning,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// checkDayNotBlocked возвращает ErrDayBlocked, если день закрыт для публичных заявок
func (uc *UseCase) checkDayNotBlocked(ctx context.Context, req *Request) error {
	blocked, err := uc.blockedDayRepo.GetByDate(ctx, req.Date)
	if err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedDayNotFound) {
			return nil
		}
		uc.logger.Error("CreateBooking: failed to check blocked day: %v", err)
		return fmt.Errorf("%w: failed to check blocked day: %v", ErrInternal, err)
	}

	uc.logger.Warn("CreateBooking: date %s is blocked: %s", req.Date.Format(domain.DateFormat), blocked.Reason)
	return ErrDayBlocked
}

// resolveExtras загружает выбранные услуги и снимает копии имени и цены
func (uc *UseCase) resolveExtras(ctx context.Context, extraIDs []int64) ([]domain.ExtraSelection, error) {
	extras := make([]domain.ExtraSelection, 0, len(extraIDs))

	for _, id := range extraIDs {
		extra, err := uc.extraRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, extraRepo.ErrExtraNotFound) {
				uc.logger.Warn("CreateBooking: extra id=%d not found", id)
				return nil, fmt.Errorf("%w: id=%d", ErrExtraNotFound, id)
			}
			uc.logger.Error("CreateBooking: failed to get extra id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to get extra: %v", ErrInternal, err)
		}

		if !extra.IsActive {
			uc.logger.Warn("CreateBooking: extra id=%d is inactive", id)
			return nil, fmt.Errorf("%w: id=%d", ErrExtraNotFound, id)
		}

		extras = append(extras, extra.Snapshot())
	}

	return extras, nil
}

// findAlternatives собирает слоты дня, еще вмещающие группу, по возрастанию времени.
// Запрошенный слот исключается: в нем мест уже нет.
func (uc *UseCase) findAlternatives(req *Request, pkg *domain.Package, bookings []*domain.Booking) []types.TimeString {
	alternatives := make([]types.TimeString, 0)

	for _, slot := range availability.FeasibleSlots(pkg, availability.OpeningSlots(req.Date)) {
		if slot == req.StartTime {
			continue
		}

		end := availability.EndTime(slot, pkg.Duration())
		if capacity.WouldFit(slot, end, req.NumberOfPersons, bookings) {
			alternatives = append(alternatives, slot)
		}
	}

	return alternatives
}
