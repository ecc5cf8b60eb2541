package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avanturapark/booking-service/internal/domain"
	bookingRepo "github.com/avanturapark/booking-service/internal/infra/storage/booking"
	"github.com/avanturapark/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями персонала.
// Создание идет через usecase create_booking, здесь живет остальной
// жизненный цикл: просмотр, подтверждение, отклонение, удаление.
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - Заявки на подтверждение: Status = "pending"
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Включая отменённые: IncludeCancelled = true
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v, includeCancelled=%v", req.Status, req.IncludeCancelled)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(list))
	return models.FromDomainBookingList(list), nil
}

// Confirm подтверждает заявку на бронирование.
// После подтверждения в фоне создается событие календаря и клиенту
// уходит письмо с подтверждением.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", id)

	booking, err := s.getBooking(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d has status=%s, cannot confirm", id, booking.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotConfirm, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		s.logger.Error("Confirm: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	s.notifier.BookingConfirmed(booking)

	s.logger.Info("Confirm: booking id=%d confirmed", id)
	return models.FromDomainBooking(booking), nil
}

// Reject отклоняет заявку или отменяет подтвержденное бронирование.
// Созданное событие календаря удаляется в фоне.
func (s *Service) Reject(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Reject: rejecting booking id=%d", id)

	booking, err := s.getBooking(ctx, "Reject", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Reject: booking id=%d has status=%s, cannot cancel", id, booking.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Reject: failed to update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	s.notifier.BookingCancelled(booking)

	s.logger.Info("Reject: booking id=%d cancelled", id)
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus переводит бронирование в указанный статус с проверкой
// жизненного цикла
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d, status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if booking.Status == status {
		// Идемпотентный повтор
		return models.FromDomainBooking(booking), nil
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: booking id=%d: %s -> %s not allowed", id, booking.Status, status)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = status

	switch status {
	case domain.StatusConfirmed:
		s.notifier.BookingConfirmed(booking)
	case domain.StatusCancelled:
		s.notifier.BookingCancelled(booking)
	}

	s.logger.Info("UpdateStatus: booking id=%d now %s", id, status)
	return models.FromDomainBooking(booking), nil
}

// Delete безвозвратно удаляет бронирование.
// Используется для очистки тестовых и ошибочных записей; обычный
// жизненный цикл заканчивается статусами cancelled или completed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	booking, err := s.getBooking(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: failed to delete booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Убираем след в календаре, если он был
	s.notifier.BookingCancelled(booking)

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
