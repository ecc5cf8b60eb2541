package blockeddays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avanturapark/booking-service/internal/domain"
	blockedRepo "github.com/avanturapark/booking-service/internal/infra/storage/blockedday"
)

// BlockedDayResponse ответ с данными блокировки
type BlockedDayResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // "2026-08-29"
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedDayListResponse список блокировок
type BlockedDayListResponse struct {
	BlockedDays []*BlockedDayResponse `json:"blockedDays"`
	Total       int                   `json:"total"`
}

func fromDomain(day *domain.BlockedDay) *BlockedDayResponse {
	return &BlockedDayResponse{
		ID:        day.ID,
		Date:      day.Date.Format(domain.DateFormat),
		Reason:    day.Reason,
		CreatedAt: day.CreatedAt,
	}
}

// Service сервис заблокированных дней
type Service struct {
	repo   BlockedDayRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса заблокированных дней
func NewService(repo BlockedDayRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Block закрывает дату для публичных бронирований
func (s *Service) Block(ctx context.Context, date time.Time, reason string) (*BlockedDayResponse, error) {
	s.logger.Info("Block: date=%s, reason=%q", date.Format(domain.DateFormat), reason)

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day, err := s.repo.Create(ctx, &domain.BlockedDay{Date: date, Reason: reason})
	if err != nil {
		if errors.Is(err, blockedRepo.ErrAlreadyBlocked) {
			s.logger.Warn("Block: date %s is already blocked", date.Format(domain.DateFormat))
			return nil, ErrAlreadyBlocked
		}
		s.logger.Error("Block: repository error: %v", err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: date %s blocked, id=%d", date.Format(domain.DateFormat), day.ID)
	return fromDomain(day), nil
}

// List получает все заблокированные дни
func (s *Service) List(ctx context.Context) (*BlockedDayListResponse, error) {
	days, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*BlockedDayResponse, 0, len(days))
	for _, day := range days {
		result = append(result, fromDomain(day))
	}

	return &BlockedDayListResponse{BlockedDays: result, Total: len(result)}, nil
}

// IsBlocked проверяет, закрыта ли дата
func (s *Service) IsBlocked(ctx context.Context, date time.Time) (bool, string, error) {
	day, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedDayNotFound) {
			return false, "", nil
		}
		s.logger.Error("IsBlocked: repository error: %v", err)
		return false, "", fmt.Errorf("%w: IsBlocked - repository error: %v", ErrInternal, err)
	}

	return true, day.Reason, nil
}

// Unblock снимает блокировку
func (s *Service) Unblock(ctx context.Context, id int64) error {
	s.logger.Info("Unblock: id=%d", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedDayNotFound) {
			s.logger.Warn("Unblock: blocked day id=%d not found", id)
			return ErrBlockedDayNotFound
		}
		s.logger.Error("Unblock: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unblock: blocked day id=%d removed", id)
	return nil
}
