package blockeddays

import (
	"context"
	"time"

	"github.com/avanturapark/booking-service/internal/domain"
)

// BlockedDayRepository интерфейс репозитория заблокированных дней
type BlockedDayRepository interface {
	Create(ctx context.Context, day *domain.BlockedDay) (*domain.BlockedDay, error)
	List(ctx context.Context) ([]*domain.BlockedDay, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.BlockedDay, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
