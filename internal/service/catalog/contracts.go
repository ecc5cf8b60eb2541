package catalog

import (
	"context"

	"github.com/avanturapark/booking-service/internal/domain"
)

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Delete(ctx context.Context, id int64) error
}

// ExtraRepository интерфейс репозитория дополнительных услуг
type ExtraRepository interface {
	Create(ctx context.Context, extra *domain.Extra) (*domain.Extra, error)
	GetByID(ctx context.Context, id int64) (*domain.Extra, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Extra, error)
	Update(ctx context.Context, extra *domain.Extra) (*domain.Extra, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
