package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avanturapark/booking-service/internal/availability"
	"github.com/avanturapark/booking-service/internal/domain"
	extraRepo "github.com/avanturapark/booking-service/internal/infra/storage/extras"
	packageRepo "github.com/avanturapark/booking-service/internal/infra/storage/packages"
	"github.com/avanturapark/booking-service/internal/service/catalog/models"
)

// Service сервис каталога: пакеты и дополнительные услуги
type Service struct {
	packageRepo PackageRepository
	extraRepo   ExtraRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(packageRepo PackageRepository, extraRepo ExtraRepository, logger Logger) *Service {
	return &Service{
		packageRepo: packageRepo,
		extraRepo:   extraRepo,
		logger:      logger,
	}
}

// Пакеты

// CreatePackage создает новый пакет
func (s *Service) CreatePackage(ctx context.Context, req *models.PackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("CreatePackage: name=%q, type=%s", req.Name, req.Type)

	pkg, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreatePackage: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		s.logger.Error("CreatePackage: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePackage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePackage: created package id=%d", created.ID)
	return models.FromDomainPackage(created), nil
}

// GetPackage получает пакет по ID
func (s *Service) GetPackage(ctx context.Context, id int64) (*models.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("GetPackage: package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetPackage: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetPackage - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPackage(pkg), nil
}

// ListPackages получает все пакеты. Для админки включаются и неактивные.
func (s *Service) ListPackages(ctx context.Context, onlyActive bool) (*models.PackageListResponse, error) {
	packages, err := s.packageRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListPackages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPackages - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPackageList(packages), nil
}

// ListPackagesForDate получает активные пакеты, предлагаемые в указанную дату.
// Используется публичной формой бронирования.
func (s *Service) ListPackagesForDate(ctx context.Context, date time.Time) (*models.PackageListResponse, error) {
	s.logger.Info("ListPackagesForDate: date=%s", date.Format(domain.DateFormat))

	packages, err := s.packageRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListPackagesForDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPackagesForDate - repository error: %v", ErrInternal, err)
	}

	eligible := availability.EligiblePackages(date, packages)
	s.logger.Info("ListPackagesForDate: %d of %d packages offered on %s", len(eligible), len(packages), date.Weekday())

	return models.FromDomainPackageList(eligible), nil
}

// UpdatePackage полностью обновляет пакет
func (s *Service) UpdatePackage(ctx context.Context, id int64, req *models.PackageRequest) (*models.PackageResponse, error) {
	s.logger.Info("UpdatePackage: id=%d", id)

	pkg, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdatePackage: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	pkg.ID = id

	updated, err := s.packageRepo.Update(ctx, pkg)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("UpdatePackage: package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("UpdatePackage: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePackage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePackage: package id=%d updated", id)
	return models.FromDomainPackage(updated), nil
}

// DeletePackage удаляет пакет. Существующие бронирования не затрагиваются:
// они хранят имя и цену пакета по значению.
func (s *Service) DeletePackage(ctx context.Context, id int64) error {
	s.logger.Info("DeletePackage: id=%d", id)

	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("DeletePackage: package id=%d not found", id)
			return ErrPackageNotFound
		}
		s.logger.Error("DeletePackage: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeletePackage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeletePackage: package id=%d deleted", id)
	return nil
}

// Дополнительные услуги

// CreateExtra создает новую дополнительную услугу
func (s *Service) CreateExtra(ctx context.Context, req *models.ExtraRequest) (*models.ExtraResponse, error) {
	s.logger.Info("CreateExtra: name=%q", req.Name)

	extra, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateExtra: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.extraRepo.Create(ctx, extra)
	if err != nil {
		s.logger.Error("CreateExtra: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateExtra - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateExtra: created extra id=%d", created.ID)
	return models.FromDomainExtra(created), nil
}

// GetExtra получает дополнительную услугу по ID
func (s *Service) GetExtra(ctx context.Context, id int64) (*models.ExtraResponse, error) {
	extra, err := s.extraRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, extraRepo.ErrExtraNotFound) {
			s.logger.Warn("GetExtra: extra id=%d not found", id)
			return nil, ErrExtraNotFound
		}
		s.logger.Error("GetExtra: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetExtra - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainExtra(extra), nil
}

// ListExtras получает все дополнительные услуги
func (s *Service) ListExtras(ctx context.Context, onlyActive bool) (*models.ExtraListResponse, error) {
	extras, err := s.extraRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListExtras: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListExtras - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainExtraList(extras), nil
}

// UpdateExtra полностью обновляет дополнительную услугу
func (s *Service) UpdateExtra(ctx context.Context, id int64, req *models.ExtraRequest) (*models.ExtraResponse, error) {
	s.logger.Info("UpdateExtra: id=%d", id)

	extra, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateExtra: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	extra.ID = id

	updated, err := s.extraRepo.Update(ctx, extra)
	if err != nil {
		if errors.Is(err, extraRepo.ErrExtraNotFound) {
			s.logger.Warn("UpdateExtra: extra id=%d not found", id)
			return nil, ErrExtraNotFound
		}
		s.logger.Error("UpdateExtra: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateExtra - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateExtra: extra id=%d updated", id)
	return models.FromDomainExtra(updated), nil
}

// DeleteExtra удаляет дополнительную услугу
func (s *Service) DeleteExtra(ctx context.Context, id int64) error {
	s.logger.Info("DeleteExtra: id=%d", id)

	if err := s.extraRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, extraRepo.ErrExtraNotFound) {
			s.logger.Warn("DeleteExtra: extra id=%d not found", id)
			return ErrExtraNotFound
		}
		s.logger.Error("DeleteExtra: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteExtra - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteExtra: extra id=%d deleted", id)
	return nil
}
