package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avanturapark/booking-service/internal/domain"
)

var (
	// ErrValidation возвращается при некорректных полях запроса
	ErrValidation = errors.New("validation failed")
)

// Request модели

// PackageRequest запрос на создание или обновление пакета
type PackageRequest struct {
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	Type                string   `json:"type"`
	Price               float64  `json:"price"`
	DurationHours       float64  `json:"durationHours,omitempty"`
	MinPersons          int      `json:"minPersons,omitempty"`
	MaxPersons          int      `json:"maxPersons,omitempty"`
	PricePerExtraPerson float64  `json:"pricePerExtraPerson,omitempty"`
	IncludedFeatures    []string `json:"includedFeatures,omitempty"`
	IncludesFood        bool     `json:"includesFood,omitempty"`
	FoodOptions         []string `json:"foodOptions,omitempty"`
	PricingMode         string   `json:"pricingMode,omitempty"`
	GroupRatePerPerson  float64  `json:"groupRatePerPerson,omitempty"`
	GroupMinPersons     int      `json:"groupMinPersons,omitempty"`
	AvailableDays       []string `json:"availableDays,omitempty"` // пустой список = все дни
	IsActive            *bool    `json:"isActive,omitempty"`      // по умолчанию true
}

// Validate проверяет поля запроса
func (r *PackageRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if !domain.IsValidPackageType(domain.PackageType(r.Type)) {
		return fmt.Errorf("%w: unknown package type %q", ErrValidation, r.Type)
	}

	if r.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	if r.DurationHours < 0 {
		return fmt.Errorf("%w: durationHours must not be negative", ErrValidation)
	}

	if r.MinPersons < 0 || r.MaxPersons < 0 {
		return fmt.Errorf("%w: persons bounds must not be negative", ErrValidation)
	}

	if r.MinPersons > 0 && r.MaxPersons > 0 && r.MinPersons > r.MaxPersons {
		return fmt.Errorf("%w: minPersons must not exceed maxPersons", ErrValidation)
	}

	switch domain.PricingMode(r.PricingMode) {
	case "", domain.PricingStandard:
	case domain.PricingFlatGroup:
		if r.GroupRatePerPerson <= 0 || r.GroupMinPersons <= 0 {
			return fmt.Errorf("%w: flat_group pricing requires groupRatePerPerson and groupMinPersons", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown pricing mode %q", ErrValidation, r.PricingMode)
	}

	if r.IncludesFood && len(r.FoodOptions) == 0 {
		return fmt.Errorf("%w: foodOptions are required when includesFood is set", ErrValidation)
	}

	if _, err := domain.ParseDaySet(r.AvailableDays); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *PackageRequest) ToDomain() (*domain.Package, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	days, err := domain.ParseDaySet(r.AvailableDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	mode := domain.PricingMode(r.PricingMode)
	if mode == "" {
		mode = domain.PricingStandard
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.Package{
		Name:                strings.TrimSpace(r.Name),
		Description:         r.Description,
		Type:                domain.PackageType(r.Type),
		Price:               r.Price,
		DurationHours:       r.DurationHours,
		MinPersons:          r.MinPersons,
		MaxPersons:          r.MaxPersons,
		PricePerExtraPerson: r.PricePerExtraPerson,
		IncludedFeatures:    r.IncludedFeatures,
		IncludesFood:        r.IncludesFood,
		FoodOptions:         r.FoodOptions,
		PricingMode:         mode,
		GroupRatePerPerson:  r.GroupRatePerPerson,
		GroupMinPersons:     r.GroupMinPersons,
		AvailableDays:       days,
		IsActive:            isActive,
	}, nil
}

// ExtraRequest запрос на создание или обновление дополнительной услуги
type ExtraRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// Validate проверяет поля запроса
func (r *ExtraRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

// ToDomain конвертирует запрос в domain модель
func (r *ExtraRequest) ToDomain() (*domain.Extra, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.Extra{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Price:       r.Price,
		IsActive:    isActive,
	}, nil
}

// Response модели

// PackageResponse ответ с данными пакета
type PackageResponse struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Type                string    `json:"type"`
	Price               float64   `json:"price"`
	DurationHours       float64   `json:"durationHours"`
	MinPersons          int       `json:"minPersons,omitempty"`
	MaxPersons          int       `json:"maxPersons,omitempty"`
	PricePerExtraPerson float64   `json:"pricePerExtraPerson"`
	IncludedFeatures    []string  `json:"includedFeatures,omitempty"`
	IncludesFood        bool      `json:"includesFood"`
	FoodOptions         []string  `json:"foodOptions,omitempty"`
	PricingMode         string    `json:"pricingMode"`
	GroupRatePerPerson  float64   `json:"groupRatePerPerson,omitempty"`
	GroupMinPersons     int       `json:"groupMinPersons,omitempty"`
	AvailableDays       []string  `json:"availableDays"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// PackageListResponse список пакетов
type PackageListResponse struct {
	Packages []*PackageResponse `json:"packages"`
	Total    int                `json:"total"`
}

// FromDomainPackage конвертирует domain модель в response
func FromDomainPackage(p *domain.Package) *PackageResponse {
	return &PackageResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		Type:                string(p.Type),
		Price:               p.Price,
		DurationHours:       p.Duration(),
		MinPersons:          p.MinPersons,
		MaxPersons:          p.MaxPersons,
		PricePerExtraPerson: p.ExtraPersonPrice(),
		IncludedFeatures:    p.IncludedFeatures,
		IncludesFood:        p.IncludesFood,
		FoodOptions:         p.FoodOptions,
		PricingMode:         string(p.PricingMode),
		GroupRatePerPerson:  p.GroupRatePerPerson,
		GroupMinPersons:     p.GroupMinPersons,
		AvailableDays:       p.AvailableDays.Names(),
		IsActive:            p.IsActive,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// FromDomainPackageList конвертирует список domain моделей в response
func FromDomainPackageList(packages []*domain.Package) *PackageListResponse {
	result := make([]*PackageResponse, 0, len(packages))
	for _, p := range packages {
		result = append(result, FromDomainPackage(p))
	}

	return &PackageListResponse{
		Packages: result,
		Total:    len(result),
	}
}

// ExtraResponse ответ с данными дополнительной услуги
type ExtraResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExtraListResponse список дополнительных услуг
type ExtraListResponse struct {
	Extras []*ExtraResponse `json:"extras"`
	Total  int              `json:"total"`
}

// FromDomainExtra конвертирует domain модель в response
func FromDomainExtra(e *domain.Extra) *ExtraResponse {
	return &ExtraResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// FromDomainExtraList конвертирует список domain моделей в response
func FromDomainExtraList(extras []*domain.Extra) *ExtraListResponse {
	result := make([]*ExtraResponse, 0, len(extras))
	for _, e := range extras {
		result = append(result, FromDomainExtra(e))
	}

	return &ExtraListResponse{
		Extras: result,
		Total:  len(result),
	}
}
