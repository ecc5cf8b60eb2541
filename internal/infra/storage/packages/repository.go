package packages

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/pkg/dbmetrics"
	"github.com/avanturapark/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var packageColumns = []string{
	"id",
	"name",
	"description",
	"type",
	"price",
	"duration_hours",
	"min_persons",
	"max_persons",
	"price_per_extra_person",
	"included_features",
	"includes_food",
	"food_options",
	"pricing_mode",
	"group_rate_per_person",
	"group_min_persons",
	"available_days",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пакетами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый пакет
func (r *Repository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	features, options, err := encodeLists(pkg)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("packages").
		Columns(
			"name",
			"description",
			"type",
			"price",
			"duration_hours",
			"min_persons",
			"max_persons",
			"price_per_extra_person",
			"included_features",
			"includes_food",
			"food_options",
			"pricing_mode",
			"group_rate_per_person",
			"group_min_persons",
			"available_days",
			"is_active",
		).
		Values(
			pkg.Name,
			pkg.Description,
			pkg.Type,
			pkg.Price,
			pkg.DurationHours,
			pkg.MinPersons,
			pkg.MaxPersons,
			pkg.PricePerExtraPerson,
			features,
			pkg.IncludesFood,
			options,
			pkg.PricingMode,
			pkg.GroupRatePerPerson,
			pkg.GroupMinPersons,
			int(pkg.AvailableDays),
			pkg.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pkg.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return pkg, nil
}

// GetByID получает пакет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	pkg, err := scanPackage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %v", ErrScanRow, err)
	}

	return pkg, nil
}

// List получает все пакеты; onlyActive ограничивает выборку активными
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(packageColumns...).
		From("packages").
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// Update обновляет пакет целиком
func (r *Repository) Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	features, options, err := encodeLists(pkg)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("packages").
		Set("name", pkg.Name).
		Set("description", pkg.Description).
		Set("type", pkg.Type).
		Set("price", pkg.Price).
		Set("duration_hours", pkg.DurationHours).
		Set("min_persons", pkg.MinPersons).
		Set("max_persons", pkg.MaxPersons).
		Set("price_per_extra_person", pkg.PricePerExtraPerson).
		Set("included_features", features).
		Set("includes_food", pkg.IncludesFood).
		Set("food_options", options).
		Set("pricing_mode", pkg.PricingMode).
		Set("group_rate_per_person", pkg.GroupRatePerPerson).
		Set("group_min_persons", pkg.GroupMinPersons).
		Set("available_days", int(pkg.AvailableDays)).
		Set("is_active", pkg.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pkg.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	pkg.UpdatedAt = updatedAt.Time
	return pkg, nil
}

// Delete удаляет пакет
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

func encodeLists(pkg *domain.Package) ([]byte, []byte, error) {
	features, err := json.Marshal(pkg.IncludedFeatures)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: marshal included_features: %v", ErrEncodeFields, err)
	}
	options, err := json.Marshal(pkg.FoodOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: marshal food_options: %v", ErrEncodeFields, err)
	}
	return features, options, nil
}

func scanPackage(scan func(dest ...interface{}) error) (*domain.Package, error) {
	var (
		pkg                  domain.Package
		features, options    []byte
		availableDays        int
		createdAt, updatedAt sql.NullTime
	)

	err := scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.Type,
		&pkg.Price,
		&pkg.DurationHours,
		&pkg.MinPersons,
		&pkg.MaxPersons,
		&pkg.PricePerExtraPerson,
		&features,
		&pkg.IncludesFood,
		&options,
		&pkg.PricingMode,
		&pkg.GroupRatePerPerson,
		&pkg.GroupMinPersons,
		&availableDays,
		&pkg.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(features) > 0 {
		if err := json.Unmarshal(features, &pkg.IncludedFeatures); err != nil {
			return nil, err
		}
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &pkg.FoodOptions); err != nil {
			return nil, err
		}
	}
	pkg.AvailableDays = domain.DaySet(availableDays)
	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return &pkg, nil
}
