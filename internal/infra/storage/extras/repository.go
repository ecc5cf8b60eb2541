package extras

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/pkg/dbmetrics"
	"github.com/avanturapark/booking-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var extraColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с дополнительными услугами (extras)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория extras
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую extra
func (r *Repository) Create(ctx context.Context, extra *domain.Extra) (*domain.Extra, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("extras").
		Columns("name", "description", "price", "is_active").
		Values(extra.Name, extra.Description, extra.Price, extra.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&extra.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	extra.CreatedAt = createdAt.Time
	extra.UpdatedAt = updatedAt.Time

	return extra, nil
}

// GetByID получает extra по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Extra, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(extraColumns...).
		From("extras").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var extra domain.Extra
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&extra.ID,
		&extra.Name,
		&extra.Description,
		&extra.Price,
		&extra.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrExtraNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan extra: %v", ErrScanRow, err)
	}

	extra.CreatedAt = createdAt.Time
	extra.UpdatedAt = updatedAt.Time

	return &extra, nil
}

// List получает все extras; onlyActive ограничивает выборку активными
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Extra, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(extraColumns...).
		From("extras").
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

	result := make([]*domain.Extra, 0)
	for rows.Next() {
		var extra domain.Extra
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&extra.ID,
			&extra.Name,
			&extra.Description,
			&extra.Price,
			&extra.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		extra.CreatedAt = createdAt.Time
		extra.UpdatedAt = updatedAt.Time
		result = append(result, &extra)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет extra
func (r *Repository) Update(ctx context.Context, extra *domain.Extra) (*domain.Extra, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("extras").
		Set("name", extra.Name).
		Set("description", extra.Description).
		Set("price", extra.Price).
		Set("is_active", extra.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": extra.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrExtraNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	extra.UpdatedAt = updatedAt.Time
	return extra, nil
}

// Delete удаляет extra
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("extras").
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
		return ErrExtraNotFound
	}

	return nil
}
