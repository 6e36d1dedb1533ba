package discount

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/pkg/dbmetrics"
	"github.com/m04kA/SMP-FulfilmentService/pkg/psqlbuilder"
)

// Repository репозиторий скидок провайдера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория скидок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает скидку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Discount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"title",
		"percentage",
	).
		From("discounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Discount
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.ProviderID,
		&d.Title,
		&d.Percentage,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan discount: %v", ErrScanRow, err)
	}

	return &d, nil
}

// GetActiveByProviderID получает активную скидку провайдера
// У провайдера одновременно активна не более одной скидки
func (r *Repository) GetActiveByProviderID(ctx context.Context, providerID int64) (*domain.Discount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"title",
		"percentage",
	).
		From("discounts").
		Where(squirrel.Eq{"provider_id": providerID, "active": true}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.Discount
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.ProviderID,
		&d.Title,
		&d.Percentage,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProviderID - scan discount: %v", ErrScanRow, err)
	}

	return &d, nil
}
