package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/pkg/dbmetrics"
	"github.com/m04kA/SMP-FulfilmentService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг провайдера
// Каталог read-only для движка бронирований: репозиторий только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID загружает полный каталог провайдера:
// услуги, их опции и явные назначения сотрудников на услуги
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (domain.Catalog, error) {
	services, err := r.fetchServices(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if len(services) == 0 {
		return domain.Catalog{}, nil
	}

	serviceIDs := make([]int64, 0, len(services))
	byID := make(map[int64]*domain.Service, len(services))
	for _, svc := range services {
		serviceIDs = append(serviceIDs, svc.ID)
		byID[svc.ID] = svc
	}

	if err := r.attachOptions(ctx, serviceIDs, byID); err != nil {
		return nil, err
	}

	if err := r.attachStaffAssignments(ctx, serviceIDs, byID); err != nil {
		return nil, err
	}

	return services, nil
}

// fetchServices загружает услуги провайдера
func (r *Repository) fetchServices(ctx context.Context, providerID int64) (domain.Catalog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"name",
		"description",
		"base_price",
		"base_duration_minutes",
	).
		From("services").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: fetchServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: fetchServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make(domain.Catalog, 0)
	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(
			&svc.ID,
			&svc.ProviderID,
			&svc.Name,
			&svc.Description,
			&svc.BasePrice,
			&svc.BaseDurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: fetchServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: fetchServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// attachOptions загружает опции услуг и прикрепляет их к услугам
func (r *Repository) attachOptions(ctx context.Context, serviceIDs []int64, byID map[int64]*domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"name",
		"description",
		"price",
		"duration_minutes",
		"sort_order",
		"active",
	).
		From("service_options").
		Where(squirrel.Eq{"service_id": serviceIDs}).
		OrderBy("service_id ASC, sort_order ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachOptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachOptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var opt domain.ServiceOption
		err := rows.Scan(
			&opt.ID,
			&opt.ServiceID,
			&opt.Name,
			&opt.Description,
			&opt.Price,
			&opt.DurationMinutes,
			&opt.SortOrder,
			&opt.Active,
		)
		if err != nil {
			return fmt.Errorf("%w: attachOptions - scan row: %v", ErrScanRow, err)
		}

		if svc, ok := byID[opt.ServiceID]; ok {
			svc.Options = append(svc.Options, opt)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachOptions - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// attachStaffAssignments загружает явные назначения сотрудников на услуги
// Услуга без назначений остаётся с пустым списком - это валидное состояние
// "назначения не сконфигурированы"
func (r *Repository) attachStaffAssignments(ctx context.Context, serviceIDs []int64, byID map[int64]*domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"service_id",
		"staff_id",
	).
		From("service_staff").
		Where(squirrel.Eq{"service_id": serviceIDs}).
		OrderBy("service_id ASC, staff_id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachStaffAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachStaffAssignments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var serviceID int64
		var staffID domain.StaffID

		if err := rows.Scan(&serviceID, &staffID); err != nil {
			return fmt.Errorf("%w: attachStaffAssignments - scan row: %v", ErrScanRow, err)
		}

		if svc, ok := byID[serviceID]; ok {
			svc.AssignedStaffIDs = append(svc.AssignedStaffIDs, staffID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachStaffAssignments - rows error: %v", ErrScanRow, err)
	}

	return nil
}
