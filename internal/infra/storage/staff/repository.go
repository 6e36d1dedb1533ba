package staff

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/pkg/dbmetrics"
	"github.com/m04kA/SMP-FulfilmentService/pkg/psqlbuilder"
)

// Repository репозиторий сотрудников провайдера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID загружает сотрудников провайдера с их назначениями на услуги.
// Синтетический сотрудник "Любой свободный" в хранилище не существует -
// его добавляет вызывающая сторона.
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"display_name",
	).
		From("staff_members").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("display_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	byID := make(map[domain.StaffID]*domain.StaffMember)

	for rows.Next() {
		var member domain.StaffMember
		if err := rows.Scan(&member.ID, &member.ProviderID, &member.DisplayName); err != nil {
			return nil, fmt.Errorf("%w: GetByProviderID - scan row: %v", ErrScanRow, err)
		}
		members = append(members, &member)
		byID[member.ID] = &member
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - rows error: %v", ErrScanRow, err)
	}

	if len(members) == 0 {
		return members, nil
	}

	if err := r.attachAssignments(ctx, byID); err != nil {
		return nil, err
	}

	return members, nil
}

// attachAssignments загружает назначения сотрудник -> услуга
func (r *Repository) attachAssignments(ctx context.Context, byID map[domain.StaffID]*domain.StaffMember) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	staffIDs := make([]string, 0, len(byID))
	for id := range byID {
		staffIDs = append(staffIDs, string(id))
	}

	query, args, err := psqlbuilder.Select(
		"staff_id",
		"service_id",
	).
		From("service_staff").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		OrderBy("staff_id ASC, service_id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachAssignments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var staffID domain.StaffID
		var serviceID int64

		if err := rows.Scan(&staffID, &serviceID); err != nil {
			return fmt.Errorf("%w: attachAssignments - scan row: %v", ErrScanRow, err)
		}

		if member, ok := byID[staffID]; ok {
			member.AssignedServiceIDs = append(member.AssignedServiceIDs, serviceID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachAssignments - rows error: %v", ErrScanRow, err)
	}

	return nil
}
