package eligible_staff

import (
	"context"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (domain.Catalog, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) ([]*domain.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
