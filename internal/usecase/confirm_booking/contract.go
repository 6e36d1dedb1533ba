package confirm_booking

import (
	"context"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (domain.Catalog, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) ([]*domain.StaffMember, error)
}

// DiscountRepository интерфейс репозитория скидок
type DiscountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Discount, error)
}

// StatsApplier принимает созданное бронирование в агрегат статистики очереди
type StatsApplier interface {
	ApplyCreate(booking *domain.Booking)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
