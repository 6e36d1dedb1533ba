package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByProviderID(ctx context.Context, providerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus, rejectReason *string, completedAt *time.Time) error
}

// StatsApplier применяет переход статуса к агрегату статистики очереди
type StatsApplier interface {
	ApplyTransition(booking *domain.Booking, from, to domain.BookingStatus)
}

// TransitionRecorder записывает метрику перехода статуса
type TransitionRecorder interface {
	ObserveBookingTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
