package invoices

import (
	"context"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/internal/integrations/notifyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// DispatchRepository интерфейс реестра отправленных инвойсов
type DispatchRepository interface {
	Add(ctx context.Context, bookingID int64) error
	Contains(ctx context.Context, bookingID int64) (bool, error)
	LoadAll(ctx context.Context) (map[int64]struct{}, error)
}

// DeliveryClient интерфейс клиента доставки инвойсов
type DeliveryClient interface {
	SendInvoice(ctx context.Context, delivery *notifyservice.InvoiceDelivery) error
}

// SendRecorder записывает метрику отправки инвойса
type SendRecorder interface {
	ObserveInvoiceSent()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
