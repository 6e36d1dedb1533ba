package send_invoice

import (
	"context"

	"github.com/m04kA/SMP-FulfilmentService/internal/service/invoices"
)

type InvoiceService interface {
	Send(ctx context.Context, bookingID int64) (*invoices.SendResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
