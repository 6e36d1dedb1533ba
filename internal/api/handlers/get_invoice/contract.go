package get_invoice

import (
	"context"
)

type InvoiceService interface {
	Generate(ctx context.Context, bookingID int64) ([]byte, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
