package quote_booking

import (
	"context"

	usecase "github.com/m04kA/SMP-FulfilmentService/internal/usecase/quote_booking"
)

type QuoteUseCase interface {
	Execute(ctx context.Context, req usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
