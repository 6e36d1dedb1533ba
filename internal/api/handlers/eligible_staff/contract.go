package eligible_staff

import (
	"context"

	usecase "github.com/m04kA/SMP-FulfilmentService/internal/usecase/eligible_staff"
)

type EligibleStaffUseCase interface {
	Execute(ctx context.Context, req usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
