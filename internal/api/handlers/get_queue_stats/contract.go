package get_queue_stats

import (
	"context"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

type StatsService interface {
	GetStats(ctx context.Context, providerID int64, recompute bool) (domain.QueueStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
