package get_queue_stats

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// QueueStatsResponse модель статистики очереди для ответа API
type QueueStatsResponse struct {
	StatusCounts  map[string]int `json:"status_counts"`
	Total         int            `json:"total"`
	TodayRevenue  int64          `json:"today_revenue"`
	WeeklyRevenue int64          `json:"weekly_revenue"`
}

// FromDomainStats конвертирует доменную статистику в модель ответа
func FromDomainStats(stats domain.QueueStats) *QueueStatsResponse {
	counts := make(map[string]int, len(stats.StatusCounts))
	for status, count := range stats.StatusCounts {
		counts[string(status)] = count
	}
	return &QueueStatsResponse{
		StatusCounts:  counts,
		Total:         stats.Total(),
		TodayRevenue:  stats.TodayRevenue.Int64(),
		WeeklyRevenue: stats.WeeklyRevenue.Int64(),
	}
}
