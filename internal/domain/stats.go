package domain

import "github.com/m04kA/SMP-FulfilmentService/pkg/money"

// QueueStats агрегированная статистика очереди бронирований провайдера.
// Производная структура: инкрементальное поддержание - оптимизация,
// полный пересчёт по коллекции бронирований всегда даёт тот же результат.
//
// Инвариант: сумма счётчиков по статусам равна общему числу бронирований.
type QueueStats struct {
	StatusCounts  map[BookingStatus]int
	TodayRevenue  money.Money
	WeeklyRevenue money.Money
}

// NewQueueStats создает пустую статистику с нулевыми счётчиками по всем статусам
func NewQueueStats() QueueStats {
	counts := make(map[BookingStatus]int, len(AllStatuses))
	for _, status := range AllStatuses {
		counts[status] = 0
	}
	return QueueStats{StatusCounts: counts}
}

// Total возвращает общее число бронирований
func (s QueueStats) Total() int {
	total := 0
	for _, count := range s.StatusCounts {
		total += count
	}
	return total
}

// Clone возвращает глубокую копию статистики
func (s QueueStats) Clone() QueueStats {
	counts := make(map[BookingStatus]int, len(s.StatusCounts))
	for status, count := range s.StatusCounts {
		counts[status] = count
	}
	return QueueStats{
		StatusCounts:  counts,
		TodayRevenue:  s.TodayRevenue,
		WeeklyRevenue: s.WeeklyRevenue,
	}
}

// Equal возвращает true при полном совпадении статистик
func (s QueueStats) Equal(other QueueStats) bool {
	if s.TodayRevenue != other.TodayRevenue || s.WeeklyRevenue != other.WeeklyRevenue {
		return false
	}
	for _, status := range AllStatuses {
		if s.StatusCounts[status] != other.StatusCounts[status] {
			return false
		}
	}
	return true
}
