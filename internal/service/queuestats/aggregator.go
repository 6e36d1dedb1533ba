package queuestats

import (
	"sync"
	"time"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
)

// revenueEntry завершённое бронирование в терминах выручки
type revenueEntry struct {
	amount      money.Money
	completedAt time.Time
}

// providerStats инкрементальное состояние очереди одного провайдера
type providerStats struct {
	counts    map[domain.BookingStatus]int
	completed []revenueEntry
}

func newProviderStats() *providerStats {
	counts := make(map[domain.BookingStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}
	return &providerStats{counts: counts}
}

// Aggregator поддерживает статистику очередей по провайдерам инкрементально.
// Выручка хранится записями (сумма, момент завершения), а окна "сегодня" и
// "эта неделя" считаются в момент чтения: инкрементальное значение всегда
// совпадает с полным пересчётом по тем же бронированиям
type Aggregator struct {
	mu        sync.RWMutex
	providers map[int64]*providerStats
	now       func() time.Time
}

// NewAggregator создает новый агрегатор статистики
func NewAggregator() *Aggregator {
	return &Aggregator{
		providers: map[int64]*providerStats{},
		now:       time.Now,
	}
}

// ApplyCreate учитывает созданное бронирование
func (a *Aggregator) ApplyCreate(booking *domain.Booking) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := a.statsFor(booking.ProviderID)
	stats.counts[booking.Status]++
	if booking.Status == domain.StatusCompleted && booking.CompletedAt != nil {
		stats.completed = append(stats.completed, revenueEntry{
			amount:      booking.Amount,
			completedAt: *booking.CompletedAt,
		})
	}
}

// ApplyTransition учитывает переход статуса бронирования.
// Вызывается только после успешной записи перехода в хранилище
func (a *Aggregator) ApplyTransition(booking *domain.Booking, from, to domain.BookingStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := a.statsFor(booking.ProviderID)
	if stats.counts[from] > 0 {
		stats.counts[from]--
	}
	stats.counts[to]++

	if to == domain.StatusCompleted && booking.CompletedAt != nil {
		stats.completed = append(stats.completed, revenueEntry{
			amount:      booking.Amount,
			completedAt: *booking.CompletedAt,
		})
	}
}

// Recompute заменяет состояние провайдера полным пересчётом по коллекции
func (a *Aggregator) Recompute(providerID int64, bookings []*domain.Booking) {
	rebuilt := newProviderStats()
	for _, b := range bookings {
		rebuilt.counts[b.Status]++
		if b.Status == domain.StatusCompleted && b.CompletedAt != nil {
			rebuilt.completed = append(rebuilt.completed, revenueEntry{
				amount:      b.Amount,
				completedAt: *b.CompletedAt,
			})
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.providers[providerID] = rebuilt
}

// Snapshot возвращает статистику провайдера на текущий момент
func (a *Aggregator) Snapshot(providerID int64) domain.QueueStats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	result := domain.NewQueueStats()
	stats, ok := a.providers[providerID]
	if !ok {
		return result
	}

	for status, count := range stats.counts {
		result.StatusCounts[status] = count
	}

	now := a.now().UTC()
	for _, entry := range stats.completed {
		completedAt := entry.completedAt.UTC()
		if sameDay(completedAt, now) {
			result.TodayRevenue += entry.amount
		}
		if sameISOWeek(completedAt, now) {
			result.WeeklyRevenue += entry.amount
		}
	}

	return result
}

// HasProvider возвращает true, если провайдер уже загружен в агрегатор
func (a *Aggregator) HasProvider(providerID int64) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.providers[providerID]
	return ok
}

// statsFor возвращает состояние провайдера, создавая пустое при первом обращении.
// Вызывается под write-локом
func (a *Aggregator) statsFor(providerID int64) *providerStats {
	stats, ok := a.providers[providerID]
	if !ok {
		stats = newProviderStats()
		a.providers[providerID] = stats
	}
	return stats
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}
