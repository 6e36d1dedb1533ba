package queuestats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
)

// Среда недели, чтобы "сегодня" и "эта неделя" не пересекали границы
var testNow = time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

func newTestAggregator() *Aggregator {
	agg := NewAggregator()
	agg.now = func() time.Time { return testNow }
	return agg
}

func booking(id int64, status domain.BookingStatus, amount money.Money) *domain.Booking {
	return &domain.Booking{ID: id, ProviderID: 10, Status: status, Amount: amount}
}

func TestSnapshot_UnknownProviderIsZero(t *testing.T) {
	agg := newTestAggregator()

	stats := agg.Snapshot(10)
	assert.Equal(t, 0, stats.Total())
	assert.Equal(t, money.Money(0), stats.TodayRevenue)
	assert.Equal(t, money.Money(0), stats.WeeklyRevenue)
}

func TestApplyCreate_CountsPending(t *testing.T) {
	agg := newTestAggregator()

	agg.ApplyCreate(booking(1, domain.StatusPending, 58))
	agg.ApplyCreate(booking(2, domain.StatusPending, 46))

	stats := agg.Snapshot(10)
	assert.Equal(t, 2, stats.StatusCounts[domain.StatusPending])
	assert.Equal(t, 2, stats.Total())
}

func TestApplyTransition_MovesCount(t *testing.T) {
	agg := newTestAggregator()
	b := booking(1, domain.StatusPending, 58)
	agg.ApplyCreate(b)

	agg.ApplyTransition(b, domain.StatusPending, domain.StatusCancelled)

	stats := agg.Snapshot(10)
	assert.Equal(t, 0, stats.StatusCounts[domain.StatusPending])
	assert.Equal(t, 1, stats.StatusCounts[domain.StatusCancelled])
	assert.Equal(t, 1, stats.Total())
}

func TestApplyTransition_CompletedAddsRevenue(t *testing.T) {
	agg := newTestAggregator()
	b := booking(1, domain.StatusConfirmed, 58)
	agg.ApplyCreate(b)

	completedAt := testNow.Add(-time.Hour)
	b.CompletedAt = &completedAt
	agg.ApplyTransition(b, domain.StatusConfirmed, domain.StatusCompleted)

	stats := agg.Snapshot(10)
	assert.Equal(t, money.Money(58), stats.TodayRevenue)
	assert.Equal(t, money.Money(58), stats.WeeklyRevenue)
}

func TestSnapshot_RevenueWindows(t *testing.T) {
	agg := newTestAggregator()

	add := func(id int64, amount money.Money, completedAt time.Time) {
		b := booking(id, domain.StatusConfirmed, amount)
		agg.ApplyCreate(b)
		b.CompletedAt = &completedAt
		agg.ApplyTransition(b, domain.StatusConfirmed, domain.StatusCompleted)
	}

	add(1, 100, testNow.Add(-time.Hour))        // сегодня
	add(2, 40, testNow.AddDate(0, 0, -2))       // эта неделя, не сегодня
	add(3, 7, testNow.AddDate(0, 0, -7))        // прошлая неделя
	add(4, 3, testNow.AddDate(0, -1, 0))        // прошлый месяц

	stats := agg.Snapshot(10)
	assert.Equal(t, money.Money(100), stats.TodayRevenue)
	assert.Equal(t, money.Money(140), stats.WeeklyRevenue)
	assert.Equal(t, 4, stats.StatusCounts[domain.StatusCompleted])
}

func TestRecompute_MatchesIncremental(t *testing.T) {
	agg := newTestAggregator()
	completedAt := testNow.Add(-2 * time.Hour)

	// Инкрементальный путь: создание и переходы
	b1 := booking(1, domain.StatusPending, 58)
	b2 := booking(2, domain.StatusPending, 46)
	b3 := booking(3, domain.StatusPending, 30)
	agg.ApplyCreate(b1)
	agg.ApplyCreate(b2)
	agg.ApplyCreate(b3)

	agg.ApplyTransition(b1, domain.StatusPending, domain.StatusConfirmed)
	b1.Status = domain.StatusConfirmed
	b1.CompletedAt = &completedAt
	agg.ApplyTransition(b1, domain.StatusConfirmed, domain.StatusCompleted)
	b1.Status = domain.StatusCompleted

	agg.ApplyTransition(b2, domain.StatusPending, domain.StatusCancelled)
	b2.Status = domain.StatusCancelled

	incremental := agg.Snapshot(10)

	// Полный пересчёт по итоговой коллекции
	fresh := newTestAggregator()
	fresh.Recompute(10, []*domain.Booking{b1, b2, b3})
	recomputed := fresh.Snapshot(10)

	assert.True(t, incremental.Equal(recomputed),
		"incremental %+v != recomputed %+v", incremental, recomputed)
}

func TestRejectDecrementsPendingIncrementsCancelled(t *testing.T) {
	agg := newTestAggregator()
	b := booking(1, domain.StatusPending, 58)
	agg.ApplyCreate(b)

	before := agg.Snapshot(10)
	require.Equal(t, 1, before.StatusCounts[domain.StatusPending])

	agg.ApplyTransition(b, domain.StatusPending, domain.StatusCancelled)
	b.Status = domain.StatusCancelled

	after := agg.Snapshot(10)
	assert.Equal(t, 0, after.StatusCounts[domain.StatusPending])
	assert.Equal(t, 1, after.StatusCounts[domain.StatusCancelled])

	fresh := newTestAggregator()
	fresh.Recompute(10, []*domain.Booking{b})
	assert.True(t, after.Equal(fresh.Snapshot(10)))
}

func TestAggregator_ProvidersAreIsolated(t *testing.T) {
	agg := newTestAggregator()
	agg.ApplyCreate(booking(1, domain.StatusPending, 58))

	other := &domain.Booking{ID: 2, ProviderID: 99, Status: domain.StatusPending, Amount: 10}
	agg.ApplyCreate(other)

	assert.Equal(t, 1, agg.Snapshot(10).Total())
	assert.Equal(t, 1, agg.Snapshot(99).Total())
}
