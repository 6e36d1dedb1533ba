package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMP-FulfilmentService/internal/service/bookings/models"
	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
	"github.com/m04kA/SMP-FulfilmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type memBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newMemBookingRepo(bookings ...*domain.Booking) *memBookingRepo {
	repo := &memBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		copied := *b
		repo.bookings[b.ID] = &copied
	}
	return repo
}

func (r *memBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) GetByProviderID(_ context.Context, providerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.ProviderID != providerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *memBookingRepo) UpdateStatusFrom(_ context.Context, id int64, from, to domain.BookingStatus, rejectReason *string, completedAt *time.Time) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	if rejectReason != nil {
		b.RejectReason = rejectReason
	}
	if completedAt != nil {
		b.CompletedAt = completedAt
	}
	return nil
}

type recordedTransition struct {
	bookingID int64
	from, to  domain.BookingStatus
}

type stubStats struct {
	transitions []recordedTransition
}

func (s *stubStats) ApplyTransition(b *domain.Booking, from, to domain.BookingStatus) {
	s.transitions = append(s.transitions, recordedTransition{bookingID: b.ID, from: from, to: to})
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		ProviderID: 10,
		CustomerID: 5,
		Status:     domain.StatusPending,
		Amount:     money.Money(58),
	}
}

func newTestService(bookings ...*domain.Booking) (*Service, *memBookingRepo, *stubStats) {
	repo := newMemBookingRepo(bookings...)
	stats := &stubStats{}
	return NewService(repo, stats, nil, nopLogger{}), repo, stats
}

func TestAccept_PendingBooking(t *testing.T) {
	svc, repo, stats := newTestService(pendingBooking())

	resp, err := svc.Accept(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
	require.Len(t, stats.transitions, 1)
	assert.Equal(t, domain.StatusPending, stats.transitions[0].from)
	assert.Equal(t, domain.StatusConfirmed, stats.transitions[0].to)
}

func TestAccept_WrongProvider(t *testing.T) {
	svc, _, stats := newTestService(pendingBooking())

	_, err := svc.Accept(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, stats.transitions)
}

func TestAccept_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Accept(context.Background(), 404, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestTransition_NotFoundIsAlsoInvalidTransition(t *testing.T) {
	svc, _, stats := newTestService()

	// Отсутствующее бронирование - невозможный переход с причиной "не найдено"
	_, err := svc.Accept(context.Background(), 404, 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.ExternalTransition(context.Background(), 404, 10, "in_progress", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, stats.transitions)
}

func TestReject_StoresReason(t *testing.T) {
	svc, repo, stats := newTestService(pendingBooking())

	resp, err := svc.Reject(context.Background(), 1, 10, ptr.Ptr("  fully booked today  "))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, repo.bookings[1].RejectReason)
	assert.Equal(t, "fully booked today", *repo.bookings[1].RejectReason)
	require.Len(t, stats.transitions, 1)
	assert.Equal(t, domain.StatusCancelled, stats.transitions[0].to)
}

func TestReject_EmptyReasonDropped(t *testing.T) {
	svc, repo, _ := newTestService(pendingBooking())

	_, err := svc.Reject(context.Background(), 1, 10, ptr.Ptr("   "))
	require.NoError(t, err)
	assert.Nil(t, repo.bookings[1].RejectReason)
}

func TestComplete_StampsCompletedAt(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusConfirmed
	svc, repo, _ := newTestService(b)

	resp, err := svc.Complete(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	require.NotNil(t, repo.bookings[1].CompletedAt)
	assert.WithinDuration(t, time.Now().UTC(), *repo.bookings[1].CompletedAt, time.Minute)
}

func TestComplete_PendingIsInvalid(t *testing.T) {
	svc, repo, stats := newTestService(pendingBooking())

	_, err := svc.Complete(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status)
	assert.Empty(t, stats.transitions)
}

func TestComplete_TwiceIsInvalidAndStatsUntouched(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusConfirmed
	svc, _, stats := newTestService(b)

	_, err := svc.Complete(context.Background(), 1, 10)
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, stats.transitions, 1)
}

func TestExternalTransition_InProgress(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusConfirmed
	svc, repo, _ := newTestService(b)

	resp, err := svc.ExternalTransition(context.Background(), 1, 10, "in_progress", nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusInProgress), resp.Status)
	assert.Equal(t, domain.StatusInProgress, repo.bookings[1].Status)
}

func TestExternalTransition_RejectsLifecycleStatuses(t *testing.T) {
	svc, _, _ := newTestService(pendingBooking())

	for _, status := range []string{"confirmed", "completed", "cancelled", "nonsense"} {
		_, err := svc.ExternalTransition(context.Background(), 1, 10, status, nil)
		assert.ErrorIs(t, err, ErrInvalidInput, "status %s", status)
	}
}

func TestTransition_ConcurrentStoreConflict(t *testing.T) {
	svc, repo, stats := newTestService(pendingBooking())

	// Статус в хранилище уходит из-под сервиса между чтением и записью
	repo.bookings[1].Status = domain.StatusCancelled

	_, err := svc.Accept(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, stats.transitions)
}

func TestGetByID_CustomerAndProviderAccess(t *testing.T) {
	svc, _, _ := newTestService(pendingBooking())

	_, err := svc.GetByID(context.Background(), 1, 5)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, 10)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, 77)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetProviderBookings_FilterByStatus(t *testing.T) {
	confirmed := pendingBooking()
	confirmed.ID = 2
	confirmed.Status = domain.StatusConfirmed
	svc, _, _ := newTestService(pendingBooking(), confirmed)

	status := "confirmed"
	resp, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		ProviderID: 10,
		UserID:     10,
		Status:     &status,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}
