package invoices

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMP-FulfilmentService/internal/integrations/notifyservice"
	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (s *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

type memDispatchRepo struct {
	record map[int64]struct{}
	adds   int
}

func newMemDispatchRepo() *memDispatchRepo {
	return &memDispatchRepo{record: map[int64]struct{}{}}
}

func (r *memDispatchRepo) Add(_ context.Context, bookingID int64) error {
	r.record[bookingID] = struct{}{}
	r.adds++
	return nil
}

func (r *memDispatchRepo) Contains(_ context.Context, bookingID int64) (bool, error) {
	_, ok := r.record[bookingID]
	return ok, nil
}

func (r *memDispatchRepo) LoadAll(_ context.Context) (map[int64]struct{}, error) {
	copied := map[int64]struct{}{}
	for id := range r.record {
		copied[id] = struct{}{}
	}
	return copied, nil
}

type stubDelivery struct {
	deliveries []*notifyservice.InvoiceDelivery
	err        error
}

func (s *stubDelivery) SendInvoice(_ context.Context, d *notifyservice.InvoiceDelivery) error {
	if s.err != nil {
		return s.err
	}
	s.deliveries = append(s.deliveries, d)
	return nil
}

func completedBooking() *domain.Booking {
	completedAt := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
	sel := domain.SelectionSet{}
	sel.Toggle("Haircut", domain.BaseItemKey)
	sel.Toggle("Haircut", "101")
	return &domain.Booking{
		ID:            1,
		ProviderID:    10,
		CustomerID:    5,
		CustomerName:  "John",
		CustomerPhone: "+15550001122",
		Selections:    sel,
		Status:        domain.StatusCompleted,
		Subtotal:      money.Money(50),
		TaxAmount:     money.Money(8),
		Amount:        money.Money(58),
		CompletedAt:   &completedAt,
	}
}

func newTestService(bookings ...*domain.Booking) (*Service, *memDispatchRepo, *stubDelivery) {
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	dispatch := newMemDispatchRepo()
	delivery := &stubDelivery{}
	return NewService(repo, dispatch, delivery, nil, nopLogger{}), dispatch, delivery
}

func TestSend_CompletedBooking(t *testing.T) {
	svc, dispatch, delivery := newTestService(completedBooking())

	result, err := svc.Send(context.Background(), 1)
	require.NoError(t, err)

	assert.False(t, result.AlreadySent)
	assert.NotEmpty(t, result.InvoiceNumber)

	require.Len(t, delivery.deliveries, 1)
	d := delivery.deliveries[0]
	assert.Equal(t, int64(1), d.BookingID)
	assert.Equal(t, result.InvoiceNumber, d.InvoiceNumber)

	pdfBytes, err := base64.StdEncoding.DecodeString(d.PDFBase64)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))

	contains, err := dispatch.Contains(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestSend_RepeatReportsAlreadySent(t *testing.T) {
	svc, dispatch, delivery := newTestService(completedBooking())

	first, err := svc.Send(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, first.AlreadySent)

	second, err := svc.Send(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, second.AlreadySent)

	// Повторная отправка доставляет заново и подтверждает членство
	assert.Len(t, delivery.deliveries, 2)
	assert.Equal(t, 2, dispatch.adds)
	assert.Len(t, dispatch.record, 1)
}

func TestSend_NotCompleted(t *testing.T) {
	b := completedBooking()
	b.Status = domain.StatusConfirmed
	svc, dispatch, delivery := newTestService(b)

	_, err := svc.Send(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotCompleted)
	assert.Empty(t, delivery.deliveries)
	assert.Empty(t, dispatch.record)
}

func TestSend_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Send(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSend_DeliveryFailureLeavesRecordUntouched(t *testing.T) {
	svc, dispatch, delivery := newTestService(completedBooking())
	delivery.err = notifyservice.ErrDeliveryRejected

	_, err := svc.Send(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Empty(t, dispatch.record)
}

func TestLoad_WarmsRecordFromStore(t *testing.T) {
	svc, dispatch, _ := newTestService(completedBooking())
	require.NoError(t, dispatch.Add(context.Background(), 1))

	require.NoError(t, svc.Load(context.Background()))

	result, err := svc.Send(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, result.AlreadySent)
}

func TestGenerate_RendersWithoutDispatch(t *testing.T) {
	svc, dispatch, delivery := newTestService(completedBooking())

	pdfBytes, invoiceNumber, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEmpty(t, invoiceNumber)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
	assert.Empty(t, delivery.deliveries)
	assert.Empty(t, dispatch.record)
}
