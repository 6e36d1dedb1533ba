package confirm_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	storageDiscount "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/discount"
	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
	"github.com/m04kA/SMP-FulfilmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubBookingRepo struct {
	created *domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	copied := *b
	copied.ID = 42
	s.created = &copied
	return &copied, nil
}

type stubCatalogRepo struct {
	catalog domain.Catalog
}

func (s *stubCatalogRepo) GetByProviderID(context.Context, int64) (domain.Catalog, error) {
	return s.catalog, nil
}

type stubStaffRepo struct {
	roster []*domain.StaffMember
}

func (s *stubStaffRepo) GetByProviderID(context.Context, int64) ([]*domain.StaffMember, error) {
	return s.roster, nil
}

type stubDiscountRepo struct {
	discounts map[int64]*domain.Discount
}

func (s *stubDiscountRepo) GetByID(_ context.Context, id int64) (*domain.Discount, error) {
	d, ok := s.discounts[id]
	if !ok {
		return nil, storageDiscount.ErrDiscountNotFound
	}
	return d, nil
}

type stubStats struct {
	applied []*domain.Booking
}

func (s *stubStats) ApplyCreate(b *domain.Booking) {
	s.applied = append(s.applied, b)
}

type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(t *testing.T) (*UseCase, *stubBookingRepo, *stubStats) {
	t.Helper()

	catalog := domain.Catalog{
		{
			ID: 1, ProviderID: 10, Name: "Haircut",
			BasePrice: money.Money(30), BaseDurationMinutes: 30,
			AssignedStaffIDs: []domain.StaffID{"staff-a"},
			Options: []domain.ServiceOption{
				{ID: 101, ServiceID: 1, Name: "Beard trim", Price: money.Money(20), DurationMinutes: 15, Active: true},
			},
		},
	}
	roster := []*domain.StaffMember{
		{ID: "staff-a", ProviderID: 10, DisplayName: "Alice"},
		{ID: "staff-b", ProviderID: 10, DisplayName: "Bob"},
	}
	discounts := map[int64]*domain.Discount{
		7: {ID: 7, ProviderID: 10, Title: "Opening", Percentage: 20},
	}

	bookingRepo := &stubBookingRepo{}
	stats := &stubStats{}
	uc := NewUseCase(
		bookingRepo,
		&stubCatalogRepo{catalog: catalog},
		&stubStaffRepo{roster: roster},
		&stubDiscountRepo{discounts: discounts},
		stats,
		passTxManager{},
		15,
		nopLogger{},
	)
	return uc, bookingRepo, stats
}

func validRequest() Request {
	sel := domain.SelectionSet{}
	sel.Toggle("Haircut", domain.BaseItemKey)
	sel.Toggle("Haircut", "101")
	return Request{
		ProviderID:    10,
		CustomerID:    5,
		CustomerName:  "John",
		CustomerPhone: "+15550001122",
		Selection:     sel,
		StaffID:       "staff-a",
	}
}

func TestExecute_CreatesPendingBookingWithFrozenPrice(t *testing.T) {
	uc, repo, stats := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, money.Money(50), b.Subtotal)
	assert.Equal(t, money.Money(0), b.DiscountAmount)
	assert.Equal(t, money.Money(8), b.TaxAmount)
	assert.Equal(t, money.Money(58), b.Amount)

	require.NotNil(t, repo.created)
	require.Len(t, stats.applied, 1)
	assert.Equal(t, b.ID, stats.applied[0].ID)
}

func TestExecute_AppliesDiscount(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.DiscountID = ptr.Ptr(int64(7))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, money.Money(10), resp.Booking.DiscountAmount)
	assert.Equal(t, money.Money(46), resp.Booking.Amount)
}

func TestExecute_FreezesSelectionCopy(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)

	req := validRequest()
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Переключение после подтверждения не меняет сохранённый выбор
	req.Selection.Toggle("Haircut", "101")
	assert.True(t, repo.created.Selections.Has("Haircut", "101"))
}

func TestExecute_EmptySelection(t *testing.T) {
	uc, _, stats := newTestUseCase(t)

	req := validRequest()
	req.Selection = domain.SelectionSet{}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Empty(t, stats.applied)
}

func TestExecute_StaffRequired(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.StaffID = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffRequired)
}

func TestExecute_StaffNotEligible(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.StaffID = "staff-b"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotEligible)
}

func TestExecute_AnyStaffAlwaysEligible(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.StaffID = domain.AnyStaffID

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_UnknownDiscount(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.DiscountID = ptr.Ptr(int64(999))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestExecute_MissingCustomerName(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	req := validRequest()
	req.CustomerName = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
