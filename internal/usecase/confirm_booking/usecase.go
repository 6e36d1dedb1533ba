package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	storageDiscount "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/discount"
	"github.com/m04kA/SMP-FulfilmentService/internal/usecase/eligible_staff"
	"github.com/m04kA/SMP-FulfilmentService/internal/usecase/quote_booking"
)

// UseCase подтверждение бронирования: валидация выбора, фиксация цены
// и создание записи в статусе pending
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	staffRepo    StaffRepository
	discountRepo DiscountRepository
	stats        StatsApplier
	txManager    TxManager
	taxRate      int
	log          Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	staffRepo StaffRepository,
	discountRepo DiscountRepository,
	stats StatsApplier,
	txManager TxManager,
	taxRatePercent int,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		staffRepo:    staffRepo,
		discountRepo: discountRepo,
		stats:        stats,
		txManager:    txManager,
		taxRate:      taxRatePercent,
		log:          log,
	}
}

// Execute подтверждает бронирование. Детализация стоимости пересчитывается
// на сервере и денормализуется в запись: витринная цена после подтверждения
// не меняется, даже если каталог или скидка изменятся позже.
// Выбор замораживается копией - дальнейшие переключения клиента не влияют
// на созданную запись
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	catalog, err := uc.catalogRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		uc.log.Error("Execute: failed to load catalog for provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Execute - load catalog: %v", ErrInternal, err)
	}

	roster, err := uc.staffRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		uc.log.Error("Execute: failed to load staff for provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Execute - load staff: %v", ErrInternal, err)
	}

	if err := uc.checkStaffEligible(req, catalog, roster); err != nil {
		return nil, err
	}

	discount, err := uc.resolveDiscount(ctx, req.ProviderID, req.DiscountID)
	if err != nil {
		return nil, err
	}

	breakdown, err := quote_booking.ComputeBreakdown(req.Selection, catalog, discount, uc.taxRate)
	if err != nil {
		if errors.Is(err, quote_booking.ErrCatalogMismatch) {
			return nil, fmt.Errorf("%w: %v", ErrCatalogMismatch, err)
		}
		return nil, fmt.Errorf("%w: Execute - compute breakdown: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		ProviderID:     req.ProviderID,
		CustomerID:     req.CustomerID,
		CustomerName:   strings.TrimSpace(req.CustomerName),
		CustomerPhone:  strings.TrimSpace(req.CustomerPhone),
		Selections:     req.Selection.Clone(),
		StaffID:        req.StaffID,
		DiscountID:     req.DiscountID,
		Status:         domain.StatusPending,
		Subtotal:       breakdown.Subtotal,
		DiscountAmount: breakdown.DiscountAmount,
		TaxAmount:      breakdown.TaxAmount,
		Amount:         breakdown.FinalTotal,
	}

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		created, err = uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.log.Error("Execute: failed to create booking for provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
	}

	// Статистика обновляется только после успешного коммита
	uc.stats.ApplyCreate(created)

	uc.log.Info("Execute: created booking id=%d provider id=%d amount=%d",
		created.ID, created.ProviderID, created.Amount.Int64())

	return &Response{Booking: created}, nil
}

func (uc *UseCase) validate(req Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer id must be positive", ErrInvalidInput)
	}
	if req.Selection.IsEmpty() {
		return ErrEmptySelection
	}
	if req.StaffID == "" {
		return ErrStaffRequired
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	return nil
}

// checkStaffEligible проверяет, что выбранный сотрудник входит в список
// подходящих для текущего выбора. Сентинел "любой" подходит всегда
func (uc *UseCase) checkStaffEligible(req Request, catalog domain.Catalog, roster []*domain.StaffMember) error {
	if req.StaffID.IsAny() {
		return nil
	}

	for _, member := range eligible_staff.Resolve(req.Selection, catalog, roster) {
		if member.ID == req.StaffID {
			return nil
		}
	}

	return fmt.Errorf("%w: staff id=%s", ErrStaffNotEligible, req.StaffID)
}

func (uc *UseCase) resolveDiscount(ctx context.Context, providerID int64, discountID *int64) (*domain.Discount, error) {
	if discountID == nil {
		return nil, nil
	}

	discount, err := uc.discountRepo.GetByID(ctx, *discountID)
	if err != nil {
		if errors.Is(err, storageDiscount.ErrDiscountNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrDiscountNotFound, *discountID)
		}
		uc.log.Error("resolveDiscount: failed to load discount id=%d: %v", *discountID, err)
		return nil, fmt.Errorf("%w: resolveDiscount: %v", ErrInternal, err)
	}

	if discount.ProviderID != providerID {
		return nil, fmt.Errorf("%w: id=%d", ErrDiscountNotFound, *discountID)
	}

	if err := discount.Validate(); err != nil {
		uc.log.Error("resolveDiscount: stored discount id=%d is invalid: %v", *discountID, err)
		return nil, fmt.Errorf("%w: resolveDiscount: %v", ErrInternal, err)
	}

	return discount, nil
}
