package quote_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	storageDiscount "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/discount"
)

// UseCase расчёт стоимости набора выбранных позиций
type UseCase struct {
	catalogRepo  CatalogRepository
	discountRepo DiscountRepository
	taxRate      int
	log          Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(catalogRepo CatalogRepository, discountRepo DiscountRepository, taxRatePercent int, log Logger) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		discountRepo: discountRepo,
		taxRate:      taxRatePercent,
		log:          log,
	}
}

// Execute рассчитывает детализацию стоимости по текущему выбору клиента.
// Пустой выбор валиден и даёт нулевую детализацию
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
	}

	catalog, err := uc.catalogRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		uc.log.Error("Execute: failed to load catalog for provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Execute - load catalog: %v", ErrInternal, err)
	}

	discount, err := uc.resolveDiscount(ctx, req.ProviderID, req.DiscountID)
	if err != nil {
		return nil, err
	}

	breakdown, err := ComputeBreakdown(req.Selection, catalog, discount, uc.taxRate)
	if err != nil {
		uc.log.Warn("Execute: breakdown failed for provider id=%d: %v", req.ProviderID, err)
		return nil, err
	}

	return &Response{
		Breakdown: breakdown,
		Discount:  discount,
	}, nil
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
		return nil, fmt.Errorf("%w: id=%d", ErrDiscountWrongProvider, *discountID)
	}

	if err := discount.Validate(); err != nil {
		uc.log.Error("resolveDiscount: stored discount id=%d is invalid: %v", *discountID, err)
		return nil, fmt.Errorf("%w: resolveDiscount: %v", ErrInternal, err)
	}

	return discount, nil
}

// parseOptionID разбирает ключ позиции выбора в ID опции
func parseOptionID(itemKey string) (int64, error) {
	id, err := strconv.ParseInt(itemKey, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid option key %q", itemKey)
	}
	return id, nil
}
