package eligible_staff

import (
	"context"
	"fmt"
)

// UseCase подбор сотрудников, подходящих под текущий выбор клиента
type UseCase struct {
	catalogRepo CatalogRepository
	staffRepo   StaffRepository
	log         Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(catalogRepo CatalogRepository, staffRepo StaffRepository, log Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		staffRepo:   staffRepo,
		log:         log,
	}
}

// Execute возвращает список подходящих сотрудников для провайдера
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: provider id must be positive", ErrInvalidInput)
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

	return &Response{Staff: Resolve(req.Selection, catalog, roster)}, nil
}
