package catalog

import (
	"context"
	"errors"
	"fmt"

	discountRepo "github.com/m04kA/SMP-FulfilmentService/internal/infra/storage/discount"
	"github.com/m04kA/SMP-FulfilmentService/internal/service/catalog/models"
)

// Service витрина каталога: услуги с опциями и активная скидка провайдера
type Service struct {
	catalogRepo  CatalogRepository
	discountRepo DiscountRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, discountRepo DiscountRepository, logger Logger) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		discountRepo: discountRepo,
		logger:       logger,
	}
}

// GetCatalog получает каталог услуг провайдера. Публичный метод
func (s *Service) GetCatalog(ctx context.Context, providerID int64) (*models.CatalogResponse, error) {
	catalog, err := s.catalogRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		s.logger.Error("GetCatalog: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCatalog(providerID, catalog), nil
}

// GetActiveDiscount получает активную скидку провайдера. Публичный метод
func (s *Service) GetActiveDiscount(ctx context.Context, providerID int64) (*models.DiscountResponse, error) {
	discount, err := s.discountRepo.GetActiveByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("GetActiveDiscount: no active discount for provider=%d", providerID)
			return nil, ErrDiscountNotFound
		}
		s.logger.Error("GetActiveDiscount: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetActiveDiscount - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDiscount(discount), nil
}
