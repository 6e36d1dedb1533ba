package models

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// ServiceOptionResponse модель опции услуги для ответа API
type ServiceOptionResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           int64   `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// ServiceResponse модель услуги для ответа API
type ServiceResponse struct {
	ID                  int64                    `json:"id"`
	Name                string                   `json:"name"`
	Description         string                   `json:"description,omitempty"`
	BasePrice           int64                    `json:"base_price"`
	BaseDurationMinutes int                      `json:"base_duration_minutes"`
	Options             []*ServiceOptionResponse `json:"options"`
	AssignedStaffIDs    []string                 `json:"assigned_staff_ids,omitempty"`
}

// CatalogResponse каталог услуг провайдера
type CatalogResponse struct {
	ProviderID int64              `json:"provider_id"`
	Services   []*ServiceResponse `json:"services"`
}

// DiscountResponse модель скидки для ответа API
type DiscountResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Percentage int    `json:"percentage"`
}

// FromDomainCatalog конвертирует доменный каталог в модель ответа
func FromDomainCatalog(providerID int64, catalog domain.Catalog) *CatalogResponse {
	services := make([]*ServiceResponse, 0, len(catalog))
	for _, svc := range catalog {
		options := make([]*ServiceOptionResponse, 0, len(svc.Options))
		for _, opt := range svc.SortedOptions() {
			options = append(options, &ServiceOptionResponse{
				ID:              opt.ID,
				Name:            opt.Name,
				Description:     opt.Description,
				Price:           opt.Price.Int64(),
				DurationMinutes: opt.DurationMinutes,
			})
		}

		staffIDs := make([]string, 0, len(svc.AssignedStaffIDs))
		for _, id := range svc.AssignedStaffIDs {
			staffIDs = append(staffIDs, string(id))
		}

		services = append(services, &ServiceResponse{
			ID:                  svc.ID,
			Name:                svc.Name,
			Description:         svc.Description,
			BasePrice:           svc.BasePrice.Int64(),
			BaseDurationMinutes: svc.BaseDurationMinutes,
			Options:             options,
			AssignedStaffIDs:    staffIDs,
		})
	}

	return &CatalogResponse{ProviderID: providerID, Services: services}
}

// FromDomainDiscount конвертирует доменную скидку в модель ответа
func FromDomainDiscount(d *domain.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:         d.ID,
		Title:      d.Title,
		Percentage: d.Percentage,
	}
}
