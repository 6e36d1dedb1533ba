package confirm_booking

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/internal/service/bookings/models"
	usecase "github.com/m04kA/SMP-FulfilmentService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest модель запроса на подтверждение бронирования
type ConfirmBookingRequest struct {
	ProviderID    int64               `json:"provider_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Selection     domain.SelectionSet `json:"selection"`
	StaffID       string              `json:"staff_id"`
	DiscountID    *int64              `json:"discount_id,omitempty"`
}

// ToUseCaseRequest конвертирует запрос в модель usecase
func (r *ConfirmBookingRequest) ToUseCaseRequest(customerID int64) usecase.Request {
	return usecase.Request{
		ProviderID:    r.ProviderID,
		CustomerID:    customerID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Selection:     r.Selection,
		StaffID:       domain.StaffID(r.StaffID),
		DiscountID:    r.DiscountID,
	}
}

// FromUseCaseResponse конвертирует созданное бронирование в модель ответа API
func FromUseCaseResponse(resp *usecase.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
