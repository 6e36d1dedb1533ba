package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// BookingResponse модель бронирования для ответа API
type BookingResponse struct {
	ID             int64               `json:"id"`
	ProviderID     int64               `json:"provider_id"`
	CustomerID     int64               `json:"customer_id"`
	CustomerName   string              `json:"customer_name"`
	CustomerPhone  string              `json:"customer_phone"`
	Selections     map[string][]string `json:"selections"`
	StaffID        string              `json:"staff_id"`
	DiscountID     *int64              `json:"discount_id,omitempty"`
	Status         string              `json:"status"`
	Subtotal       int64               `json:"subtotal"`
	DiscountAmount int64               `json:"discount_amount"`
	TaxAmount      int64               `json:"tax_amount"`
	Amount         int64               `json:"amount"`
	RejectReason   *string             `json:"reject_reason,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// GetProviderBookingsRequest модель запроса бронирований провайдера
type GetProviderBookingsRequest struct {
	ProviderID int64
	UserID     int64
	Status     *string
}

// FromDomainBooking конвертирует доменную модель в модель ответа
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	selections := map[string][]string{}
	for _, serviceName := range b.Selections.ServiceNames() {
		selections[serviceName] = b.Selections.ItemKeys(serviceName)
	}

	return &BookingResponse{
		ID:             b.ID,
		ProviderID:     b.ProviderID,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		Selections:     selections,
		StaffID:        string(b.StaffID),
		DiscountID:     b.DiscountID,
		Status:         string(b.Status),
		Subtotal:       b.Subtotal.Int64(),
		DiscountAmount: b.DiscountAmount.Int64(),
		TaxAmount:      b.TaxAmount.Int64(),
		Amount:         b.Amount.Int64(),
		RejectReason:   b.RejectReason,
		CompletedAt:    b.CompletedAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}

// ToDomainBookingStatus конвертирует строку статуса в доменный тип
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return "", fmt.Errorf("unknown status %q", status)
	}
	return parsed, nil
}
