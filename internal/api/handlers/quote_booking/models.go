package quote_booking

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	usecase "github.com/m04kA/SMP-FulfilmentService/internal/usecase/quote_booking"
)

// QuoteRequest модель запроса на расчёт стоимости
type QuoteRequest struct {
	Selection  domain.SelectionSet `json:"selection"`
	DiscountID *int64              `json:"discount_id,omitempty"`
}

// QuoteResponse модель ответа с детализацией стоимости
type QuoteResponse struct {
	Subtotal           int64  `json:"subtotal"`
	DiscountAmount     int64  `json:"discount_amount"`
	DiscountedSubtotal int64  `json:"discounted_subtotal"`
	TaxAmount          int64  `json:"tax_amount"`
	Total              int64  `json:"total"`
	DiscountID         *int64 `json:"discount_id,omitempty"`
	DiscountTitle      string `json:"discount_title,omitempty"`
}

// ToUseCaseRequest конвертирует запрос в модель usecase
func (r *QuoteRequest) ToUseCaseRequest(providerID int64) usecase.Request {
	return usecase.Request{
		ProviderID: providerID,
		Selection:  r.Selection,
		DiscountID: r.DiscountID,
	}
}

// FromUseCaseResponse конвертирует ответ usecase в модель ответа API
func FromUseCaseResponse(resp *usecase.Response) *QuoteResponse {
	result := &QuoteResponse{
		Subtotal:           resp.Breakdown.Subtotal.Int64(),
		DiscountAmount:     resp.Breakdown.DiscountAmount.Int64(),
		DiscountedSubtotal: resp.Breakdown.DiscountedSubtotal.Int64(),
		TaxAmount:          resp.Breakdown.TaxAmount.Int64(),
		Total:              resp.Breakdown.FinalTotal.Int64(),
	}
	if resp.Discount != nil {
		result.DiscountID = &resp.Discount.ID
		result.DiscountTitle = resp.Discount.Title
	}
	return result
}
