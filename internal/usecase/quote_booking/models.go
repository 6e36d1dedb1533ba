package quote_booking

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// Request модель запроса на расчёт стоимости
type Request struct {
	ProviderID int64               // ID провайдера
	Selection  domain.SelectionSet // Текущий набор выбранных позиций
	DiscountID *int64              // ID применяемой скидки (опционально)
}

// Response модель ответа с детализацией стоимости
type Response struct {
	Breakdown domain.PriceBreakdown // Детализация стоимости
	Discount  *domain.Discount      // Применённая скидка (если есть)
}
