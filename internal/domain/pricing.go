package domain

import "github.com/m04kA/SMP-FulfilmentService/pkg/money"

// PriceBreakdown детализация стоимости бронирования
// Производная структура: вычисляется из выбора и скидки, не хранится.
// Все суммы округлены до целой единицы валюты.
type PriceBreakdown struct {
	Subtotal           money.Money
	DiscountAmount     money.Money
	DiscountedSubtotal money.Money
	TaxAmount          money.Money
	FinalTotal         money.Money
	HasDiscount        bool
}
