package domain

// BaseItemKey ключ выбора базовой услуги (без опций)
// В SelectionSet этот ключ означает, что выбрана сама услуга
// с её базовой ценой и длительностью
const BaseItemKey = "base"

// DefaultTaxRatePercent ставка налога по умолчанию (процент)
// Налог всегда применяется к сумме после скидки
const DefaultTaxRatePercent = 15

// Business validation constants
const (
	MinDiscountPercent = 0
	MaxDiscountPercent = 100

	MaxRejectReasonLength  = 500
	MaxCustomerNameLength  = 200
	MaxCustomerPhoneLength = 32
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
