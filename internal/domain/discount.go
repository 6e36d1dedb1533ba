package domain

import "errors"

// ErrInvalidPercentage возвращается для скидки с процентом вне диапазона 0-100
var ErrInvalidPercentage = errors.New("domain: discount percentage must be between 0 and 100")

// Discount процентная скидка провайдера
// К собираемому бронированию одновременно применима не более одной скидки,
// и она всегда действует на весь subtotal - частичных скидок нет
type Discount struct {
	ID         int64
	ProviderID int64
	Title      string
	Percentage int // 0-100
}

// Validate проверяет корректность скидки
func (d *Discount) Validate() error {
	if d.Percentage < MinDiscountPercent || d.Percentage > MaxDiscountPercent {
		return ErrInvalidPercentage
	}
	return nil
}

// Composition собираемое бронирование: выбор позиций плюс активная скидка.
// Явный value object вместо неявного разделяемого состояния - расчёт цены
// и подбор сотрудников остаются чистыми функциями над ним.
type Composition struct {
	Selection SelectionSet
	Discount  *Discount
}

// NewComposition создает пустую композицию
func NewComposition() *Composition {
	return &Composition{Selection: NewSelectionSet()}
}

// ToggleDiscount переключает активную скидку.
// Повторное применение той же скидки деактивирует её (идемпотентный
// переключатель); применение другой скидки заменяет текущую без ошибки.
// Скидки никогда не складываются.
func (c *Composition) ToggleDiscount(d Discount) {
	if c.Discount != nil && c.Discount.ID == d.ID {
		c.Discount = nil
		return
	}
	applied := d
	c.Discount = &applied
}

// HasDiscount возвращает true, если скидка активна
func (c *Composition) HasDiscount() bool {
	return c.Discount != nil
}
