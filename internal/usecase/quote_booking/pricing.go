package quote_booking

import (
	"fmt"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
)

// ComputeBreakdown вычисляет детализацию стоимости для набора выбранных позиций.
// Чистая функция: результат зависит только от аргументов и детерминирован.
//
// Алгоритм:
//  1. subtotal - сумма по всем выбранным позициям: BaseItemKey добавляет
//     базовую цену услуги, любой другой ключ - цену опции с этим ID
//  2. скидка (если есть) считается от subtotal с округлением "половина вверх"
//  3. налог по ставке taxRatePercent применяется к сумме ПОСЛЕ скидки
//
// Ссылка на услугу или опцию, которых нет в каталоге - ErrCatalogMismatch:
// молча считать несуществующую позицию нулём запрещено.
func ComputeBreakdown(
	selection domain.SelectionSet,
	catalog domain.Catalog,
	discount *domain.Discount,
	taxRatePercent int,
) (domain.PriceBreakdown, error) {
	var subtotal money.Money

	// Итерация в отсортированном порядке для воспроизводимости
	for _, serviceName := range selection.ServiceNames() {
		svc, ok := catalog.ServiceByName(serviceName)
		if !ok {
			return domain.PriceBreakdown{}, fmt.Errorf("%w: %q", ErrServiceNotInCatalog, serviceName)
		}

		for _, itemKey := range selection.ItemKeys(serviceName) {
			if itemKey == domain.BaseItemKey {
				subtotal += svc.BasePrice
				continue
			}

			optionID, err := parseOptionID(itemKey)
			if err != nil {
				return domain.PriceBreakdown{}, fmt.Errorf("%w: service %q key %q", ErrOptionNotInCatalog, serviceName, itemKey)
			}

			option, ok := svc.OptionByID(optionID)
			if !ok {
				return domain.PriceBreakdown{}, fmt.Errorf("%w: service %q key %q", ErrOptionNotInCatalog, serviceName, itemKey)
			}

			subtotal += option.Price
		}
	}

	var discountAmount money.Money
	if discount != nil {
		discountAmount = money.PercentOf(subtotal, discount.Percentage)
	}

	discountedSubtotal := subtotal - discountAmount
	taxAmount := money.PercentOf(discountedSubtotal, taxRatePercent)

	return domain.PriceBreakdown{
		Subtotal:           subtotal,
		DiscountAmount:     discountAmount,
		DiscountedSubtotal: discountedSubtotal,
		TaxAmount:          taxAmount,
		FinalTotal:         discountedSubtotal + taxAmount,
		HasDiscount:        discount != nil,
	}, nil
}

// TotalDurationMinutes вычисляет суммарную длительность выбранных позиций.
// Каждая позиция добавляет свою длительность независимо и аддитивно.
func TotalDurationMinutes(selection domain.SelectionSet, catalog domain.Catalog) (int, error) {
	total := 0

	for _, serviceName := range selection.ServiceNames() {
		svc, ok := catalog.ServiceByName(serviceName)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrServiceNotInCatalog, serviceName)
		}

		for _, itemKey := range selection.ItemKeys(serviceName) {
			if itemKey == domain.BaseItemKey {
				total += svc.BaseDurationMinutes
				continue
			}

			optionID, err := parseOptionID(itemKey)
			if err != nil {
				return 0, fmt.Errorf("%w: service %q key %q", ErrOptionNotInCatalog, serviceName, itemKey)
			}

			option, ok := svc.OptionByID(optionID)
			if !ok {
				return 0, fmt.Errorf("%w: service %q key %q", ErrOptionNotInCatalog, serviceName, itemKey)
			}

			total += option.DurationMinutes
		}
	}

	return total, nil
}
