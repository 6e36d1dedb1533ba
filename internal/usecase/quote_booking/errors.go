package quote_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogMismatch возвращается, когда выбор ссылается на услугу или
	// опцию, отсутствующую в загруженном каталоге. Невосстановимо внутри
	// сервиса: калькулятор не считает несуществующие позиции нулём
	ErrCatalogMismatch = errors.New("quote_booking: selection does not match catalog")

	// ErrServiceNotInCatalog уточнение ErrCatalogMismatch: нет такой услуги
	ErrServiceNotInCatalog = fmt.Errorf("%w: unknown service", ErrCatalogMismatch)

	// ErrOptionNotInCatalog уточнение ErrCatalogMismatch: нет такой опции
	ErrOptionNotInCatalog = fmt.Errorf("%w: unknown option", ErrCatalogMismatch)

	// ErrDiscountNotFound возвращается, когда указанная скидка не найдена
	ErrDiscountNotFound = errors.New("quote_booking: discount not found")

	// ErrDiscountWrongProvider возвращается, когда скидка принадлежит другому провайдеру
	ErrDiscountWrongProvider = errors.New("quote_booking: discount belongs to another provider")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
