package catalog

import "errors"

var (
	// ErrDiscountNotFound возвращается, когда у провайдера нет активной скидки
	ErrDiscountNotFound = errors.New("catalog: active discount not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
