package invoices

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("invoices: booking not found")

	// ErrNotCompleted возвращается при попытке выставить инвойс
	// по незавершённому бронированию
	ErrNotCompleted = errors.New("invoices: booking is not completed")

	// ErrDeliveryFailed возвращается, когда доставка инвойса не удалась
	ErrDeliveryFailed = errors.New("invoices: invoice delivery failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("invoices: internal error")
)
