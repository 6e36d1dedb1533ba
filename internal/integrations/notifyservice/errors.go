package notifyservice

import "errors"

var (
	// ErrDeliveryRejected возвращается, когда NotifyService отклонил доставку
	ErrDeliveryRejected = errors.New("notifyservice client: delivery rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notifyservice client: invalid response")
)
