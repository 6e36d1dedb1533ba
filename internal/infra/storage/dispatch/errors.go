package dispatch

import "errors"

var (
	// ErrStore возвращается при ошибках обращения к Redis
	ErrStore = errors.New("dispatch.repository: store error")

	// ErrBadRecord возвращается, когда элемент множества не парсится как ID бронирования
	ErrBadRecord = errors.New("dispatch.repository: malformed record member")
)
