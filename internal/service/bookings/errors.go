package bookings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition возвращается, когда переход статуса запрещён
	// таблицей переходов или бронирование изменилось конкурентно
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrBookingNotFound возвращается, когда бронирование не найдено.
	// Заворачивает ErrInvalidTransition: отсутствующее бронирование - это
	// тоже невозможный переход, причина различима через errors.Is
	ErrBookingNotFound = fmt.Errorf("%w: booking not found", ErrInvalidTransition)

	// ErrBookingBusy возвращается, когда по бронированию уже идёт переход
	ErrBookingBusy = errors.New("bookings: booking transition already in progress")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
