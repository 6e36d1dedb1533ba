package confirm_booking

import "errors"

var (
	// ErrEmptySelection возвращается при попытке подтвердить бронирование без позиций
	ErrEmptySelection = errors.New("confirm_booking: selection is empty")

	// ErrStaffRequired возвращается, когда сотрудник не выбран
	ErrStaffRequired = errors.New("confirm_booking: staff member is required")

	// ErrStaffNotEligible возвращается, когда выбранный сотрудник не подходит под выбор
	ErrStaffNotEligible = errors.New("confirm_booking: staff member is not eligible for selection")

	// ErrCatalogMismatch возвращается, когда выбор не совпадает с каталогом
	ErrCatalogMismatch = errors.New("confirm_booking: selection does not match catalog")

	// ErrDiscountNotFound возвращается, когда указанная скидка не найдена
	ErrDiscountNotFound = errors.New("confirm_booking: discount not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
