package confirm_booking

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	ProviderID    int64               // ID провайдера
	CustomerID    int64               // ID клиента
	CustomerName  string              // Имя клиента
	CustomerPhone string              // Телефон клиента
	Selection     domain.SelectionSet // Набор выбранных позиций
	StaffID       domain.StaffID      // Выбранный сотрудник (или сентинел "any")
	DiscountID    *int64              // ID применяемой скидки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking // Созданное бронирование в статусе pending
}
