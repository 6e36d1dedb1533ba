package eligible_staff

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// Request модель запроса списка подходящих сотрудников
type Request struct {
	ProviderID int64               // ID провайдера
	Selection  domain.SelectionSet // Текущий набор выбранных позиций
}

// Response модель ответа со списком подходящих сотрудников
type Response struct {
	Staff []*domain.StaffMember // Подходящие сотрудники, сентинел "любой" всегда первый
}
