package domain

import (
	"sort"

	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
)

// Service услуга из каталога провайдера
// Каталог неизменяем в рамках одной загрузки; движок бронирований
// читает его, но никогда не модифицирует
type Service struct {
	ID                  int64
	ProviderID          int64
	Name                string // уникально в рамках каталога провайдера
	Description         string
	BasePrice           money.Money
	BaseDurationMinutes int
	Options             []ServiceOption

	// ID сотрудников, явно назначенных на услугу
	// Пустой список = назначения не сконфигурированы
	AssignedStaffIDs []StaffID
}

// ServiceOption опция услуги, принадлежит ровно одной услуге
type ServiceOption struct {
	ID              int64
	ServiceID       int64
	Name            string
	Description     *string
	Price           money.Money
	DurationMinutes int
	SortOrder       int
	Active          bool
}

// Catalog каталог услуг провайдера
type Catalog []*Service

// ServiceByName ищет услугу по названию
func (c Catalog) ServiceByName(name string) (*Service, bool) {
	for _, svc := range c {
		if svc.Name == name {
			return svc, true
		}
	}
	return nil, false
}

// OptionByID ищет опцию услуги по ID
func (s *Service) OptionByID(id int64) (*ServiceOption, bool) {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i], true
		}
	}
	return nil, false
}

// SortedOptions возвращает опции, отсортированные по sort_order
func (s *Service) SortedOptions() []ServiceOption {
	options := make([]ServiceOption, len(s.Options))
	copy(options, s.Options)
	sort.Slice(options, func(i, j int) bool {
		return options[i].SortOrder < options[j].SortOrder
	})
	return options
}
