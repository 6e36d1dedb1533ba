package domain

// StaffID идентификатор сотрудника провайдера
type StaffID string

// AnyStaffID ID синтетического сотрудника "Любой свободный".
// Представляет отсутствие предпочтения по сотруднику, всегда
// присутствует в списке подходящих и никогда не фильтруется.
const AnyStaffID StaffID = "any"

// IsAny возвращает true для ID синтетического сотрудника "Любой свободный"
func (id StaffID) IsAny() bool {
	return id == AnyStaffID
}

// StaffMember сотрудник провайдера
type StaffMember struct {
	ID          StaffID
	ProviderID  int64
	DisplayName string

	// ID услуг, на которые сотрудник явно назначен
	AssignedServiceIDs []int64
}

// IsAny возвращает true для синтетического сотрудника "Любой свободный"
func (m *StaffMember) IsAny() bool {
	return m.ID == AnyStaffID
}

// AnyStaffMember возвращает синтетического сотрудника "Любой свободный"
// Список сотрудников из хранилища не содержит его - сервис добавляет
// его самостоятельно
func AnyStaffMember() *StaffMember {
	return &StaffMember{
		ID:          AnyStaffID,
		DisplayName: "Any Available",
	}
}
