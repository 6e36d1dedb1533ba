package eligible_staff

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

// Resolve вычисляет список сотрудников, подходящих под текущий выбор.
// Чистая функция над выбором, каталогом и ростером.
//
// Семантика объединения: сотрудник подходит, если он назначен хотя бы на
// одну из выбранных услуг. Пустой выбор и пустое объединение дают весь
// ростер - клиенту всегда есть из кого выбрать. Сентинел "любой"
// возвращается первым в любом случае.
func Resolve(selection domain.SelectionSet, catalog domain.Catalog, roster []*domain.StaffMember) []*domain.StaffMember {
	result := []*domain.StaffMember{domain.AnyStaffMember()}

	if selection.IsEmpty() {
		return append(result, roster...)
	}

	eligible := map[domain.StaffID]struct{}{}
	for _, serviceName := range selection.ServiceNames() {
		svc, ok := catalog.ServiceByName(serviceName)
		if !ok {
			continue
		}
		for _, staffID := range svc.AssignedStaffIDs {
			eligible[staffID] = struct{}{}
		}
	}

	// Ни одной назначенной услуги в выборе - ограничение не действует
	if len(eligible) == 0 {
		return append(result, roster...)
	}

	for _, member := range roster {
		if _, ok := eligible[member.ID]; ok {
			result = append(result, member)
		}
	}

	return result
}
