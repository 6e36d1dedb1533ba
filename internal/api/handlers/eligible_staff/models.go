package eligible_staff

import (
	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	usecase "github.com/m04kA/SMP-FulfilmentService/internal/usecase/eligible_staff"
)

// EligibleStaffRequest модель запроса списка подходящих сотрудников
type EligibleStaffRequest struct {
	Selection domain.SelectionSet `json:"selection"`
}

// StaffMemberResponse модель сотрудника для ответа API
type StaffMemberResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// EligibleStaffResponse список подходящих сотрудников
type EligibleStaffResponse struct {
	Staff []*StaffMemberResponse `json:"staff"`
}

// FromUseCaseResponse конвертирует ответ usecase в модель ответа API
func FromUseCaseResponse(resp *usecase.Response) *EligibleStaffResponse {
	staff := make([]*StaffMemberResponse, 0, len(resp.Staff))
	for _, member := range resp.Staff {
		staff = append(staff, &StaffMemberResponse{
			ID:          string(member.ID),
			DisplayName: member.DisplayName,
		})
	}
	return &EligibleStaffResponse{Staff: staff}
}
