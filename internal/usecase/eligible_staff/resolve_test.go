package eligible_staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		{ID: 1, ProviderID: 10, Name: "Haircut", AssignedStaffIDs: []domain.StaffID{"staff-a"}},
		{ID: 2, ProviderID: 10, Name: "Coloring", AssignedStaffIDs: []domain.StaffID{"staff-a", "staff-b"}},
		{ID: 3, ProviderID: 10, Name: "Massage"},
	}
}

func testRoster() []*domain.StaffMember {
	return []*domain.StaffMember{
		{ID: "staff-a", ProviderID: 10, DisplayName: "Alice"},
		{ID: "staff-b", ProviderID: 10, DisplayName: "Bob"},
		{ID: "staff-c", ProviderID: 10, DisplayName: "Carol"},
	}
}

func staffIDs(members []*domain.StaffMember) []domain.StaffID {
	ids := make([]domain.StaffID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestResolve_EmptySelectionReturnsWholeRoster(t *testing.T) {
	got := Resolve(domain.SelectionSet{}, testCatalog(), testRoster())

	assert.Equal(t,
		[]domain.StaffID{domain.AnyStaffID, "staff-a", "staff-b", "staff-c"},
		staffIDs(got))
}

func TestResolve_UnionOfSelectedServices(t *testing.T) {
	sel := domain.SelectionSet{}
	sel.Toggle("Haircut", domain.BaseItemKey)
	sel.Toggle("Coloring", domain.BaseItemKey)

	got := Resolve(sel, testCatalog(), testRoster())

	// Объединение, не пересечение: Bob подходит, хотя не назначен на Haircut
	assert.Equal(t,
		[]domain.StaffID{domain.AnyStaffID, "staff-a", "staff-b"},
		staffIDs(got))
}

func TestResolve_SingleService(t *testing.T) {
	sel := domain.SelectionSet{}
	sel.Toggle("Haircut", domain.BaseItemKey)

	got := Resolve(sel, testCatalog(), testRoster())

	assert.Equal(t, []domain.StaffID{domain.AnyStaffID, "staff-a"}, staffIDs(got))
}

func TestResolve_NoAssignmentsFallsBackToRoster(t *testing.T) {
	sel := domain.SelectionSet{}
	sel.Toggle("Massage", domain.BaseItemKey)

	got := Resolve(sel, testCatalog(), testRoster())

	assert.Equal(t,
		[]domain.StaffID{domain.AnyStaffID, "staff-a", "staff-b", "staff-c"},
		staffIDs(got))
}

func TestResolve_SentinelAlwaysFirst(t *testing.T) {
	sel := domain.SelectionSet{}
	sel.Toggle("Coloring", domain.BaseItemKey)

	got := Resolve(sel, testCatalog(), testRoster())

	require.NotEmpty(t, got)
	assert.True(t, got[0].IsAny())
}

func TestResolve_EmptyRoster(t *testing.T) {
	got := Resolve(domain.SelectionSet{}, testCatalog(), nil)

	require.Len(t, got, 1)
	assert.True(t, got[0].IsAny())
}
