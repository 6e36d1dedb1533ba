package quote_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-FulfilmentService/internal/domain"
	"github.com/m04kA/SMP-FulfilmentService/pkg/money"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		{
			ID:                  1,
			ProviderID:          10,
			Name:                "Haircut",
			BasePrice:           money.Money(30),
			BaseDurationMinutes: 30,
			Options: []domain.ServiceOption{
				{ID: 101, ServiceID: 1, Name: "Beard trim", Price: money.Money(20), DurationMinutes: 15, Active: true},
				{ID: 102, ServiceID: 1, Name: "Hot towel", Price: money.Money(5), DurationMinutes: 5, Active: true},
			},
		},
		{
			ID:                  2,
			ProviderID:          10,
			Name:                "Massage",
			BasePrice:           money.Money(70),
			BaseDurationMinutes: 60,
		},
	}
}

func selectionOf(t *testing.T, pairs ...[2]string) domain.SelectionSet {
	t.Helper()
	sel := domain.SelectionSet{}
	for _, p := range pairs {
		sel.Toggle(p[0], p[1])
	}
	return sel
}

func TestComputeBreakdown_NoDiscount(t *testing.T) {
	sel := selectionOf(t,
		[2]string{"Haircut", domain.BaseItemKey},
		[2]string{"Haircut", "101"},
	)

	breakdown, err := ComputeBreakdown(sel, testCatalog(), nil, 15)
	require.NoError(t, err)

	// 30 + 20 = 50, налог 15% от 50 = 7.5 -> 8
	assert.Equal(t, money.Money(50), breakdown.Subtotal)
	assert.Equal(t, money.Money(0), breakdown.DiscountAmount)
	assert.Equal(t, money.Money(50), breakdown.DiscountedSubtotal)
	assert.Equal(t, money.Money(8), breakdown.TaxAmount)
	assert.Equal(t, money.Money(58), breakdown.FinalTotal)
	assert.False(t, breakdown.HasDiscount)
}

func TestComputeBreakdown_WithDiscount(t *testing.T) {
	sel := selectionOf(t,
		[2]string{"Haircut", domain.BaseItemKey},
		[2]string{"Haircut", "101"},
	)
	discount := &domain.Discount{ID: 1, ProviderID: 10, Title: "Opening", Percentage: 20}

	breakdown, err := ComputeBreakdown(sel, testCatalog(), discount, 15)
	require.NoError(t, err)

	// 50 - 20% = 40, налог 15% от 40 = 6, итог 46
	assert.Equal(t, money.Money(50), breakdown.Subtotal)
	assert.Equal(t, money.Money(10), breakdown.DiscountAmount)
	assert.Equal(t, money.Money(40), breakdown.DiscountedSubtotal)
	assert.Equal(t, money.Money(6), breakdown.TaxAmount)
	assert.Equal(t, money.Money(46), breakdown.FinalTotal)
	assert.True(t, breakdown.HasDiscount)
}

func TestComputeBreakdown_EmptySelection(t *testing.T) {
	breakdown, err := ComputeBreakdown(domain.SelectionSet{}, testCatalog(), nil, 15)
	require.NoError(t, err)

	assert.Equal(t, money.Money(0), breakdown.Subtotal)
	assert.Equal(t, money.Money(0), breakdown.FinalTotal)
}

func TestComputeBreakdown_UnknownService(t *testing.T) {
	sel := selectionOf(t, [2]string{"Manicure", domain.BaseItemKey})

	_, err := ComputeBreakdown(sel, testCatalog(), nil, 15)
	assert.ErrorIs(t, err, ErrCatalogMismatch)
}

func TestComputeBreakdown_UnknownOption(t *testing.T) {
	sel := selectionOf(t, [2]string{"Haircut", "999"})

	_, err := ComputeBreakdown(sel, testCatalog(), nil, 15)
	assert.ErrorIs(t, err, ErrCatalogMismatch)
}

func TestComputeBreakdown_MalformedOptionKey(t *testing.T) {
	sel := selectionOf(t, [2]string{"Haircut", "not-a-number"})

	_, err := ComputeBreakdown(sel, testCatalog(), nil, 15)
	assert.ErrorIs(t, err, ErrCatalogMismatch)
}

func TestComputeBreakdown_SubtotalAdditive(t *testing.T) {
	catalog := testCatalog()

	left := selectionOf(t, [2]string{"Haircut", domain.BaseItemKey}, [2]string{"Haircut", "102"})
	right := selectionOf(t, [2]string{"Massage", domain.BaseItemKey})
	combined := selectionOf(t,
		[2]string{"Haircut", domain.BaseItemKey},
		[2]string{"Haircut", "102"},
		[2]string{"Massage", domain.BaseItemKey},
	)

	bLeft, err := ComputeBreakdown(left, catalog, nil, 15)
	require.NoError(t, err)
	bRight, err := ComputeBreakdown(right, catalog, nil, 15)
	require.NoError(t, err)
	bCombined, err := ComputeBreakdown(combined, catalog, nil, 15)
	require.NoError(t, err)

	assert.Equal(t, bLeft.Subtotal+bRight.Subtotal, bCombined.Subtotal)
}

func TestComputeBreakdown_RoundingHalfUp(t *testing.T) {
	catalog := domain.Catalog{
		{ID: 1, ProviderID: 10, Name: "Trim", BasePrice: money.Money(33)},
	}
	sel := selectionOf(t, [2]string{"Trim", domain.BaseItemKey})
	discount := &domain.Discount{ID: 1, ProviderID: 10, Title: "Promo", Percentage: 5}

	breakdown, err := ComputeBreakdown(sel, catalog, discount, 15)
	require.NoError(t, err)

	// 5% от 33 = 1.65 -> 2; 15% от 31 = 4.65 -> 5
	assert.Equal(t, money.Money(2), breakdown.DiscountAmount)
	assert.Equal(t, money.Money(31), breakdown.DiscountedSubtotal)
	assert.Equal(t, money.Money(5), breakdown.TaxAmount)
	assert.Equal(t, money.Money(36), breakdown.FinalTotal)
}

func TestTotalDurationMinutes(t *testing.T) {
	sel := selectionOf(t,
		[2]string{"Haircut", domain.BaseItemKey},
		[2]string{"Haircut", "101"},
		[2]string{"Massage", domain.BaseItemKey},
	)

	total, err := TotalDurationMinutes(sel, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 30+15+60, total)
}
