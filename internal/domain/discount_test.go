package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscount_Validate(t *testing.T) {
	assert.NoError(t, (&Discount{ID: 1, Percentage: 0}).Validate())
	assert.NoError(t, (&Discount{ID: 1, Percentage: 100}).Validate())
	assert.ErrorIs(t, (&Discount{ID: 1, Percentage: 101}).Validate(), ErrInvalidPercentage)
	assert.ErrorIs(t, (&Discount{ID: 1, Percentage: -1}).Validate(), ErrInvalidPercentage)
}

func TestComposition_ToggleDiscount(t *testing.T) {
	d1 := Discount{ID: 1, Title: "Happy hour", Percentage: 20}
	d2 := Discount{ID: 2, Title: "First visit", Percentage: 10}

	c := NewComposition()
	assert.False(t, c.HasDiscount())

	// Применение скидки активирует её
	c.ToggleDiscount(d1)
	assert.True(t, c.HasDiscount())
	assert.Equal(t, int64(1), c.Discount.ID)

	// Повторное применение той же скидки деактивирует её
	c.ToggleDiscount(d1)
	assert.False(t, c.HasDiscount())

	// Применение другой скидки при активной заменяет, не складывает
	c.ToggleDiscount(d1)
	c.ToggleDiscount(d2)
	assert.True(t, c.HasDiscount())
	assert.Equal(t, int64(2), c.Discount.ID)
	assert.Equal(t, 10, c.Discount.Percentage)
}
