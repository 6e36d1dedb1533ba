package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected Money
	}{
		{"целое значение", 50.0, 50},
		{"ровно половина округляется вверх", 7.5, 8},
		{"меньше половины округляется вниз", 7.4, 7},
		{"больше половины округляется вверх", 7.6, 8},
		{"ноль", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundHalfUp(tt.value))
		})
	}
}

func TestPercentOf(t *testing.T) {
	// 15% от 50 = 7.5 -> 8
	assert.Equal(t, Money(8), PercentOf(50, 15))

	// 20% от 50 = 10
	assert.Equal(t, Money(10), PercentOf(50, 20))

	// 15% от 40 = 6
	assert.Equal(t, Money(6), PercentOf(40, 15))

	// 0% от любой суммы = 0
	assert.Equal(t, Money(0), PercentOf(100, 0))
}
