package money

import "math"

// Money денежная сумма в целых единицах валюты.
// Все расчёты в сервисе детерминированы: дробные значения
// округляются до целой единицы по правилу "половина вверх".
type Money int64

// RoundHalfUp округляет значение до целой единицы валюты (0.5 -> 1)
func RoundHalfUp(v float64) Money {
	return Money(math.Floor(v + 0.5))
}

// PercentOf вычисляет процент от суммы с округлением "половина вверх"
func PercentOf(m Money, percent int) Money {
	return RoundHalfUp(float64(m) * float64(percent) / 100.0)
}

// Float64 возвращает сумму как float64 (для сериализации и метрик)
func (m Money) Float64() float64 {
	return float64(m)
}

// Int64 возвращает сумму как int64
func (m Money) Int64() int64 {
	return int64(m)
}
