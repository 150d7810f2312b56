// Package stats agrupa cálculos de porcentajes usados por el carrito y los dashboards.
package stats

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent devuelve part/whole×100 redondeado a places decimales. whole ≤ 0 → 0.
func Percent(part, whole decimal.Decimal, places int32) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(places)
}

// PercentInt es Percent redondeado a entero y acotado a [0, 100].
func PercentInt(part, whole decimal.Decimal) int {
	p := Percent(part, whole, 0).IntPart()
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return int(p)
	}
}

// Ratio es Percent sobre conteos enteros.
func Ratio(part, whole int, places int32) decimal.Decimal {
	return Percent(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(whole)), places)
}

// Growth devuelve la variación porcentual de previous a current. previous ≤ 0 → 0.
func Growth(current, previous decimal.Decimal, places int32) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(places)
}
