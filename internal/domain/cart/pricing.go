// Package cart contiene la derivación de totales del carrito (servicio de dominio puro).
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/stats"
)

// Totals calcula cantidad de unidades, total de lista, total mayorista y ahorro.
//
//	TotalRetail    = Σ price × qty
//	TotalWholesale = Σ wholesalePrice × qty
//	Savings        = TotalRetail − TotalWholesale
//	SavingsPercent = round(Savings / TotalRetail × 100), 0 si TotalRetail = 0
func Totals(items []entity.CartItem) entity.CartTotals {
	t := entity.CartTotals{
		TotalRetail:    decimal.Zero,
		TotalWholesale: decimal.Zero,
	}
	for _, it := range items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		t.ItemCount += it.Quantity
		t.TotalRetail = t.TotalRetail.Add(it.Price.Mul(qty))
		t.TotalWholesale = t.TotalWholesale.Add(it.WholesalePrice.Mul(qty))
	}
	t.Savings = t.TotalRetail.Sub(t.TotalWholesale)
	t.SavingsPercent = stats.PercentInt(t.Savings, t.TotalRetail)
	return t
}

// ClampQuantity ajusta qty al máximo de la línea. Devuelve 0 si qty < 1 (la línea debe eliminarse).
func ClampQuantity(qty, maxQty int) int {
	if qty < 1 {
		return 0
	}
	if maxQty > 0 && qty > maxQty {
		return maxQty
	}
	return qty
}

// AmountDue devuelve el monto a cobrar: mayorista para distribuidores/admin, lista para el resto.
func AmountDue(t entity.CartTotals, role entity.Role) decimal.Decimal {
	if role.SeesWholesale() {
		return t.TotalWholesale
	}
	return t.TotalRetail
}
