package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa una entrada de solo lectura del catálogo mayorista.
// WholesalePrice es el precio para distribuidores; Price es el precio de lista (retail).
type Product struct {
	ID             string
	SKU            string
	Name           string
	Description    string
	Price          decimal.Decimal
	WholesalePrice decimal.Decimal
	Category       string
	Subcategory    string
	Brand          string
	Tags           []string
	Rating         float64 // 0..5
	InStock        bool
	Stock          int // unidades disponibles
	Images         []string
	MinOrderQty    int
	MaxOrderQty    int
}

// Validate comprueba las invariantes de catálogo: 0 ≤ mayorista ≤ lista, 1 ≤ min ≤ max, rating en [0,5].
func (p *Product) Validate() error {
	if p.ID == "" || p.Name == "" {
		return fmt.Errorf("producto sin id o nombre")
	}
	if p.Price.IsNegative() || p.WholesalePrice.IsNegative() {
		return fmt.Errorf("producto %s: precio negativo", p.ID)
	}
	if p.WholesalePrice.GreaterThan(p.Price) {
		return fmt.Errorf("producto %s: precio mayorista mayor que el de lista", p.ID)
	}
	if p.MinOrderQty < 1 || p.MaxOrderQty < p.MinOrderQty {
		return fmt.Errorf("producto %s: cantidades mínima/máxima inválidas", p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("producto %s: rating fuera de rango", p.ID)
	}
	return nil
}

// HasTag informa si el producto tiene la etiqueta (comparación exacta).
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
