// Package catalog implementa el pipeline de búsqueda, filtro y orden del catálogo.
// Las funciones son puras: nunca modifican el slice de entrada.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// Filter conjunción de criterios. Los campos vacíos/nil no restringen.
type Filter struct {
	Query       string           // texto libre sobre nombre y descripción
	Category    string
	Subcategory string
	Brand       string
	MinPrice    *decimal.Decimal // inclusivo, sobre precio de lista
	MaxPrice    *decimal.Decimal // inclusivo
	MinRating   float64
	InStockOnly bool
	Tags        []string // el producto debe tener todas
}

// IsEmpty informa si el filtro no tiene criterios.
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Query) == "" && f.Category == "" && f.Subcategory == "" &&
		f.Brand == "" && f.MinPrice == nil && f.MaxPrice == nil && f.MinRating <= 0 &&
		!f.InStockOnly && len(f.Tags) == 0
}

// Matcher es un Filter preparado (texto ya normalizado).
type Matcher struct {
	f     Filter
	query string
	fold  cases.Caser
}

// NewMatcher normaliza el texto de búsqueda una sola vez.
func NewMatcher(f Filter) *Matcher {
	fold := cases.Fold()
	return &Matcher{
		f:     f,
		query: fold.String(strings.TrimSpace(f.Query)),
		fold:  fold,
	}
}

// Match evalúa todos los criterios sobre p.
func (m *Matcher) Match(p *entity.Product) bool {
	f := m.f
	if m.query != "" {
		if !strings.Contains(m.fold.String(p.Name), m.query) &&
			!strings.Contains(m.fold.String(p.Description), m.query) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Subcategory != "" && !strings.EqualFold(p.Subcategory, f.Subcategory) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	for _, tag := range f.Tags {
		if !p.HasTag(tag) {
			return false
		}
	}
	return true
}

// Apply devuelve un slice nuevo con los productos que cumplen f, en el orden original.
func Apply(products []*entity.Product, f Filter) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	if f.IsEmpty() {
		return append(out, products...)
	}
	m := NewMatcher(f)
	for _, p := range products {
		if m.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
