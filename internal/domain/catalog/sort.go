package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// SortField campo de orden.
type SortField string

const (
	SortByName   SortField = "name"
	SortByPrice  SortField = "price"
	SortByRating SortField = "rating"
	SortByStock  SortField = "stock"
)

// Direction dirección de orden.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort criterio de orden. Field vacío o desconocido conserva el orden de entrada.
type Sort struct {
	Field     SortField
	Direction Direction
}

// ParseSort interpreta los parámetros de query; la dirección por defecto es asc.
func ParseSort(field, direction string) Sort {
	s := Sort{Field: SortField(strings.ToLower(strings.TrimSpace(field))), Direction: Asc}
	if strings.EqualFold(strings.TrimSpace(direction), string(Desc)) {
		s.Direction = Desc
	}
	return s
}

// Valid informa si el campo es uno de los soportados (o vacío).
func (s Sort) Valid() bool {
	switch s.Field {
	case "", SortByName, SortByPrice, SortByRating, SortByStock:
		return true
	default:
		return false
	}
}

// SortProducts devuelve una copia ordenada de forma estable.
func SortProducts(products []*entity.Product, s Sort) []*entity.Product {
	out := append([]*entity.Product(nil), products...)
	cmp := comparator(s.Field)
	if cmp == nil {
		return out
	}
	desc := s.Direction == Desc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return cmp(out[j], out[i]) < 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out
}

// comparator devuelve <0, 0, >0 según a respecto de b.
func comparator(field SortField) func(a, b *entity.Product) int {
	switch field {
	case SortByName:
		fold := cases.Fold()
		return func(a, b *entity.Product) int {
			return strings.Compare(fold.String(a.Name), fold.String(b.Name))
		}
	case SortByPrice:
		return func(a, b *entity.Product) int { return a.Price.Cmp(b.Price) }
	case SortByRating:
		return func(a, b *entity.Product) int { return compareFloat(a.Rating, b.Rating) }
	case SortByStock:
		return func(a, b *entity.Product) int { return a.Stock - b.Stock }
	default:
		return nil
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Facets valores distintos disponibles para construir los filtros.
type Facets struct {
	Categories    []string
	Subcategories []string
	Brands        []string
	Tags          []string
	MinPrice      decimal.Decimal
	MaxPrice      decimal.Decimal
}

// BuildFacets recorre el catálogo y devuelve los valores distintos ordenados.
func BuildFacets(products []*entity.Product) Facets {
	cats := map[string]struct{}{}
	subs := map[string]struct{}{}
	brands := map[string]struct{}{}
	tags := map[string]struct{}{}
	var f Facets
	for i, p := range products {
		if p.Category != "" {
			cats[p.Category] = struct{}{}
		}
		if p.Subcategory != "" {
			subs[p.Subcategory] = struct{}{}
		}
		if p.Brand != "" {
			brands[p.Brand] = struct{}{}
		}
		for _, t := range p.Tags {
			tags[t] = struct{}{}
		}
		if i == 0 || p.Price.LessThan(f.MinPrice) {
			f.MinPrice = p.Price
		}
		if i == 0 || p.Price.GreaterThan(f.MaxPrice) {
			f.MaxPrice = p.Price
		}
	}
	f.Categories = sortedKeys(cats)
	f.Subcategories = sortedKeys(subs)
	f.Brands = sortedKeys(brands)
	f.Tags = sortedKeys(tags)
	return f
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
