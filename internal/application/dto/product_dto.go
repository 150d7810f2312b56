package dto

import "github.com/shopspring/decimal"

// ProductQuery parámetros de búsqueda, filtro y orden del catálogo.
type ProductQuery struct {
	PageRequest
	Query       string           `query:"q" validate:"omitempty,max=100"`
	Category    string           `query:"category"`
	Subcategory string           `query:"subcategory"`
	Brand       string           `query:"brand"`
	MinPrice    *decimal.Decimal `query:"-"`
	MaxPrice    *decimal.Decimal `query:"-"`
	MinRating   float64          `query:"min_rating" validate:"omitempty,min=0,max=5"`
	InStock     bool             `query:"in_stock"`
	Tags        []string         `query:"-"`
	SortBy      string           `query:"sort" validate:"omitempty,oneof=name price rating stock"`
	Order       string           `query:"order" validate:"omitempty,oneof=asc desc"`
}

// ProductResponse salida de un producto. WholesalePrice solo se envía a distribuidores/admin.
type ProductResponse struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	Category       string           `json:"category"`
	Subcategory    string           `json:"subcategory"`
	Brand          string           `json:"brand"`
	Tags           []string         `json:"tags"`
	Rating         float64          `json:"rating"`
	InStock        bool             `json:"in_stock"`
	Stock          int              `json:"stock"`
	Images         []string         `json:"images"`
	MinOrderQty    int              `json:"min_order_qty"`
	MaxOrderQty    int              `json:"max_order_qty"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// FacetsResponse valores disponibles para los filtros.
type FacetsResponse struct {
	Categories    []string        `json:"categories"`
	Subcategories []string        `json:"subcategories"`
	Brands        []string        `json:"brands"`
	Tags          []string        `json:"tags"`
	MinPrice      decimal.Decimal `json:"min_price"`
	MaxPrice      decimal.Decimal `json:"max_price"`
}
