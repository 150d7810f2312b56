package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega un producto. Quantity ≤ 0 usa la cantidad mínima del producto.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=0,max=10000"`
}

// UpdateCartItemRequest fija la cantidad de una línea. Quantity < 1 elimina la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=-10000,max=10000"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Price          decimal.Decimal  `json:"price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	Quantity       int              `json:"quantity"`
	MinOrderQty    int              `json:"min_order_qty"`
	MaxOrderQty    int              `json:"max_order_qty"`
	InStock        bool             `json:"in_stock"`
	LineTotal      decimal.Decimal  `json:"line_total"`
}

// CartSummary totales derivados. Los campos mayoristas se omiten para invitados.
type CartSummary struct {
	ItemCount      int              `json:"item_count"`
	TotalRetail    decimal.Decimal  `json:"total_retail"`
	TotalWholesale *decimal.Decimal `json:"total_wholesale,omitempty"`
	Savings        *decimal.Decimal `json:"savings,omitempty"`
	SavingsPercent *int             `json:"savings_percent,omitempty"`
	AmountDue      decimal.Decimal  `json:"amount_due"`
}

// CartResponse carrito completo.
type CartResponse struct {
	Items   []CartItemResponse `json:"items"`
	Summary CartSummary        `json:"summary"`
}
