package entity

import "github.com/shopspring/decimal"

// CartItem es una línea del carrito, copia de los datos del producto al momento de agregarlo.
// Invariante: Quantity ≥ 1 mientras la línea exista.
type CartItem struct {
	ID             string // id del producto
	Name           string
	Price          decimal.Decimal
	WholesalePrice decimal.Decimal
	Category       string
	SKU            string
	MinOrderQty    int
	MaxOrderQty    int
	InStock        bool
	Quantity       int
}

// NewCartItem construye la línea a partir del producto.
func NewCartItem(p *Product, qty int) CartItem {
	return CartItem{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		WholesalePrice: p.WholesalePrice,
		Category:       p.Category,
		SKU:            p.SKU,
		MinOrderQty:    p.MinOrderQty,
		MaxOrderQty:    p.MaxOrderQty,
		InStock:        p.InStock,
		Quantity:       qty,
	}
}

// Cart es el carrito de una sesión. Items mantiene el orden de inserción.
type Cart struct {
	SessionID string
	Items     []CartItem
}

// Find devuelve el índice de la línea con ese id, o -1.
func (c *Cart) Find(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}
