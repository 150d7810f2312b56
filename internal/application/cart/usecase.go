// Package cart implementa las acciones sobre el carrito de cada sesión.
package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
	domcart "github.com/jhoicas/tunezone-api/internal/domain/cart"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

// CartUseCase acciones del carrito. Las líneas se identifican por id de producto.
type CartUseCase struct {
	mu       sync.Mutex // serializa leer-modificar-guardar
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Get devuelve el carrito con sus totales.
func (uc *CartUseCase) Get(ctx context.Context, sessionID string, role entity.Role) (*dto.CartResponse, error) {
	c, err := uc.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := ToCartResponse(c.Items, role)
	return &out, nil
}

// Add agrega un producto. Quantity ≤ 0 usa la cantidad mínima del producto; si la línea ya existe
// se suma. El resultado nunca supera la cantidad máxima. Los productos agotados se rechazan.
func (uc *CartUseCase) Add(ctx context.Context, sessionID string, role entity.Role, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	p, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !p.InStock {
		return nil, domain.ErrOutOfStock
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = p.MinOrderQty
	}

	return uc.mutate(ctx, sessionID, role, func(c *entity.Cart) error {
		if i := c.Find(p.ID); i >= 0 {
			c.Items[i].Quantity = domcart.ClampQuantity(c.Items[i].Quantity+qty, c.Items[i].MaxOrderQty)
			return nil
		}
		c.Items = append(c.Items, entity.NewCartItem(p, domcart.ClampQuantity(qty, p.MaxOrderQty)))
		return nil
	})
}

// UpdateQuantity fija la cantidad de una línea. qty < 1 elimina la línea; qty > máximo se ajusta al máximo.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, sessionID string, role entity.Role, id string, qty int) (*dto.CartResponse, error) {
	return uc.mutate(ctx, sessionID, role, func(c *entity.Cart) error {
		i := c.Find(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		setQuantity(c, i, qty)
		return nil
	})
}

// Increment suma una unidad a la línea.
func (uc *CartUseCase) Increment(ctx context.Context, sessionID string, role entity.Role, id string) (*dto.CartResponse, error) {
	return uc.step(ctx, sessionID, role, id, 1)
}

// Decrement resta una unidad; desde 1 elimina la línea.
func (uc *CartUseCase) Decrement(ctx context.Context, sessionID string, role entity.Role, id string) (*dto.CartResponse, error) {
	return uc.step(ctx, sessionID, role, id, -1)
}

// Remove elimina la línea.
func (uc *CartUseCase) Remove(ctx context.Context, sessionID string, role entity.Role, id string) (*dto.CartResponse, error) {
	return uc.mutate(ctx, sessionID, role, func(c *entity.Cart) error {
		i := c.Find(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return nil
	})
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.carts.Delete(ctx, sessionID)
}

// Snapshot devuelve una copia de las líneas actuales (para el checkout).
func (uc *CartUseCase) Snapshot(ctx context.Context, sessionID string) ([]entity.CartItem, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c, err := uc.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return append([]entity.CartItem(nil), c.Items...), nil
}

func (uc *CartUseCase) step(ctx context.Context, sessionID string, role entity.Role, id string, delta int) (*dto.CartResponse, error) {
	return uc.mutate(ctx, sessionID, role, func(c *entity.Cart) error {
		i := c.Find(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		setQuantity(c, i, c.Items[i].Quantity+delta)
		return nil
	})
}

func (uc *CartUseCase) mutate(ctx context.Context, sessionID string, role entity.Role, fn func(c *entity.Cart) error) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c, err := uc.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := uc.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	out := ToCartResponse(c.Items, role)
	return &out, nil
}

func setQuantity(c *entity.Cart, i, qty int) {
	q := domcart.ClampQuantity(qty, c.Items[i].MaxOrderQty)
	if q == 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return
	}
	c.Items[i].Quantity = q
}

// ToCartResponse arma líneas y resumen. Los importes mayoristas se omiten para invitados
// y LineTotal usa el precio que paga el rol.
func ToCartResponse(items []entity.CartItem, role entity.Role) dto.CartResponse {
	wholesale := role.SeesWholesale()
	out := dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, it := range items {
		unit := it.Price
		line := dto.CartItemResponse{
			ID:          it.ID,
			SKU:         it.SKU,
			Name:        it.Name,
			Category:    it.Category,
			Price:       it.Price,
			Quantity:    it.Quantity,
			MinOrderQty: it.MinOrderQty,
			MaxOrderQty: it.MaxOrderQty,
			InStock:     it.InStock,
		}
		if wholesale {
			w := it.WholesalePrice
			line.WholesalePrice = &w
			unit = w
		}
		line.LineTotal = unit.Mul(decimal.NewFromInt(int64(it.Quantity)))
		out.Items = append(out.Items, line)
	}
	out.Summary = ToCartSummary(domcart.Totals(items), role)
	return out
}

// ToCartSummary mapea los totales derivados según el rol.
func ToCartSummary(t entity.CartTotals, role entity.Role) dto.CartSummary {
	s := dto.CartSummary{
		ItemCount:   t.ItemCount,
		TotalRetail: t.TotalRetail,
		AmountDue:   domcart.AmountDue(t, role),
	}
	if role.SeesWholesale() {
		tw, sv, pct := t.TotalWholesale, t.Savings, t.SavingsPercent
		s.TotalWholesale = &tw
		s.Savings = &sv
		s.SavingsPercent = &pct
	}
	return s
}
