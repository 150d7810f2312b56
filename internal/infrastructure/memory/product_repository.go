package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo en memoria (datos mock). Solo lectura después de construido.
type ProductRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*entity.Product
}

// NewProductRepository valida cada producto y construye el índice por id.
func NewProductRepository(products []*entity.Product) (*ProductRepo, error) {
	r := &ProductRepo{byID: make(map[string]*entity.Product, len(products))}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catálogo mock: %w", err)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("catálogo mock: id duplicado %s", p.ID)
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

// ListAll devuelve los productos en el orden de carga.
func (r *ProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}
