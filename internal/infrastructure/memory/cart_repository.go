package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo carritos por sesión. Guarda copias para que el caller no comparta slices.
type CartRepo struct {
	mu    sync.Mutex
	carts map[string][]entity.CartItem
}

// NewCartRepository construye el repositorio vacío.
func NewCartRepository() *CartRepo {
	return &CartRepo{carts: make(map[string][]entity.CartItem)}
}

func (r *CartRepo) Get(_ context.Context, sessionID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := append([]entity.CartItem(nil), r.carts[sessionID]...)
	return &entity.Cart{SessionID: sessionID, Items: items}, nil
}

func (r *CartRepo) Save(_ context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(cart.Items) == 0 {
		delete(r.carts, cart.SessionID)
		return nil
	}
	r.carts[cart.SessionID] = append([]entity.CartItem(nil), cart.Items...)
	return nil
}

func (r *CartRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}
