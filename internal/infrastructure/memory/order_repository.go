package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos y pagos en memoria.
type OrderRepo struct {
	mu       sync.RWMutex
	orders   map[string]entity.Order
	seq      map[string]int // orden de inserción, desempata CreatedAt
	payments map[string]entity.Payment
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{
		orders:   make(map[string]entity.Order),
		seq:      make(map[string]int),
		payments: make(map[string]entity.Payment),
	}
}

func (r *OrderRepo) SaveOrder(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	cp.Items = append([]entity.CartItem(nil), order.Items...)
	if _, ok := r.seq[order.ID]; !ok {
		r.seq[order.ID] = len(r.seq)
	}
	r.orders[order.ID] = cp
	return nil
}

func (r *OrderRepo) GetOrder(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// ListOrdersBySession devuelve los pedidos de la sesión, más recientes primero.
func (r *OrderRepo) ListOrdersBySession(_ context.Context, sessionID string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			o := o
			out = append(out, &o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	return out, nil
}

func (r *OrderRepo) SavePayment(_ context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = *payment
	return nil
}

func (r *OrderRepo) GetPayment(_ context.Context, id string) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
