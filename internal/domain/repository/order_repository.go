package repository

import (
	"context"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// OrderRepository pedidos y pagos del checkout simulado.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order *entity.Order) error
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	ListOrdersBySession(ctx context.Context, sessionID string) ([]*entity.Order, error)

	SavePayment(ctx context.Context, payment *entity.Payment) error
	GetPayment(ctx context.Context, id string) (*entity.Payment, error)
}
