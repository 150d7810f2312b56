package repository

import (
	"context"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// CartRepository guarda el carrito de cada sesión.
type CartRepository interface {
	// Get devuelve el carrito de la sesión (vacío si no existe).
	Get(ctx context.Context, sessionID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
