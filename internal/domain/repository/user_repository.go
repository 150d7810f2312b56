package repository

import (
	"context"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// AccountRepository credenciales mock de distribuidores y administradores.
type AccountRepository interface {
	// FindByEmail devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}
