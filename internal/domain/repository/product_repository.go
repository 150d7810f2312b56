package repository

import (
	"context"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo (DIP). El catálogo es de solo lectura.
type ProductRepository interface {
	// ListAll devuelve todos los productos en el orden natural del catálogo.
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
