package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, price, wholesale_price, category, subcategory, brand,
	tags, rating, stock, images, min_order_qty, max_order_qty`

// ProductRepo catálogo sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListAll devuelve el catálogo en su orden natural (position, id).
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Upsert inserta o reemplaza productos por ID. position conserva el orden recibido.
// Un SKU repetido en otro producto devuelve domain.ErrConflict.
func (r *ProductRepo) Upsert(ctx context.Context, products []*entity.Product) error {
	const query = `
		INSERT INTO products (id, sku, name, description, price, wholesale_price, category, subcategory, brand,
			tags, rating, stock, images, min_order_qty, max_order_qty, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			sku = EXCLUDED.sku, name = EXCLUDED.name, description = EXCLUDED.description,
			price = EXCLUDED.price, wholesale_price = EXCLUDED.wholesale_price,
			category = EXCLUDED.category, subcategory = EXCLUDED.subcategory, brand = EXCLUDED.brand,
			tags = EXCLUDED.tags, rating = EXCLUDED.rating, stock = EXCLUDED.stock, images = EXCLUDED.images,
			min_order_qty = EXCLUDED.min_order_qty, max_order_qty = EXCLUDED.max_order_qty,
			position = EXCLUDED.position, updated_at = now()`
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		_, err := r.q.Exec(ctx, query,
			p.ID, p.SKU, p.Name, p.Description, p.Price, p.WholesalePrice, p.Category, p.Subcategory, p.Brand,
			nonNil(p.Tags), p.Rating, p.Stock, nonNil(p.Images), p.MinOrderQty, p.MaxOrderQty, i,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("producto %s: %w", p.ID, domain.ErrConflict)
			}
			if isCheckViolation(err) {
				return fmt.Errorf("producto %s: %w", p.ID, domain.ErrInvalidInput)
			}
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.WholesalePrice, &p.Category, &p.Subcategory, &p.Brand,
		&p.Tags, &p.Rating, &p.Stock, &p.Images, &p.MinOrderQty, &p.MaxOrderQty,
	)
	if err != nil {
		return nil, err
	}
	p.InStock = p.Stock > 0
	return &p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
