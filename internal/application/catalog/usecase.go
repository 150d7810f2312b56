// Package catalog expone el catálogo de solo lectura con búsqueda, filtros, orden y paginación.
package catalog

import (
	"context"

	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
	domcatalog "github.com/jhoicas/tunezone-api/internal/domain/catalog"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

// CatalogUseCase casos de uso del catálogo. El precio mayorista solo se expone a distribuidores y admin.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List filtra, ordena y pagina el catálogo.
func (uc *CatalogUseCase) List(ctx context.Context, role entity.Role, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	if q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.GreaterThan(*q.MaxPrice) {
		return nil, domain.ErrInvalidInput
	}
	sort := domcatalog.ParseSort(q.SortBy, q.Order)
	if !sort.Valid() {
		return nil, domain.ErrInvalidInput
	}
	q.DefaultPage()

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := domcatalog.Apply(all, domcatalog.Filter{
		Query:       q.Query,
		Category:    q.Category,
		Subcategory: q.Subcategory,
		Brand:       q.Brand,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		MinRating:   q.MinRating,
		InStockOnly: q.InStock,
		Tags:        q.Tags,
	})
	sorted := domcatalog.SortProducts(filtered, sort)

	total := len(sorted)
	start := q.Offset
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	items := make([]dto.ProductResponse, 0, end-start)
	for _, p := range sorted[start:end] {
		items = append(items, toProductResponse(p, role))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// Get devuelve un producto o ErrNotFound.
func (uc *CatalogUseCase) Get(ctx context.Context, role entity.Role, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p, role)
	return &out, nil
}

// Facets valores disponibles para los filtros del catálogo completo.
func (uc *CatalogUseCase) Facets(ctx context.Context) (*dto.FacetsResponse, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	f := domcatalog.BuildFacets(all)
	return &dto.FacetsResponse{
		Categories:    f.Categories,
		Subcategories: f.Subcategories,
		Brands:        f.Brands,
		Tags:          f.Tags,
		MinPrice:      f.MinPrice,
		MaxPrice:      f.MaxPrice,
	}, nil
}

func toProductResponse(p *entity.Product, role entity.Role) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Brand:       p.Brand,
		Tags:        append([]string{}, p.Tags...),
		Rating:      p.Rating,
		InStock:     p.InStock,
		Stock:       p.Stock,
		Images:      append([]string{}, p.Images...),
		MinOrderQty: p.MinOrderQty,
		MaxOrderQty: p.MaxOrderQty,
	}
	if role.SeesWholesale() {
		w := p.WholesalePrice
		out.WholesalePrice = &w
	}
	return out
}
