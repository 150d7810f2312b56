package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tunezone-api/internal/application/catalog"
	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) *catalog.CatalogUseCase {
	t.Helper()
	repo, err := memory.NewProductRepository(memory.SeedProducts())
	require.NoError(t, err)
	return catalog.NewCatalogUseCase(repo)
}

func TestList_PrecioMayoristaSegunRol(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	guest, err := uc.List(ctx, entity.RoleGuest, dto.ProductQuery{})
	require.NoError(t, err)
	for _, p := range guest.Items {
		assert.Nil(t, p.WholesalePrice, "el invitado no ve precio mayorista")
	}

	dealer, err := uc.List(ctx, entity.RoleDealer, dto.ProductQuery{})
	require.NoError(t, err)
	for _, p := range dealer.Items {
		require.NotNil(t, p.WholesalePrice)
		assert.True(t, p.WholesalePrice.LessThanOrEqual(p.Price))
	}
}

func TestList_FiltroOrdenYPaginacion(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	out, err := uc.List(ctx, entity.RoleDealer, dto.ProductQuery{
		Category: "guitars",
		InStock:  true,
		SortBy:   "price",
		Order:    "desc",
	})
	require.NoError(t, err)
	require.Equal(t, 3, out.Page.Total, "gtr-004 está agotado")
	assert.Equal(t, "gtr-002", out.Items[0].ID)
	assert.Equal(t, "gtr-003", out.Items[2].ID)

	page, err := uc.List(ctx, entity.RoleDealer, dto.ProductQuery{PageRequest: dto.PageRequest{Limit: 5, Offset: 15}})
	require.NoError(t, err)
	assert.Equal(t, 16, page.Page.Total)
	assert.Len(t, page.Items, 1)

	beyond, err := uc.List(ctx, entity.RoleDealer, dto.ProductQuery{PageRequest: dto.PageRequest{Offset: 100}})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 20, beyond.Page.Limit)
}

func TestList_RangoDePrecioYTags(t *testing.T) {
	uc := newUseCase(t)
	lo, hi := decimal.NewFromInt(100), decimal.NewFromInt(300)

	out, err := uc.List(context.Background(), entity.RoleGuest, dto.ProductQuery{
		MinPrice: &lo,
		MaxPrice: &hi,
		Tags:     []string{"bestseller"},
	})
	require.NoError(t, err)
	var got []string
	for _, p := range out.Items {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"gtr-003", "rec-002"}, got)
}

func TestList_ParametrosInvalidos(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()
	lo, hi := decimal.NewFromInt(500), decimal.NewFromInt(100)

	_, err := uc.List(ctx, entity.RoleGuest, dto.ProductQuery{MinPrice: &lo, MaxPrice: &hi})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(ctx, entity.RoleGuest, dto.ProductQuery{SortBy: "color"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	p, err := uc.Get(ctx, entity.RoleAdmin, "amp-001")
	require.NoError(t, err)
	assert.Equal(t, "Blues Junior IV", p.Name)
	require.NotNil(t, p.WholesalePrice)
	assert.Equal(t, "549", p.WholesalePrice.String())

	_, err = uc.Get(ctx, entity.RoleAdmin, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFacets(t *testing.T) {
	uc := newUseCase(t)
	f, err := uc.Facets(context.Background())
	require.NoError(t, err)

	assert.Contains(t, f.Categories, "Guitars")
	assert.Contains(t, f.Brands, "Fender")
	assert.Equal(t, "7.99", f.MinPrice.String())
	assert.Equal(t, "3199", f.MaxPrice.String())
}
