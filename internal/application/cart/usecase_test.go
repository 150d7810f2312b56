package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tunezone-api/internal/application/cart"
	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/memory"
)

const sid = "session-1"

func newUseCase(t *testing.T) *cart.CartUseCase {
	t.Helper()
	products, err := memory.NewProductRepository(memory.SeedProducts())
	require.NoError(t, err)
	return cart.NewCartUseCase(memory.NewCartRepository(), products)
}

func TestAdd_CantidadMinimaPorDefecto(t *testing.T) {
	uc := newUseCase(t)
	out, err := uc.Add(context.Background(), sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "acc-001"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 10, out.Items[0].Quantity)
	assert.Equal(t, "145", out.Items[0].LineTotal.String(), "el distribuidor paga mayorista")
}

func TestAdd_CantidadExplicitaBajoElMinimoSeRespeta(t *testing.T) {
	uc := newUseCase(t)
	out, err := uc.Add(context.Background(), sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "acc-001", Quantity: 3})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity, "solo se acota al máximo")
	assert.Equal(t, 10, out.Items[0].MinOrderQty)
}

func TestAdd_SumaYAjustaAlMaximo(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "amp-003", Quantity: 3})
	require.NoError(t, err)
	out, err := uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "amp-003", Quantity: 3})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 4, out.Items[0].Quantity)
}

func TestAdd_Errores(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "gtr-004"})
	assert.ErrorIs(t, err, domain.ErrOutOfStock)
	_, err = uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecrement_DesdeUnoEliminaLaLinea(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "gtr-001", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.Decrement(ctx, sid, entity.RoleDealer, "gtr-001")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Items[0].Quantity)

	out, err = uc.Decrement(ctx, sid, entity.RoleDealer, "gtr-001")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Summary.ItemCount)

	_, err = uc.Decrement(ctx, sid, entity.RoleDealer, "gtr-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateQuantity(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "gtr-001", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "rec-001"})
	require.NoError(t, err)

	out, err := uc.UpdateQuantity(ctx, sid, entity.RoleDealer, "gtr-001", 99)
	require.NoError(t, err)
	assert.Equal(t, 20, out.Items[0].Quantity, "se ajusta a la cantidad máxima")

	out, err = uc.Increment(ctx, sid, entity.RoleDealer, "gtr-001")
	require.NoError(t, err)
	assert.Equal(t, 20, out.Items[0].Quantity)

	out, err = uc.UpdateQuantity(ctx, sid, entity.RoleDealer, "gtr-001", 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "rec-001", out.Items[0].ID)

	_, err = uc.UpdateQuantity(ctx, sid, entity.RoleDealer, "gtr-001", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_ResumenSegunRol(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, sid, entity.RoleGuest, dto.AddCartItemRequest{ProductID: "gtr-001", Quantity: 2})
	require.NoError(t, err)

	guest, err := uc.Get(ctx, sid, entity.RoleGuest)
	require.NoError(t, err)
	assert.Nil(t, guest.Summary.TotalWholesale)
	assert.Nil(t, guest.Summary.Savings)
	assert.Nil(t, guest.Items[0].WholesalePrice)
	assert.Equal(t, "1699.98", guest.Summary.AmountDue.String())

	dealer, err := uc.Get(ctx, sid, entity.RoleDealer)
	require.NoError(t, err)
	require.NotNil(t, dealer.Summary.SavingsPercent)
	assert.Equal(t, "1358", dealer.Summary.AmountDue.String())
	assert.Equal(t, "341.98", dealer.Summary.Savings.String())
	assert.Equal(t, 20, *dealer.Summary.SavingsPercent)
}

func TestRemoveYClear(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "gtr-001"})
	require.NoError(t, err)
	_, err = uc.Add(ctx, sid, entity.RoleDealer, dto.AddCartItemRequest{ProductID: "amp-001"})
	require.NoError(t, err)

	out, err := uc.Remove(ctx, sid, entity.RoleDealer, "gtr-001")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	_, err = uc.Remove(ctx, sid, entity.RoleDealer, "gtr-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Clear(ctx, sid))
	items, err := uc.Snapshot(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCarritos_AisladosPorSesion(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, "a", entity.RoleDealer, dto.AddCartItemRequest{ProductID: "gtr-001"})
	require.NoError(t, err)
	other, err := uc.Get(ctx, "b", entity.RoleDealer)
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
