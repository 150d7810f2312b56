package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tunezone-api/internal/application/dashboard"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/memory"
	"github.com/jhoicas/tunezone-api/pkg/clock"
)

var now = time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T) *dashboard.DashboardUseCase {
	t.Helper()
	products, err := memory.NewProductRepository(memory.SeedProducts())
	require.NoError(t, err)
	back := memory.NewBackofficeRepository(memory.SeedBackoffice(now))
	return dashboard.NewDashboardUseCase(products, back, clock.NewFake(now), 10)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTab_Allowed(t *testing.T) {
	tests := []struct {
		tab   dashboard.Tab
		role  entity.Role
		allow bool
	}{
		{dashboard.TabInventory, entity.RoleAdmin, true},
		{dashboard.TabInventory, entity.RoleDealer, false},
		{dashboard.TabSales, entity.RoleDealer, false},
		{dashboard.TabOverview, entity.RoleAdmin, true},
		{dashboard.TabWarranty, entity.RoleDealer, true},
		{dashboard.TabSupport, entity.RoleDealer, true},
		{dashboard.TabSupport, entity.RoleGuest, false},
		{dashboard.TabWarranty, entity.RoleGuest, false},
		{dashboard.Tab("billing"), entity.RoleAdmin, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allow, tt.tab.Allowed(tt.role), "%s/%s", tt.tab, tt.role)
	}
}

func TestInventory(t *testing.T) {
	out, err := newUseCase(t).Inventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 16, out.TotalProducts)
	assert.Equal(t, 14, out.InStock)
	assert.Equal(t, 2, out.OutOfStock)
	assert.True(t, dec("87.5").Equal(out.InStockPercent))
	assert.True(t, out.WholesaleValue.LessThan(out.RetailValue))

	var low []string
	for _, it := range out.LowStock {
		low = append(low, it.ProductID)
	}
	assert.Equal(t, []string{"gtr-004", "key-002", "amp-003", "gtr-002", "drm-001", "acc-002", "bss-001"}, low)

	require.NotEmpty(t, out.ByCategory)
	assert.Equal(t, "Accessories", out.ByCategory[0].Category)
	assert.Equal(t, 2, out.ByCategory[0].Products)
}

func TestSales(t *testing.T) {
	out, err := newUseCase(t).Sales(context.Background())
	require.NoError(t, err)

	assert.True(t, dec("4196").Equal(out.TodayRevenue), out.TodayRevenue.String())
	assert.True(t, dec("10393").Equal(out.MonthRevenue), out.MonthRevenue.String())
	assert.True(t, dec("6329").Equal(out.PreviousMonthRevenue), out.PreviousMonthRevenue.String())
	assert.True(t, dec("64.2").Equal(out.MonthGrowthPercent), out.MonthGrowthPercent.String())
	assert.Equal(t, 7, out.MonthOrders)
	assert.True(t, dec("1484.71").Equal(out.AverageOrderValue), out.AverageOrderValue.String())
	assert.Equal(t, "Mayo 2026", out.DateLabel)

	require.Len(t, out.TopProducts, 5)
	assert.Equal(t, "gtr-001", out.TopProducts[0].ProductID)
	assert.True(t, dec("26.1").Equal(out.TopProducts[0].SharePercent))
	assert.Equal(t, "rec-002", out.TopProducts[4].ProductID)
}

func TestSales_SinMesAnteriorNoDivide(t *testing.T) {
	products, err := memory.NewProductRepository(memory.SeedProducts())
	require.NoError(t, err)
	back := memory.NewBackofficeRepository([]entity.SaleRecord{
		{ID: "s1", ProductID: "gtr-001", Quantity: 1, Revenue: dec("100"), SoldAt: now},
	}, nil, nil)
	out, err := dashboard.NewDashboardUseCase(products, back, clock.NewFake(now), 0).Sales(context.Background())
	require.NoError(t, err)
	assert.True(t, out.MonthGrowthPercent.IsZero())
	assert.Equal(t, 1, out.MonthOrders, "una venta sin pedido cuenta como uno")
}

func TestWarranty(t *testing.T) {
	out, err := newUseCase(t).Warranty(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, out.Total)
	assert.Equal(t, 2, out.Pending)
	assert.True(t, dec("66.7").Equal(out.ApprovalRate), out.ApprovalRate.String())
	assert.True(t, dec("3").Equal(out.AvgResolutionDays), out.AvgResolutionDays.String())
	require.Len(t, out.RecentClaims, 5)
	assert.Equal(t, "wty-005", out.RecentClaims[0].ID)
}

func TestSupport(t *testing.T) {
	out, err := newUseCase(t).Support(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, out.Total)
	assert.Equal(t, 2, out.ByStatus["resolved"])
	assert.Equal(t, 2, out.ByPriority["medium"])
	assert.Equal(t, 1, out.OpenUrgent)
	assert.True(t, dec("60").Equal(out.ResolutionRate), out.ResolutionRate.String())
	assert.True(t, dec("45").Equal(out.AvgFirstResponseMinutes), out.AvgFirstResponseMinutes.String())
}

func TestOverview(t *testing.T) {
	out, err := newUseCase(t).Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, out.Inventory.TotalProducts)
	assert.Equal(t, 7, out.Sales.MonthOrders)
	assert.Equal(t, 5, out.Warranty.Total)
	assert.Equal(t, 5, out.Support.Total)
}

type failingBackoffice struct{ memory.BackofficeRepo }

func (*failingBackoffice) ListSupportTickets(context.Context) ([]entity.SupportTicket, error) {
	return nil, errors.New("sin conexión")
}

func TestOverview_PropagaErrores(t *testing.T) {
	products, err := memory.NewProductRepository(memory.SeedProducts())
	require.NoError(t, err)
	uc := dashboard.NewDashboardUseCase(products, &failingBackoffice{}, clock.NewFake(now), 0)

	_, err = uc.Overview(context.Background())
	assert.ErrorContains(t, err, "sin conexión")
}
