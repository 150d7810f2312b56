// Package dashboard calcula las pestañas del backoffice: inventario, ventas, garantías y soporte.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
	"github.com/jhoicas/tunezone-api/internal/domain/stats"
	"github.com/jhoicas/tunezone-api/pkg/clock"
)

const (
	topProducts     = 5 // productos en el widget de ventas
	recentClaims    = 5
	defaultLowStock = 10
)

// Tab pestaña del dashboard.
type Tab string

const (
	TabOverview  Tab = "overview"
	TabInventory Tab = "inventory"
	TabSales     Tab = "sales"
	TabWarranty  Tab = "warranty"
	TabSupport   Tab = "support"
)

// Allowed informa si el rol puede ver la pestaña. Inventario, ventas y el resumen completo son
// solo para admin; garantías y soporte también para distribuidores. Los invitados no ven ninguna.
func (t Tab) Allowed(role entity.Role) bool {
	switch t {
	case TabWarranty, TabSupport:
		return role == entity.RoleAdmin || role == entity.RoleDealer
	case TabOverview, TabInventory, TabSales:
		return role == entity.RoleAdmin
	default:
		return false
	}
}

// DashboardUseCase arma las pestañas a partir del catálogo y los datos mock del backoffice.
type DashboardUseCase struct {
	products          repository.ProductRepository
	backoffice        repository.BackofficeRepository
	clock             clock.Clock
	lowStockThreshold int
}

// NewDashboardUseCase construye el caso de uso. lowStockThreshold ≤ 0 usa 10 unidades.
func NewDashboardUseCase(products repository.ProductRepository, backoffice repository.BackofficeRepository, clk clock.Clock, lowStockThreshold int) *DashboardUseCase {
	if clk == nil {
		clk = clock.Real()
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = defaultLowStock
	}
	return &DashboardUseCase{products: products, backoffice: backoffice, clock: clk, lowStockThreshold: lowStockThreshold}
}

// Overview carga las cuatro pestañas en paralelo.
func (uc *DashboardUseCase) Overview(ctx context.Context) (*dto.OverviewDTO, error) {
	var out dto.OverviewDTO
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inv, err := uc.Inventory(gctx)
		if err == nil {
			out.Inventory = *inv
		}
		return err
	})
	g.Go(func() error {
		sales, err := uc.Sales(gctx)
		if err == nil {
			out.Sales = *sales
		}
		return err
	})
	g.Go(func() error {
		w, err := uc.Warranty(gctx)
		if err == nil {
			out.Warranty = *w
		}
		return err
	})
	g.Go(func() error {
		s, err := uc.Support(gctx)
		if err == nil {
			out.Support = *s
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Inventory resumen de stock del catálogo.
func (uc *DashboardUseCase) Inventory(ctx context.Context) (*dto.InventoryDashboardDTO, error) {
	products, err := uc.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", err)
	}
	out := &dto.InventoryDashboardDTO{
		TotalProducts:     len(products),
		RetailValue:       decimal.Zero,
		WholesaleValue:    decimal.Zero,
		LowStockThreshold: uc.lowStockThreshold,
		LowStock:          []dto.LowStockItemDTO{},
	}
	byCat := map[string]*dto.CategoryInventoryDTO{}
	for _, p := range products {
		if p.InStock {
			out.InStock++
		} else {
			out.OutOfStock++
		}
		out.TotalUnits += p.Stock
		units := decimal.NewFromInt(int64(p.Stock))
		out.RetailValue = out.RetailValue.Add(p.Price.Mul(units))
		out.WholesaleValue = out.WholesaleValue.Add(p.WholesalePrice.Mul(units))
		if p.Stock <= uc.lowStockThreshold {
			out.LowStock = append(out.LowStock, dto.LowStockItemDTO{ProductID: p.ID, SKU: p.SKU, Name: p.Name, Stock: p.Stock})
		}
		c, ok := byCat[p.Category]
		if !ok {
			c = &dto.CategoryInventoryDTO{Category: p.Category}
			byCat[p.Category] = c
		}
		c.Products++
		c.Units += p.Stock
	}
	out.InStockPercent = stats.Ratio(out.InStock, out.TotalProducts, 1)
	out.RetailValue = out.RetailValue.Round(2)
	out.WholesaleValue = out.WholesaleValue.Round(2)

	sort.SliceStable(out.LowStock, func(i, j int) bool { return out.LowStock[i].Stock < out.LowStock[j].Stock })
	out.ByCategory = make([]dto.CategoryInventoryDTO, 0, len(byCat))
	for _, c := range byCat {
		out.ByCategory = append(out.ByCategory, *c)
	}
	sort.Slice(out.ByCategory, func(i, j int) bool { return out.ByCategory[i].Category < out.ByCategory[j].Category })
	return out, nil
}

// Sales ventas del día y del mes en curso con el top de productos.
//
// Tres lecturas en paralelo:
//  1. ventas de hoy
//  2. ventas del mes en curso (hasta el fin de hoy)
//  3. ventas del mes anterior completo, para el crecimiento
func (uc *DashboardUseCase) Sales(ctx context.Context) (*dto.SalesDashboardDTO, error) {
	now := uc.clock.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)
	prevEnd := monthStart.Add(-time.Nanosecond)

	type salesResult struct {
		sales []entity.SaleRecord
		err   error
	}
	load := func(from, to time.Time) <-chan salesResult {
		ch := make(chan salesResult, 1)
		go func() {
			s, err := uc.backoffice.ListSales(ctx, from, to)
			ch <- salesResult{s, err}
		}()
		return ch
	}
	todayCh := load(todayStart, todayEnd)
	monthCh := load(monthStart, todayEnd)
	prevCh := load(prevStart, prevEnd)

	today, month, prev := <-todayCh, <-monthCh, <-prevCh
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if prev.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes anterior: %w", prev.err)
	}

	monthRevenue := revenue(month.sales)
	prevRevenue := revenue(prev.sales)
	orders := countOrders(month.sales)
	aov := decimal.Zero
	if orders > 0 {
		aov = monthRevenue.Div(decimal.NewFromInt(int64(orders))).Round(2)
	}
	return &dto.SalesDashboardDTO{
		TodayRevenue:         revenue(today.sales).Round(2),
		MonthRevenue:         monthRevenue.Round(2),
		PreviousMonthRevenue: prevRevenue.Round(2),
		MonthGrowthPercent:   stats.Growth(monthRevenue, prevRevenue, 1),
		MonthOrders:          orders,
		AverageOrderValue:    aov,
		TopProducts:          topByRevenue(month.sales, monthRevenue, topProducts),
		DateLabel:            monthLabel(now),
	}, nil
}

// Warranty estado de los reclamos de garantía.
func (uc *DashboardUseCase) Warranty(ctx context.Context) (*dto.WarrantyDashboardDTO, error) {
	claims, err := uc.backoffice.ListWarrantyClaims(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: garantías: %w", err)
	}
	out := &dto.WarrantyDashboardDTO{Total: len(claims), AvgResolutionDays: decimal.Zero}
	var resolved int
	var resolution time.Duration
	for _, c := range claims {
		switch c.Status {
		case entity.WarrantyPending:
			out.Pending++
		case entity.WarrantyApproved:
			out.Approved++
		case entity.WarrantyRejected:
			out.Rejected++
		case entity.WarrantyCompleted:
			out.Completed++
		}
		if c.ResolvedAt != nil {
			resolved++
			resolution += c.ResolvedAt.Sub(c.OpenedAt)
		}
	}
	decided := out.Approved + out.Completed + out.Rejected
	out.ApprovalRate = stats.Ratio(out.Approved+out.Completed, decided, 1)
	if resolved > 0 {
		days := decimal.NewFromFloat(resolution.Hours() / 24)
		out.AvgResolutionDays = days.Div(decimal.NewFromInt(int64(resolved))).Round(1)
	}

	recent := append([]entity.WarrantyClaim(nil), claims...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].OpenedAt.After(recent[j].OpenedAt) })
	if len(recent) > recentClaims {
		recent = recent[:recentClaims]
	}
	out.RecentClaims = make([]dto.WarrantyClaimDTO, 0, len(recent))
	for _, c := range recent {
		out.RecentClaims = append(out.RecentClaims, dto.WarrantyClaimDTO{
			ID: c.ID, SKU: c.SKU, Dealer: c.Dealer, Issue: c.Issue, Status: string(c.Status),
		})
	}
	return out, nil
}

// Support estado de los tickets de soporte.
func (uc *DashboardUseCase) Support(ctx context.Context) (*dto.SupportDashboardDTO, error) {
	tickets, err := uc.backoffice.ListSupportTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: soporte: %w", err)
	}
	out := &dto.SupportDashboardDTO{
		Total:                   len(tickets),
		ByStatus:                map[string]int{},
		ByPriority:              map[string]int{},
		AvgFirstResponseMinutes: decimal.Zero,
	}
	var done, responded int
	var response time.Duration
	for _, t := range tickets {
		out.ByStatus[string(t.Status)]++
		out.ByPriority[string(t.Priority)]++
		if t.Status == entity.TicketResolved || t.Status == entity.TicketClosed {
			done++
		} else if t.Priority == entity.PriorityUrgent {
			out.OpenUrgent++
		}
		if t.FirstResponseAt != nil {
			responded++
			response += t.FirstResponseAt.Sub(t.OpenedAt)
		}
	}
	out.ResolutionRate = stats.Ratio(done, out.Total, 1)
	if responded > 0 {
		out.AvgFirstResponseMinutes = decimal.NewFromFloat(response.Minutes()).
			Div(decimal.NewFromInt(int64(responded))).Round(1)
	}
	return out, nil
}

func revenue(sales []entity.SaleRecord) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Revenue)
	}
	return total
}

// countOrders cuenta pedidos distintos; una venta sin pedido cuenta como uno propio.
func countOrders(sales []entity.SaleRecord) int {
	seen := map[string]struct{}{}
	for _, s := range sales {
		key := s.OrderID
		if key == "" {
			key = "sale:" + s.ID
		}
		seen[key] = struct{}{}
	}
	return len(seen)
}

func topByRevenue(sales []entity.SaleRecord, total decimal.Decimal, limit int) []dto.TopProductDTO {
	byProduct := map[string]*dto.TopProductDTO{}
	order := []string{}
	for _, s := range sales {
		p, ok := byProduct[s.ProductID]
		if !ok {
			p = &dto.TopProductDTO{ProductID: s.ProductID, ProductName: s.ProductName, Revenue: decimal.Zero}
			byProduct[s.ProductID] = p
			order = append(order, s.ProductID)
		}
		p.QuantitySold += s.Quantity
		p.Revenue = p.Revenue.Add(s.Revenue)
	}
	out := make([]dto.TopProductDTO, 0, len(order))
	for _, id := range order {
		p := byProduct[id]
		p.SharePercent = stats.Percent(p.Revenue, total, 1)
		p.Revenue = p.Revenue.Round(2)
		out = append(out, *p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Mayo 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
