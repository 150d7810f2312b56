package dto

import "github.com/shopspring/decimal"

// InventoryDashboardDTO pestaña de inventario.
type InventoryDashboardDTO struct {
	TotalProducts     int                    `json:"total_products"`
	InStock           int                    `json:"in_stock"`
	OutOfStock        int                    `json:"out_of_stock"`
	InStockPercent    decimal.Decimal        `json:"in_stock_percent"`
	TotalUnits        int                    `json:"total_units"`
	RetailValue       decimal.Decimal        `json:"retail_value"`    // Σ price × stock
	WholesaleValue    decimal.Decimal        `json:"wholesale_value"` // Σ wholesale × stock
	LowStockThreshold int                    `json:"low_stock_threshold"`
	LowStock          []LowStockItemDTO      `json:"low_stock"`
	ByCategory        []CategoryInventoryDTO `json:"by_category"`
}

// LowStockItemDTO producto con stock bajo (incluye agotados).
type LowStockItemDTO struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

// CategoryInventoryDTO resumen por categoría.
type CategoryInventoryDTO struct {
	Category string `json:"category"`
	Products int    `json:"products"`
	Units    int    `json:"units"`
}

// SalesDashboardDTO pestaña de ventas.
type SalesDashboardDTO struct {
	TodayRevenue         decimal.Decimal `json:"today_revenue"`
	MonthRevenue         decimal.Decimal `json:"month_revenue"`
	PreviousMonthRevenue decimal.Decimal `json:"previous_month_revenue"`
	MonthGrowthPercent   decimal.Decimal `json:"month_growth_percent"`
	MonthOrders          int             `json:"month_orders"`
	AverageOrderValue    decimal.Decimal `json:"average_order_value"`
	TopProducts          []TopProductDTO `json:"top_products"`
	DateLabel            string          `json:"date_label"`
}

// TopProductDTO producto con mayor ingreso del mes.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	SharePercent decimal.Decimal `json:"share_percent"`
}

// WarrantyDashboardDTO pestaña de garantías.
type WarrantyDashboardDTO struct {
	Total             int                `json:"total"`
	Pending           int                `json:"pending"`
	Approved          int                `json:"approved"`
	Rejected          int                `json:"rejected"`
	Completed         int                `json:"completed"`
	ApprovalRate      decimal.Decimal    `json:"approval_rate"` // (aprobados + completados) / resueltos
	AvgResolutionDays decimal.Decimal    `json:"avg_resolution_days"`
	RecentClaims      []WarrantyClaimDTO `json:"recent_claims"`
}

// WarrantyClaimDTO reclamo listado en la pestaña.
type WarrantyClaimDTO struct {
	ID     string `json:"id"`
	SKU    string `json:"sku"`
	Dealer string `json:"dealer"`
	Issue  string `json:"issue"`
	Status string `json:"status"`
}

// SupportDashboardDTO pestaña de soporte.
type SupportDashboardDTO struct {
	Total                   int             `json:"total"`
	ByStatus                map[string]int  `json:"by_status"`
	ByPriority              map[string]int  `json:"by_priority"`
	ResolutionRate          decimal.Decimal `json:"resolution_rate"`
	AvgFirstResponseMinutes decimal.Decimal `json:"avg_first_response_minutes"`
	OpenUrgent              int             `json:"open_urgent"`
}

// OverviewDTO todas las pestañas en una sola respuesta.
type OverviewDTO struct {
	Inventory InventoryDashboardDTO `json:"inventory"`
	Sales     SalesDashboardDTO     `json:"sales"`
	Warranty  WarrantyDashboardDTO  `json:"warranty"`
	Support   SupportDashboardDTO   `json:"support"`
}
