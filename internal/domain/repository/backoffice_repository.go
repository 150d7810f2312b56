package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// BackofficeRepository datos de los dashboards (ventas, garantías, soporte).
// Las lecturas devuelven copias; RecordSales es la única escritura.
type BackofficeRepository interface {
	ListSales(ctx context.Context, from, to time.Time) ([]entity.SaleRecord, error)
	RecordSales(ctx context.Context, sales ...entity.SaleRecord) error
	ListWarrantyClaims(ctx context.Context) ([]entity.WarrantyClaim, error)
	ListSupportTickets(ctx context.Context) ([]entity.SupportTicket, error)
}
