package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

var _ repository.BackofficeRepository = (*BackofficeRepo)(nil)

// BackofficeRepo datos mock de ventas, garantías y soporte.
type BackofficeRepo struct {
	mu      sync.RWMutex
	sales   []entity.SaleRecord
	claims  []entity.WarrantyClaim
	tickets []entity.SupportTicket
}

// NewBackofficeRepository construye el repositorio con los datos dados.
func NewBackofficeRepository(sales []entity.SaleRecord, claims []entity.WarrantyClaim, tickets []entity.SupportTicket) *BackofficeRepo {
	return &BackofficeRepo{
		sales:   append([]entity.SaleRecord(nil), sales...),
		claims:  append([]entity.WarrantyClaim(nil), claims...),
		tickets: append([]entity.SupportTicket(nil), tickets...),
	}
}

// ListSales devuelve las ventas con SoldAt en [from, to].
func (r *BackofficeRepo) ListSales(_ context.Context, from, to time.Time) ([]entity.SaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.SaleRecord, 0, len(r.sales))
	for _, s := range r.sales {
		if s.SoldAt.Before(from) || s.SoldAt.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *BackofficeRepo) RecordSales(_ context.Context, sales ...entity.SaleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, sales...)
	return nil
}

func (r *BackofficeRepo) ListWarrantyClaims(_ context.Context) ([]entity.WarrantyClaim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.WarrantyClaim(nil), r.claims...), nil
}

func (r *BackofficeRepo) ListSupportTickets(_ context.Context) ([]entity.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.SupportTicket(nil), r.tickets...), nil
}
