package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord venta registrada (mock o proveniente de un pedido pagado).
type SaleRecord struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	Revenue     decimal.Decimal
	SoldAt      time.Time
}

// WarrantyStatus estado de un reclamo de garantía.
type WarrantyStatus string

const (
	WarrantyPending   WarrantyStatus = "pending"
	WarrantyApproved  WarrantyStatus = "approved"
	WarrantyRejected  WarrantyStatus = "rejected"
	WarrantyCompleted WarrantyStatus = "completed"
)

// WarrantyClaim reclamo de garantía de un distribuidor.
type WarrantyClaim struct {
	ID         string
	ProductID  string
	SKU        string
	Dealer     string
	Issue      string
	Status     WarrantyStatus
	OpenedAt   time.Time
	ResolvedAt *time.Time
}

// TicketStatus estado de un ticket de soporte.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// TicketPriority prioridad del ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

// SupportTicket ticket de soporte.
type SupportTicket struct {
	ID              string
	Subject         string
	Dealer          string
	Status          TicketStatus
	Priority        TicketPriority
	OpenedAt        time.Time
	FirstResponseAt *time.Time
	ResolvedAt      *time.Time
}
