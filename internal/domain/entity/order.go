package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del pedido.
type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderPaid           OrderStatus = "paid"
	OrderCancelled      OrderStatus = "cancelled"
	OrderExpired        OrderStatus = "expired"
)

// CartTotals totales derivados del carrito.
type CartTotals struct {
	ItemCount      int
	TotalRetail    decimal.Decimal
	TotalWholesale decimal.Decimal
	Savings        decimal.Decimal
	SavingsPercent int
}

// Order pedido generado al iniciar el checkout (copia del carrito).
type Order struct {
	ID        string
	SessionID string
	Email     string
	Role      Role
	Items     []CartItem
	Totals    CartTotals
	Amount    decimal.Decimal // monto a pagar según el rol
	PaymentID string
	Reference string
	Status    OrderStatus
	CreatedAt time.Time
	PaidAt    *time.Time
}

// UnitPrice precio unitario que paga el rol del pedido.
func (o *Order) UnitPrice(it CartItem) decimal.Decimal {
	if o.Role.SeesWholesale() {
		return it.WholesalePrice
	}
	return it.Price
}

// PaymentStatus estado del pago QR simulado.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentExpired   PaymentStatus = "expired"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Payment sesión de pago QR con cuenta regresiva.
type Payment struct {
	ID        string
	OrderID   string
	SessionID string
	Reference string
	Amount    decimal.Decimal
	Status    PaymentStatus
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Remaining devuelve el tiempo restante de la cuenta regresiva (nunca negativo).
func (p *Payment) Remaining(now time.Time) time.Duration {
	if d := p.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}
