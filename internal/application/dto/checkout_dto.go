package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentResponse estado del pago QR simulado.
type PaymentResponse struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"order_id"`
	Reference        string          `json:"reference"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	ExpiresAt        time.Time       `json:"expires_at"`
	RemainingSeconds int64           `json:"remaining_seconds"`
	QRURL            string          `json:"qr_url,omitempty"`
	Message          string          `json:"message,omitempty"`
}

// OrderResponse pedido con su snapshot del carrito.
type OrderResponse struct {
	ID        string             `json:"id"`
	Status    string             `json:"status"`
	Reference string             `json:"reference"`
	PaymentID string             `json:"payment_id"`
	Items     []CartItemResponse `json:"items"`
	Summary   CartSummary        `json:"summary"`
	Amount    decimal.Decimal    `json:"amount"`
	CreatedAt time.Time          `json:"created_at"`
	PaidAt    *time.Time         `json:"paid_at,omitempty"`
}

// CheckoutResponse respuesta de POST /api/checkout.
type CheckoutResponse struct {
	Order   OrderResponse   `json:"order"`
	Payment PaymentResponse `json:"payment"`
}
