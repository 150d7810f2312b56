package checkout

import (
	"context"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// QRCodeGenerator genera la imagen PNG del QR de pago.
type QRCodeGenerator interface {
	GeneratePNG(content string) ([]byte, error)
}

// ReceiptPDFGenerator genera el comprobante PDF de un pedido pagado.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, qrPayload string) ([]byte, error)
}

// CartSource carrito de la sesión: se copia al iniciar el checkout y se vacía al pagar.
type CartSource interface {
	Snapshot(ctx context.Context, sessionID string) ([]entity.CartItem, error)
	Clear(ctx context.Context, sessionID string) error
}

// Notifier publica toasts en la cola de la sesión.
type Notifier interface {
	Success(sessionID, title, message string)
	Warning(sessionID, title, message string)
}
