// Package checkout convierte el carrito en un pedido y simula el pago por QR con cuenta regresiva.
package checkout

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcart "github.com/jhoicas/tunezone-api/internal/application/cart"
	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
	domcart "github.com/jhoicas/tunezone-api/internal/domain/cart"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
	"github.com/jhoicas/tunezone-api/pkg/clock"
	"github.com/jhoicas/tunezone-api/pkg/logger"
)

// DefaultCountdown ventana de pago por defecto.
const DefaultCountdown = 300 * time.Second

// Config parámetros del pago simulado.
type Config struct {
	Countdown   time.Duration
	SuccessRate float64 // probabilidad de éxito en cada consulta, en [0,1]
}

// Deps dependencias del caso de uso.
type Deps struct {
	Orders     repository.OrderRepository
	Backoffice repository.BackofficeRepository
	Cart       CartSource
	Notifier   Notifier
	QR         QRCodeGenerator
	Receipts   ReceiptPDFGenerator
	Clock      clock.Clock
	Random     func() float64 // nil usa math/rand/v2
	Log        *logger.Logger
}

// CheckoutUseCase pedidos y pagos QR simulados.
type CheckoutUseCase struct {
	mu     sync.Mutex
	deps   Deps
	cfg    Config
	log    *logger.Logger
	timers map[string]clock.Timer // paymentID → cuenta regresiva
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(deps Deps, cfg Config) *CheckoutUseCase {
	if cfg.Countdown <= 0 {
		cfg.Countdown = DefaultCountdown
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}
	if deps.Random == nil {
		deps.Random = rand.Float64
	}
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	return &CheckoutUseCase{
		deps:   deps,
		cfg:    cfg,
		log:    deps.Log.Named("checkout"),
		timers: make(map[string]clock.Timer),
	}
}

// Start crea el pedido a partir del carrito y abre la ventana de pago.
// Los invitados no pueden comprar; un carrito vacío devuelve ErrEmptyCart.
func (uc *CheckoutUseCase) Start(ctx context.Context, sess *entity.Session) (*dto.CheckoutResponse, error) {
	if sess.User.Role == entity.RoleGuest {
		return nil, domain.ErrForbidden
	}
	items, err := uc.deps.Cart.Snapshot(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := uc.deps.Clock.Now()
	totals := domcart.Totals(items)
	paymentID := uuid.New().String()
	order := &entity.Order{
		ID:        uuid.New().String(),
		SessionID: sess.ID,
		Email:     sess.User.Email,
		Role:      sess.User.Role,
		Items:     items,
		Totals:    totals,
		Amount:    domcart.AmountDue(totals, sess.User.Role),
		PaymentID: paymentID,
		Reference: reference(paymentID),
		Status:    entity.OrderPendingPayment,
		CreatedAt: now,
	}
	payment := &entity.Payment{
		ID:        paymentID,
		OrderID:   order.ID,
		SessionID: sess.ID,
		Reference: order.Reference,
		Amount:    order.Amount,
		Status:    entity.PaymentPending,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.Countdown),
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.deps.Orders.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("guardar pedido: %w", err)
	}
	if err := uc.deps.Orders.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("guardar pago: %w", err)
	}
	uc.timers[payment.ID] = uc.deps.Clock.AfterFunc(uc.cfg.Countdown, func() { uc.expire(payment.ID) })

	uc.log.Info().
		Str("order_id", order.ID).
		Str("payment_id", payment.ID).
		Str("amount", payment.Amount.StringFixed(2)).
		Time("expires_at", payment.ExpiresAt).
		Msg("checkout iniciado")

	return &dto.CheckoutResponse{
		Order:   toOrderResponse(order),
		Payment: uc.toPaymentResponse(payment, now),
	}, nil
}

// Poll consulta el estado del pago. Un pago pendiente dentro de su ventana se confirma con
// probabilidad SuccessRate; vencida la ventana queda expirado y nunca se confirma.
func (uc *CheckoutUseCase) Poll(ctx context.Context, sessionID, paymentID string) (*dto.PaymentResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, err := uc.ownPayment(ctx, sessionID, paymentID)
	if err != nil {
		return nil, err
	}
	now := uc.deps.Clock.Now()
	if p.Status == entity.PaymentPending {
		switch {
		case !now.Before(p.ExpiresAt):
			if err := uc.markExpired(ctx, p); err != nil {
				return nil, err
			}
		case uc.deps.Random() < uc.cfg.SuccessRate:
			if err := uc.markPaid(ctx, p, now); err != nil {
				return nil, err
			}
		}
	}
	out := uc.toPaymentResponse(p, now)
	return &out, nil
}

// Cancel cancela un pago pendiente.
func (uc *CheckoutUseCase) Cancel(ctx context.Context, sessionID, paymentID string) (*dto.PaymentResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, err := uc.ownPayment(ctx, sessionID, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status != entity.PaymentPending {
		return nil, domain.ErrPaymentClosed
	}
	if err := uc.close(ctx, p, entity.PaymentCancelled, entity.OrderCancelled, nil); err != nil {
		return nil, err
	}
	out := uc.toPaymentResponse(p, uc.deps.Clock.Now())
	return &out, nil
}

// QRCode devuelve el PNG del QR de pago. Solo disponible mientras el pago está pendiente.
func (uc *CheckoutUseCase) QRCode(ctx context.Context, sessionID, paymentID string) ([]byte, error) {
	uc.mu.Lock()
	p, err := uc.ownPayment(ctx, sessionID, paymentID)
	uc.mu.Unlock()
	if err != nil {
		return nil, err
	}
	switch p.Status {
	case entity.PaymentPending:
	case entity.PaymentExpired:
		return nil, domain.ErrPaymentExpired
	default:
		return nil, domain.ErrPaymentClosed
	}
	return uc.deps.QR.GeneratePNG(QRPayload(p.Reference, p.Amount.StringFixed(2)))
}

// Orders historial de pedidos de la sesión, más recientes primero.
func (uc *CheckoutUseCase) Orders(ctx context.Context, sessionID string) ([]dto.OrderResponse, error) {
	list, err := uc.deps.Orders.ListOrdersBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Receipt genera el comprobante PDF de un pedido pagado.
func (uc *CheckoutUseCase) Receipt(ctx context.Context, sessionID, orderID string) ([]byte, error) {
	o, err := uc.deps.Orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.SessionID != sessionID {
		return nil, domain.ErrNotFound
	}
	if o.Status != entity.OrderPaid {
		return nil, domain.ErrConflict
	}
	return uc.deps.Receipts.GenerateReceiptPDF(ctx, o, QRPayload(o.Reference, o.Amount.StringFixed(2)))
}

// Stop detiene todas las cuentas regresivas (apagado del servidor).
func (uc *CheckoutUseCase) Stop() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for id, t := range uc.timers {
		t.Stop()
		delete(uc.timers, id)
	}
}

// Clear cancela los pagos pendientes de la sesión y detiene sus cuentas regresivas (logout o
// sesión vencida). No encola notificaciones: la sesión ya no existe.
func (uc *CheckoutUseCase) Clear(sessionID string) {
	ctx := context.Background()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for id := range uc.timers {
		p, err := uc.deps.Orders.GetPayment(ctx, id)
		if err != nil || p == nil || p.SessionID != sessionID || p.Status != entity.PaymentPending {
			continue
		}
		if err := uc.close(ctx, p, entity.PaymentCancelled, entity.OrderCancelled, nil); err != nil {
			uc.log.Error().Err(err).Str("payment_id", id).Msg("no se pudo cancelar el pago al cerrar la sesión")
			continue
		}
		uc.log.Info().Str("payment_id", id).Str("session_id", sessionID).Msg("pago cancelado por cierre de sesión")
	}
}

// expire se ejecuta al terminar la cuenta regresiva.
func (uc *CheckoutUseCase) expire(paymentID string) {
	ctx := context.Background()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.timers, paymentID)
	p, err := uc.deps.Orders.GetPayment(ctx, paymentID)
	if err != nil || p == nil {
		uc.log.Warn().Err(err).Str("payment_id", paymentID).Msg("pago no encontrado al vencer la cuenta regresiva")
		return
	}
	if p.Status != entity.PaymentPending {
		return
	}
	if err := uc.markExpired(ctx, p); err != nil {
		uc.log.Error().Err(err).Str("payment_id", paymentID).Msg("no se pudo expirar el pago")
	}
}

// ownPayment carga el pago verificando que pertenezca a la sesión. Requiere uc.mu.
func (uc *CheckoutUseCase) ownPayment(ctx context.Context, sessionID, paymentID string) (*entity.Payment, error) {
	p, err := uc.deps.Orders.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.SessionID != sessionID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *CheckoutUseCase) markExpired(ctx context.Context, p *entity.Payment) error {
	if err := uc.close(ctx, p, entity.PaymentExpired, entity.OrderExpired, nil); err != nil {
		return err
	}
	uc.log.Info().Str("payment_id", p.ID).Msg("pago expirado")
	uc.deps.Notifier.Warning(p.SessionID, "Tiempo de pago agotado", "El código QR expiró. Inicia el checkout nuevamente.")
	return nil
}

func (uc *CheckoutUseCase) markPaid(ctx context.Context, p *entity.Payment, now time.Time) error {
	if err := uc.close(ctx, p, entity.PaymentPaid, entity.OrderPaid, &now); err != nil {
		return err
	}
	order, err := uc.deps.Orders.GetOrder(ctx, p.OrderID)
	if err != nil {
		return err
	}
	if err := uc.deps.Cart.Clear(ctx, p.SessionID); err != nil {
		uc.log.Warn().Err(err).Str("session_id", p.SessionID).Msg("no se pudo vaciar el carrito tras el pago")
	}
	if order != nil && uc.deps.Backoffice != nil {
		if err := uc.deps.Backoffice.RecordSales(ctx, salesFromOrder(order, now)...); err != nil {
			uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo registrar la venta")
		}
	}
	uc.log.Info().Str("payment_id", p.ID).Str("order_id", p.OrderID).Msg("pago confirmado")
	uc.deps.Notifier.Success(p.SessionID, "Pago confirmado", "Tu pedido "+p.Reference+" fue pagado.")
	return nil
}

// close cambia el estado del pago y su pedido y detiene la cuenta regresiva. Requiere uc.mu.
func (uc *CheckoutUseCase) close(ctx context.Context, p *entity.Payment, ps entity.PaymentStatus, status entity.OrderStatus, paidAt *time.Time) error {
	p.Status = ps
	if err := uc.deps.Orders.SavePayment(ctx, p); err != nil {
		return fmt.Errorf("guardar pago: %w", err)
	}
	o, err := uc.deps.Orders.GetOrder(ctx, p.OrderID)
	if err != nil {
		return err
	}
	if o != nil {
		o.Status = status
		o.PaidAt = paidAt
		if err := uc.deps.Orders.SaveOrder(ctx, o); err != nil {
			return fmt.Errorf("guardar pedido: %w", err)
		}
	}
	if t, ok := uc.timers[p.ID]; ok {
		t.Stop()
		delete(uc.timers, p.ID)
	}
	return nil
}

func salesFromOrder(o *entity.Order, soldAt time.Time) []entity.SaleRecord {
	out := make([]entity.SaleRecord, 0, len(o.Items))
	for _, it := range o.Items {
		out = append(out, entity.SaleRecord{
			ID:          uuid.New().String(),
			OrderID:     o.ID,
			ProductID:   it.ID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Revenue:     o.UnitPrice(it).Mul(decimal.NewFromInt(int64(it.Quantity))),
			SoldAt:      soldAt,
		})
	}
	return out
}

// QRPayload contenido codificado en el QR de pago.
func QRPayload(reference, amount string) string {
	return "tunezone://pay?ref=" + reference + "&amount=" + amount
}

func reference(paymentID string) string {
	id := strings.ReplaceAll(paymentID, "-", "")
	if len(id) > 10 {
		id = id[:10]
	}
	return "TZ-" + strings.ToUpper(id)
}

func (uc *CheckoutUseCase) toPaymentResponse(p *entity.Payment, now time.Time) dto.PaymentResponse {
	out := dto.PaymentResponse{
		ID:               p.ID,
		OrderID:          p.OrderID,
		Reference:        p.Reference,
		Amount:           p.Amount,
		Status:           string(p.Status),
		ExpiresAt:        p.ExpiresAt,
		RemainingSeconds: int64(p.Remaining(now) / time.Second),
	}
	switch p.Status {
	case entity.PaymentPending:
		out.QRURL = "/api/payments/" + p.ID + "/qr"
		out.Message = "Escanea el código QR para pagar"
	case entity.PaymentPaid:
		out.RemainingSeconds = 0
		out.Message = "Pago confirmado"
	case entity.PaymentExpired:
		out.RemainingSeconds = 0
		out.Message = "Tiempo de pago agotado"
	case entity.PaymentCancelled:
		out.RemainingSeconds = 0
		out.Message = "Pago cancelado"
	}
	return out
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	c := appcart.ToCartResponse(o.Items, o.Role)
	return dto.OrderResponse{
		ID:        o.ID,
		Status:    string(o.Status),
		Reference: o.Reference,
		PaymentID: o.PaymentID,
		Items:     c.Items,
		Summary:   appcart.ToCartSummary(o.Totals, o.Role),
		Amount:    o.Amount,
		CreatedAt: o.CreatedAt,
		PaidAt:    o.PaidAt,
	}
}
