package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tunezone-api/internal/application/checkout"
	"github.com/jhoicas/tunezone-api/internal/application/dto"
)

// CheckoutHandler maneja el pago QR simulado, los pedidos y sus recibos.
type CheckoutHandler struct {
	uc *checkout.CheckoutUseCase
}

// NewCheckoutHandler construye el handler de checkout.
func NewCheckoutHandler(uc *checkout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Start godoc
// @Summary      Iniciar checkout
// @Description  Crea el pedido con el snapshot del carrito y un pago QR con cuenta regresiva. Solo distribuidores y administradores.
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.CheckoutResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Start(c *fiber.Ctx) error {
	out, err := h.uc.Start(c.Context(), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Poll godoc
// @Summary      Consultar estado del pago
// @Description  Cada consulta puede confirmar el pago simulado. Vencido el plazo el pago pasa a expired.
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *CheckoutHandler) Poll(c *fiber.Ctx) error {
	out, err := h.uc.Poll(c.Context(), GetSessionID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// QR godoc
// @Summary      Imagen QR del pago
// @Tags         checkout
// @Security     Bearer
// @Produce      png
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/qr [get]
func (h *CheckoutHandler) QR(c *fiber.Ctx) error {
	png, err := h.uc.QRCode(c.Context(), GetSessionID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(png)
}

// Cancel godoc
// @Summary      Cancelar pago pendiente
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/cancel [post]
func (h *CheckoutHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), GetSessionID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Orders godoc
// @Summary      Pedidos de la sesión
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *CheckoutHandler) Orders(c *fiber.Ctx) error {
	out, err := h.uc.Orders(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		out = []dto.OrderResponse{}
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo PDF de un pedido pagado
// @Tags         checkout
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.Context(), GetSessionID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdf)
}
