package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
)

var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrSessionNotFound, fiber.StatusUnauthorized, "SESSION_EXPIRED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrOutOfStock, fiber.StatusConflict, "OUT_OF_STOCK"},
	{domain.ErrEmptyCart, fiber.StatusConflict, "EMPTY_CART"},
	{domain.ErrPaymentClosed, fiber.StatusConflict, "PAYMENT_CLOSED"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrPaymentExpired, fiber.StatusGone, "PAYMENT_EXPIRED"},
}

// LocalError guarda el error interno para RequestLogger; nunca llega al cliente.
const LocalError = "internal_error"

const internalMessage = "error interno del servidor"

// writeError traduce los errores de dominio a HTTP. Lo desconocido es 500 INTERNAL con un mensaje
// genérico; el detalle queda en el log del request.
func writeError(c *fiber.Ctx, err error) error {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return c.Status(e.status).JSON(dto.ErrorResponse{Code: e.code, Message: e.err.Error()})
		}
	}
	c.Locals(LocalError, err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: internalMessage})
}
