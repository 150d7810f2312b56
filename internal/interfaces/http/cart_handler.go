package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tunezone-api/internal/application/cart"
	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// CartHandler expone el carrito de la sesión.
type CartHandler struct {
	uc *cart.CartUseCase
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(uc *cart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Carrito actual con totales
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.Get(c.Context(), GetSessionID(c), role(c)))
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Description  Si ya existe suma la cantidad. quantity <= 0 usa min_order_qty; el resultado se acota a max_order_qty.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	return h.reply(c)(h.uc.Add(c.Context(), GetSessionID(c), role(c), in))
}

// Update godoc
// @Summary      Fijar cantidad de una línea
// @Description  Cantidad menor a 1 elimina la línea.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del producto"
// @Param        body  body  dto.UpdateCartItemRequest  true  "quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	return h.reply(c)(h.uc.UpdateQuantity(c.Context(), GetSessionID(c), role(c), c.Params("id"), in.Quantity))
}

// Increment godoc
// @Summary      Sumar una unidad
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{id}/increment [post]
func (h *CartHandler) Increment(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.Increment(c.Context(), GetSessionID(c), role(c), c.Params("id")))
}

// Decrement godoc
// @Summary      Restar una unidad
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{id}/decrement [post]
func (h *CartHandler) Decrement(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.Decrement(c.Context(), GetSessionID(c), role(c), c.Params("id")))
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.Remove(c.Context(), GetSessionID(c), role(c), c.Params("id")))
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context(), GetSessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) reply(c *fiber.Ctx) func(*dto.CartResponse, error) error {
	return func(out *dto.CartResponse, err error) error {
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

func role(c *fiber.Ctx) entity.Role {
	return entity.Role(GetRole(c))
}
