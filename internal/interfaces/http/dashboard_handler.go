package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tunezone-api/internal/application/dashboard"
	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// DashboardHandler expone las pestañas del panel.
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// RequireTab valida que el rol de la sesión pueda ver la pestaña. Debe usarse DESPUÉS de AuthMiddleware.
func RequireTab(tab dashboard.Tab) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r := entity.Role(GetRole(c))
		if r == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la sesión no tiene rol"})
		}
		if !tab.Allowed(r) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la pestaña " + string(tab) + " no está disponible para el rol " + string(r)})
		}
		return c.Next()
	}
}

// Overview godoc
// @Summary      Resumen de todas las pestañas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverviewDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboards/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Inventario: stock, valorización y bajo stock
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryDashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboards/inventory [get]
func (h *DashboardHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sales godoc
// @Summary      Ventas: hoy, mes, crecimiento y top productos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesDashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboards/sales [get]
func (h *DashboardHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Warranty godoc
// @Summary      Garantías
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WarrantyDashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboards/warranty [get]
func (h *DashboardHandler) Warranty(c *fiber.Ctx) error {
	out, err := h.uc.Warranty(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Support godoc
// @Summary      Soporte
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupportDashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboards/support [get]
func (h *DashboardHandler) Support(c *fiber.Ctx) error {
	out, err := h.uc.Support(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
