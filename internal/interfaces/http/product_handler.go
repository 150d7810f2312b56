package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tunezone-api/internal/application/catalog"
	"github.com/jhoicas/tunezone-api/internal/application/dto"
)

// ProductHandler expone el catálogo.
type ProductHandler struct {
	uc *catalog.CatalogUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Description  Búsqueda, filtros y orden. El precio mayorista solo se incluye para distribuidores y administradores.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q           query  string  false  "texto libre (nombre y descripción)"
// @Param        category    query  string  false  "categoría"
// @Param        subcategory query  string  false  "subcategoría"
// @Param        brand       query  string  false  "marca"
// @Param        min_price   query  number  false  "precio mínimo (inclusivo)"
// @Param        max_price   query  number  false  "precio máximo (inclusivo)"
// @Param        min_rating  query  number  false  "rating mínimo"
// @Param        in_stock    query  bool    false  "solo con stock"
// @Param        tags        query  string  false  "tags separados por coma (todas requeridas)"
// @Param        sort        query  string  false  "name | price | rating | stock"
// @Param        order       query  string  false  "asc | desc"
// @Param        limit       query  int     false  "default 20, máx 100"
// @Param        offset      query  int     false  "default 0"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de búsqueda inválidos"})
	}
	var bad bool
	if q.MinPrice, bad = queryDecimal(c, "min_price"); bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "min_price debe ser numérico"})
	}
	if q.MaxPrice, bad = queryDecimal(c, "max_price"); bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "max_price debe ser numérico"})
	}
	q.Tags = splitList(c.Query("tags"))
	if e := validateStruct(q); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.List(c.Context(), role(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Facets godoc
// @Summary      Valores disponibles para filtros
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FacetsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products/facets [get]
func (h *ProductHandler) Facets(c *fiber.Ctx) error {
	out, err := h.uc.Facets(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), role(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// queryDecimal lee un decimal opcional; bad=true si el valor no es numérico.
func queryDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, true
	}
	return &d, false
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
