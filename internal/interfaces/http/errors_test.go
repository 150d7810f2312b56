package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/pkg/logger"
)

func TestWriteError_InternoNoExponeDetalle(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(logger.New(logger.Config{Output: &buf})))
	app.Get("/falla", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("listar productos: dial tcp 10.0.0.5:5432: connection refused"))
	})
	app.Get("/conflicto", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("checkout: %w", domain.ErrEmptyCart))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/falla", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, internalMessage, body.Message)
	assert.NotContains(t, body.Message, "10.0.0.5")

	assert.Contains(t, buf.String(), "10.0.0.5:5432", "el detalle queda en el log")
	assert.Contains(t, buf.String(), `"level":"error"`)

	resp, err = app.Test(httptest.NewRequest("GET", "/conflicto", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body = dto.ErrorResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "EMPTY_CART", body.Code)
}
