package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tunezone-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubAuth resuelve tokens fijos: "<rol>" abre una sesión con ese rol, "vencido" simula una
// sesión expirada y cualquier otro valor es un token inválido.
type stubAuth struct{}

func (stubAuth) Authenticate(_ context.Context, token string) (*entity.Session, error) {
	switch token {
	case "vencido":
		return nil, domain.ErrSessionNotFound
	case "dealer", "admin", "guest", "sin-rol":
		role := entity.Role(token)
		if token == "sin-rol" {
			role = ""
		}
		return &entity.Session{ID: "sess-" + token, User: entity.User{Email: token + "@tunezone.com", Role: role}}, nil
	default:
		return nil, domain.ErrUnauthorized
	}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para restaurar la sesión y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(stubAuth{}),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireRole_DealerAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp("dealer", "admin")
	resp := doRequest(t, app, "bearer dealer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "el esquema Bearer no distingue mayúsculas")
}

func TestRequireRole_InvitadoBloqueado(t *testing.T) {
	app := buildTestApp("dealer", "admin")
	resp := doRequest(t, app, "Bearer guest")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_SesionSinRol_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer sin-rol")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_Errores(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"sin esquema", "admin", "INVALID_TOKEN"},
		{"esquema distinto", "Basic admin", "INVALID_TOKEN"},
		{"token inválido", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"sesión vencida", "Bearer vencido", "SESSION_EXPIRED"},
	}
	app := buildTestApp("admin")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, tc.header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.code)
		})
	}
}

func TestAuthMiddleware_CargaLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(stubAuth{}), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"session_id": apphttp.GetSessionID(c),
			"email":      apphttp.GetEmail(c),
			"role":       apphttp.GetRole(c),
			"has_sess":   apphttp.GetSession(c) != nil,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer dealer")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "sess-dealer", body["session_id"])
	assert.Equal(t, "dealer@tunezone.com", body["email"])
	assert.Equal(t, "dealer", body["role"])
	assert.Equal(t, true, body["has_sess"])
}
