package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/Ecommerce-api/pkg/jwt"
)

const testSecret = "secreto-de-test"

func newProtectedApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(testSecret)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		return c.JSON(fiber.Map{
			"user_id":    p.UserID,
			"company_id": p.CompanyID,
			"role":       string(p.Role),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func signToken(t *testing.T, userID, companyID, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, userID, companyID, role, "test", 15)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newProtectedApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newProtectedApp(t)
	for _, header := range []string{"Basic abc123", "Bearer", "Bearer  "} {
		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app := newProtectedApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", "company-9", "empresa"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := newProtectedApp(t)
	token, err := jwt.Generate("otro-secreto", "user-1", "", "cliente", "test", 15)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	now := time.Now().Add(-2 * time.Hour)
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(15 * time.Minute)),
		},
		UserID: "user-1",
		Role:   "cliente",
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	app := newProtectedApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UnknownRole(t *testing.T) {
	app := newProtectedApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", "", "superadmin"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name       string
		tokenRole  string
		allowed    []entity.Role
		wantStatus int
	}{
		{"rol permitido", "admin", []entity.Role{entity.RoleAdmin}, fiber.StatusOK},
		{"uno de varios", "empresa", []entity.Role{entity.RoleAdmin, entity.RoleEmpresa}, fiber.StatusOK},
		{"rol insuficiente", "cliente", []entity.Role{entity.RoleAdmin}, fiber.StatusForbidden},
		{"cliente en ruta de empresa", "cliente", []entity.Role{entity.RoleEmpresa}, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newProtectedApp(t, RequireRole(tc.allowed...))
			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", "", tc.tokenRole))
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetPrincipal_FromClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		assert.Equal(t, "user-7", p.UserID)
		assert.Equal(t, "company-3", p.CompanyID)
		assert.Equal(t, entity.RoleEmpresa, p.Role)
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-7", "company-3", "empresa"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
