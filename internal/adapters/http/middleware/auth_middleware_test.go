package middleware

import (
	"net/http/httptest"
	"testing"

	"amps-backend/internal/config"
	"amps-backend/internal/core/domain"
	"amps-backend/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/open", AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userID").(string))
	})
	app.Get("/admin", AuthMiddleware(cfg), AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func token(t *testing.T, role domain.Role, secret string) string {
	t.Helper()

	tok, err := jwt.GenerateAccessToken("u1", "user@school.com", "User", string(role), "", "", secret, 60)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddlewareRequiresToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	app := testApp(t, cfg)

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	app := testApp(t, cfg)

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, domain.RoleCoach, "test-secret"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	app := testApp(t, cfg)

	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, domain.RoleAdmin, "attacker-secret"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRoleMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	app := testApp(t, cfg)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, domain.RoleCoach, "test-secret"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, domain.RoleAdmin, "test-secret"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
