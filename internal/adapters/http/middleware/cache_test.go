package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheControlSetsHeaderOnGet(t *testing.T) {
	app := fiber.New()
	app.Use(CacheControl(time.Minute))
	app.Get("/teams", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/teams", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/teams", nil))
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=60", resp.Header.Get(fiber.HeaderCacheControl))

	// Mutations are never cacheable
	resp, err = app.Test(httptest.NewRequest("POST", "/teams", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(fiber.HeaderCacheControl))

	// Neither are error responses
	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(fiber.HeaderCacheControl))
}

func TestPrivateCacheControl(t *testing.T) {
	app := fiber.New()
	app.Use(PrivateCacheControl(30 * time.Second))
	app.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, "private, max-age=30", resp.Header.Get(fiber.HeaderCacheControl))
}
