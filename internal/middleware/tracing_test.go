package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracing_SetsHeaderAndLocal(t *testing.T) {
	app := fiber.New()
	app.Use(Tracing())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen = GetTraceID(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get("X-Trace-Id")
	assert.Equal(t, header, seen)
	_, err = uuid.Parse(header)
	assert.NoError(t, err)
}

func TestGetTraceID_MissingMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Empty(t, GetTraceID(c))
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
