package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORS allows origins ending with the configured suffix; an empty suffix
// allows every origin (the service runs as an internal tool by default).
// Requests without an Origin header pass through untouched.
func CORS(allowedSuffix string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			return c.Next()
		}
		if allowedSuffix != "" && !strings.HasSuffix(strings.ToLower(origin), strings.ToLower(allowedSuffix)) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status": "error",
				"error": fiber.Map{
					"message":    "Not allowed by CORS",
					"statusCode": fiber.StatusForbidden,
					"details":    fiber.Map{},
				},
			})
		}
		c.Set("Access-Control-Allow-Origin", origin)
		c.Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
