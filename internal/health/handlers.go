package health

import (
	"fmt"

	"everbright-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds dependencies for health endpoints.
type Handlers struct {
	Service  *Service
	AdminKey string // empty disables /reset
}

// Dashboard GET / — a one-line plain-text liveness page.
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	snap := h.Service.Collect()
	return c.SendString(fmt.Sprintf(
		"everbright-report-api: %s, up %ds, %d requests served\n",
		snap.Status, snap.Runtime.UptimeSeconds, snap.Traffic.TotalRequests,
	))
}

// Reset GET /reset — zeroes the traffic counters. Requires query
// key=HEALTH_ADMIN_KEY; with no key configured every request is refused.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" || key != h.AdminKey {
		return response.Error(c, "Unauthorized", fiber.StatusForbidden, nil)
	}
	h.Service.Reset()
	return response.Success(c, "Stats reset successfully", fiber.Map{"success": true}, nil)
}

// JSON GET /health/json — full health snapshot.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	snap := h.Service.Collect()
	return c.JSON(map[string]interface{}{
		"service": "everbright-report-api",
		"status":  snap.Status,
		"runtime": snap.Runtime,
		"traffic": snap.Traffic,
	})
}
