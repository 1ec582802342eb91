package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, postgres: postgres, redis: redis}
}

// Check handles GET /api/health, reporting dependency readiness.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	deps := fiber.Map{}
	healthy := true

	if err := h.postgres.Ping(ctx); err != nil {
		deps["postgres"] = err.Error()
		healthy = false
	} else {
		deps["postgres"] = "ok"
	}

	if err := h.redis.Ping(ctx); err != nil {
		// redis is optional; stats fall back to the database
		deps["redis"] = err.Error()
	} else {
		deps["redis"] = "ok"
	}

	payload := fiber.Map{
		"service":      h.serviceName,
		"version":      h.version,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"dependencies": deps,
	}

	if !healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.APIResponse{
			Success: false,
			Message: "one or more dependencies unavailable",
			Data:    payload,
			Error:   "DEPENDENCY_UNAVAILABLE",
		})
	}
	return c.JSON(dto.OK("API is running", payload))
}
