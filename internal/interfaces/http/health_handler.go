package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck verifica una dependencia externa (DB, almacén de ubicaciones).
type HealthCheck func(ctx context.Context) error

// HealthHandler expone /health con el estado de cada dependencia.
type HealthHandler struct {
	service string
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthHandler construye el handler; checks puede ser nil.
func NewHealthHandler(service string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{service: service, checks: checks, timeout: 2 * time.Second}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	status := "ok"
	deps := fiber.Map{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			status = "degraded"
			deps[name] = err.Error()
			continue
		}
		deps[name] = "ok"
	}
	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{"status": status, "service": h.service, "checks": deps})
}
