package handlers

import (
	domainerrors "credvia/internal/errors"
	"credvia/internal/repositories"
	"credvia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	healthRepo repositories.HealthRepository
}

func NewHealthHandler(healthRepo repositories.HealthRepository) *HealthHandler {
	return &HealthHandler{healthRepo: healthRepo}
}

// Check probes the entity store and reports coarse counts and round-trip
// latency. It only fails on infrastructure, never on business state.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	stats, latency, err := h.healthRepo.Probe(c.Context())
	if err != nil {
		hc := domainerrors.ErrHealthCheckFailed
		return utils.Error(c, hc.Status, hc.Code, hc.Message)
	}
	return utils.Success(c, fiber.Map{
		"status":     "ok",
		"counts":     stats,
		"latency_ms": latency.Milliseconds(),
	})
}
