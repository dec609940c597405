package handler

import (
	"context"
	"time"

	"ai-assessment/internal/domain"
	"ai-assessment/internal/dto"
	"ai-assessment/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports whether the record store (and cache, when configured) is reachable.
type HealthHandler struct {
	repo  domain.AssessmentRepository
	cache domain.Cache
}

// NewHealthHandler accepts a nil cache.
func NewHealthHandler(repo domain.AssessmentRepository, cache domain.Cache) *HealthHandler {
	return &HealthHandler{repo: repo, cache: cache}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "healthy", Database: "connected"}
	status := fiber.StatusOK

	if err := h.repo.Ping(ctx); err != nil {
		logger.Get().Error("Health check failed: record store unreachable", zap.Error(err))
		resp.Status, resp.Database = "unhealthy", "disconnected"
		status = fiber.StatusServiceUnavailable
	}

	if h.cache != nil {
		resp.Cache = "connected"
		// cache loss degrades the service but does not make it unhealthy
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Health check: cache unreachable", zap.Error(err))
			resp.Cache = "disconnected"
		}
	}

	return c.Status(status).JSON(resp)
}
