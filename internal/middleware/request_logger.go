package middleware

import (
	"net/http"
	"time"

	"ai-assessment/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request after the handler chain has run.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := resolveChainError(c, c.Next())

		logger.Get().Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		)
		return err
	}
}

// resolveChainError writes the error response immediately so that outer
// middleware observe the final status code.
func resolveChainError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
		return c.SendStatus(http.StatusInternalServerError)
	}
	return nil
}
