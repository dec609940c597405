package middleware

import (
	"errors"
	"net/http"

	"ai-assessment/internal/domain"
	"ai-assessment/internal/dto"
	"ai-assessment/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	MessageValidationFailed = "验证失败"
	MessageInternalError    = "服务器内部错误"
)

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(dto.Fail(MessageValidationFailed, validationErrs))
		}

		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(http.StatusBadRequest).JSON(dto.Fail(MessageValidationFailed, domain.ValidationErrors{validationErr}))
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.String("path", c.Path()),
				zap.Error(domainErr.Cause),
			}
			for k, v := range domainErr.Context {
				fields = append(fields, zap.Any(k, v))
			}

			if statusCode >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
				return c.Status(statusCode).JSON(dto.Fail(MessageInternalError, nil))
			}
			log.Warn("Domain error occurred", fields...)
			return c.Status(statusCode).JSON(dto.Fail(domainErr.Message, nil))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
				zap.String("path", c.Path()),
			)
			message := fiberErr.Message
			if fiberErr.Code >= http.StatusInternalServerError {
				message = MessageInternalError
			}
			return c.Status(fiberErr.Code).JSON(dto.Fail(message, nil))
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(dto.Fail(MessageInternalError, nil))
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation,
		domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
