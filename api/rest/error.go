package rest

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"transformer/shared/apperror"
)

// ErrorHandler maps validation and pipeline failures onto plain-text HTTP
// responses: client-attributable kinds answer 400, everything else 500.
// A failing request never takes the process down.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "internal server error"

		var appErr *apperror.Error
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &appErr):
			status = appErr.StatusCode()
			message = appErr.Message
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		if status >= fiber.StatusInternalServerError {
			logger.Error("Request failed", zap.Int("status", status), zap.Error(err))
		} else {
			logger.Warn("Request rejected", zap.Int("status", status), zap.Error(err))
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		return c.Status(status).SendString(message)
	}
}
