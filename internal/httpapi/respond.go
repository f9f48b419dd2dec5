package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tutorhub/internal/apperr"
)

// fail maps the error taxonomy onto HTTP statuses and renders the original
// server's {"error": ...} shape
func (s *Server) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperr.KindValidation:
			status = fiber.StatusBadRequest
		case apperr.KindNotFound:
			status = fiber.StatusNotFound
		case apperr.KindConflict:
			status = fiber.StatusConflict
		case apperr.KindForbidden:
			status = fiber.StatusForbidden
		case apperr.KindInvalidState:
			status = fiber.StatusConflict
		case apperr.KindStorage:
			status = fiber.StatusInternalServerError
		}
	}

	if status >= fiber.StatusInternalServerError {
		s.logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
		// Storage details stay out of the response body
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": appErr.Msg})
}

// validationFail renders validator.v10 field errors
func (s *Server) validationFail(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	fields := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}
