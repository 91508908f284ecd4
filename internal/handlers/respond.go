package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mobility-service/internal/services"
)

// statusFromError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an unexpected store failure.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{
		"error":   true,
		"message": message,
		"details": err.Error(),
	})
}
