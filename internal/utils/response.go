package utils

import (
	"log"

	domainerrors "credvia/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Success writes the standard success envelope.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Error writes the standard error envelope.
func Error(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// DomainError maps any error to the envelope. Domain errors keep their code
// and status; everything else is folded into a generic 500 so no internal
// detail leaks to the caller.
func DomainError(c *fiber.Ctx, err error) error {
	if de, ok := domainerrors.AsDomain(err); ok {
		return Error(c, de.Status, de.Code, de.Message)
	}
	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	internal := domainerrors.ErrInternal
	return Error(c, internal.Status, internal.Code, internal.Message)
}

// ValidationError writes a VALIDATION_ERROR envelope with a field message.
func ValidationError(c *fiber.Ctx, message string) error {
	ve := domainerrors.ErrValidation
	if message == "" {
		message = ve.Message
	}
	return Error(c, ve.Status, ve.Code, message)
}

// Unauthorized writes an UNAUTHORIZED envelope.
func Unauthorized(c *fiber.Ctx, message string) error {
	ue := domainerrors.ErrUnauthorized
	if message == "" {
		message = ue.Message
	}
	return Error(c, ue.Status, ue.Code, message)
}

// BadRequest writes a VALIDATION_ERROR envelope for malformed bodies.
func BadRequest(c *fiber.Ctx, message string) error {
	return ValidationError(c, message)
}
