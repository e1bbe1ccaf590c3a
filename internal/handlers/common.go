package handlers

import (
	"strings"

	domainerrors "credvia/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// notFoundForRoute picks the not-found error matching the resource the
// route addresses, so malformed ids produce the same code as unknown ones.
func notFoundForRoute(c *fiber.Ctx) *domainerrors.DomainError {
	path := c.Path()
	switch {
	case strings.Contains(path, "/documents"):
		return domainerrors.ErrDocumentNotFound
	case strings.Contains(path, "/users"):
		return domainerrors.ErrUserNotFound
	case strings.Contains(path, "/payments"):
		return domainerrors.ErrPaymentNotFound
	case strings.Contains(path, "/steps"):
		return domainerrors.ErrApplicationNotFound
	default:
		return domainerrors.ErrApplicationNotFound
	}
}
