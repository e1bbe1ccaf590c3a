// Package middleware provides request processing middleware for the fiber
// app: bearer-token authentication and the role policy gate.
package middleware

import (
	"strings"

	"credvia/internal/models"
	"credvia/internal/services/auth"
	"credvia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// AuthMiddleware validates JWT bearer tokens and attaches the user claims
// to the request context. Tokens whose version lags the user's current
// version are treated as revoked.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handler is the fiber middleware function.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return utils.Unauthorized(c, "invalid token")
	}

	currentVersion, err := m.authService.GetUserTokenVersion(c.Context(), claims.UserID)
	if err != nil {
		return utils.Unauthorized(c, "invalid token")
	}
	if claims.TokenVersion != currentVersion {
		return utils.Unauthorized(c, "session expired")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext returns the authenticated claims, or nil when the
// request did not pass the auth middleware.
func ClaimsFromContext(c *fiber.Ctx) *models.UserClaims {
	claims, _ := c.Locals(claimsKey).(*models.UserClaims)
	return claims
}

// RequireRoles returns a middleware that admits only the listed roles.
// Routes declare their required capability set once, here, instead of
// re-checking roles inside handlers.
func RequireRoles(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromContext(c)
		if claims == nil {
			return utils.Unauthorized(c, "")
		}
		if _, ok := allowed[claims.Role]; !ok {
			return utils.Error(c, fiber.StatusForbidden, "FORBIDDEN", "insufficient permissions")
		}
		return c.Next()
	}
}

// ReviewerRoles is the capability set for application and document review.
var ReviewerRoles = []models.Role{
	models.RoleConsultant,
	models.RoleAdmin,
	models.RoleSuperAdmin,
}

// AdminRoles is the capability set for user management.
var AdminRoles = []models.Role{
	models.RoleAdmin,
	models.RoleSuperAdmin,
}
