package middleware

import (
	"strings"

	"amps-backend/internal/config"
	"amps-backend/internal/core/domain"
	"amps-backend/internal/pkg/jwt"
	"amps-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("name", claims.Name)
		c.Locals("role", claims.Role)
		c.Locals("assignedTeamID", claims.AssignedTeamID)
		c.Locals("linkedPlayerID", claims.LinkedPlayerID)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			if domain.Role(role) == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly allows only the Admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// ManagementOnly allows Admin and Master In-Charge
func ManagementOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleMasterInCharge)
}

// AttendanceTakers allows the roles that may mark attendance
func AttendanceTakers() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleMasterInCharge, domain.RoleCoach)
}
