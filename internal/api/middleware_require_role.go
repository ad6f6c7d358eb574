package api

import "github.com/gofiber/fiber/v2"

// RequireRoles gates a route on an enumerated set of roles. There is no role
// hierarchy: an admin is rejected from superadmin routes and vice versa.
func (handler *Handler) RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		if !allowed[user.Role] {
			return apiError(c, fiber.StatusForbidden, "access denied: insufficient permissions")
		}
		return c.Next()
	}
}
