package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) UserFeature(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Welcome %s, this is a user-only feature.", user.Name)})
}

func (handler *Handler) AdminFeature(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Hello %s, this is an admin-only feature.", user.Name)})
}

func (handler *Handler) AdminReports(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": "Confidential Admin Reports"})
}

func (handler *Handler) SuperAdminStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": "Confidential Super-Admin Reports"})
}
