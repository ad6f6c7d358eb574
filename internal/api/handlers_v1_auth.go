package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/taskaroo/taskaroo/internal/models"
	"github.com/taskaroo/taskaroo/internal/services"
)

// The /v1 surface is a separate token-based demo API over the same user
// store. It never sets cookies; clients carry the bearer token themselves.

func (handler *Handler) RegisterV1(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validateCredentials(credentialsInput{Name: input.Name, Email: input.Email, Password: input.Password}); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role != "" && !models.ValidRole(role) {
		return apiError(c, fiber.StatusBadRequest, "invalid role")
	}

	user, err := handler.authService.Register(services.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return apiError(c, fiber.StatusBadRequest, "email already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	token, err := handler.buildAuthToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate token")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

func (handler *Handler) LoginV1(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := handler.buildAuthToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate token")
	}
	return c.JSON(fiber.Map{"token": token})
}
