package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/taskaroo/taskaroo/internal/services"
)

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habits, err := handler.habitService.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch habits")
	}
	return c.JSON(habits)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateHabitPayload(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	habit, err := handler.habitService.Create(user.ID, habitInputFromPayload(payload))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNameRequired):
			return apiError(c, fiber.StatusBadRequest, "habit name is required")
		case errors.Is(err, services.ErrHabitNameTaken):
			return apiError(c, fiber.StatusBadRequest, "a habit with this name already exists")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateHabitPayload(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	habit, err := handler.habitService.Update(user.ID, habitID, habitInputFromPayload(payload))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNameRequired):
			return apiError(c, fiber.StatusBadRequest, "habit name is required")
		case errors.Is(err, services.ErrHabitNameTaken):
			return apiError(c, fiber.StatusBadRequest, "a habit with this name already exists")
		case errors.Is(err, services.ErrHabitNotFound):
			return apiError(c, fiber.StatusNotFound, "habit not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update habit")
		}
	}
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	if err := handler.habitService.Delete(user.ID, habitID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete habit")
	}
	return c.JSON(fiber.Map{"message": "habit deleted successfully"})
}

func habitInputFromPayload(payload habitPayload) services.HabitInput {
	return services.HabitInput{
		Name:         payload.Name,
		Description:  payload.Description,
		Color:        payload.Color,
		Frequency:    payload.Frequency,
		TimeOfDay:    payload.TimeOfDay,
		Reminder:     payload.Reminder,
		ReminderTime: payload.ReminderTime,
	}
}

func parseIDParam(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}
