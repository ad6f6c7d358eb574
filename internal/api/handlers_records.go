package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/taskaroo/taskaroo/internal/services"
)

func (handler *Handler) GetDailyRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	year, monthIndex, err := parseMonthYearQuery(c.Query("month"), c.Query("year"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	records, err := handler.recordService.ListMonth(user.ID, year, monthIndex, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch daily records")
	}
	return c.JSON(records)
}

func (handler *Handler) UpsertDailyRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := recordPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	day, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	completions, err := completionsFromPayload(payload.Habits)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	record, err := handler.recordService.UpsertDay(user.ID, day, completions, handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoCompletions), errors.Is(err, services.ErrDuplicateHabit):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save daily record")
		}
	}
	return c.JSON(record)
}
