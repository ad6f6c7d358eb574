package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/taskaroo/taskaroo/internal/models"
)

var (
	errInvalidFrequency    = errors.New("invalid frequency")
	errInvalidTimeOfDay    = errors.New("invalid time of day")
	errInvalidColor        = errors.New("invalid color")
	errInvalidReminderTime = errors.New("invalid reminder time")
	errMonthYearRequired   = errors.New("month and year are required")
	errMonthOutOfRange     = errors.New("month must be between 0 and 11")
	errCompletionsRequired = errors.New("habits are required")
	errHabitIDRequired     = errors.New("habit id is required")
	errCompletedRequired   = errors.New("completed flag is required")
	errDuplicateHabitID    = errors.New("duplicate habit id")
)

var dayLayouts = []string{"2006-01-02", time.RFC3339}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errors.New("date is required")
	}
	for _, layout := range dayLayouts {
		parsed, err := time.ParseInLocation(layout, trimmed, location)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid date")
}

// parseMonthYearQuery validates the calendar query before any storage access.
// The month index is zero-based, as the calendar client submits it.
func parseMonthYearQuery(rawMonth string, rawYear string) (int, int, error) {
	if strings.TrimSpace(rawMonth) == "" || strings.TrimSpace(rawYear) == "" {
		return 0, 0, errMonthYearRequired
	}
	monthIndex, err := strconv.Atoi(strings.TrimSpace(rawMonth))
	if err != nil {
		return 0, 0, errMonthOutOfRange
	}
	if monthIndex < 0 || monthIndex > 11 {
		return 0, 0, errMonthOutOfRange
	}
	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil || year < 1 {
		return 0, 0, errMonthYearRequired
	}
	return year, monthIndex, nil
}

func validateHabitPayload(payload habitPayload) error {
	if payload.Frequency != "" && !models.ValidFrequency(strings.ToLower(strings.TrimSpace(payload.Frequency))) {
		return errInvalidFrequency
	}
	if payload.TimeOfDay != "" && !models.ValidTimeOfDay(strings.ToLower(strings.TrimSpace(payload.TimeOfDay))) {
		return errInvalidTimeOfDay
	}
	if color := strings.TrimSpace(payload.Color); color != "" && !hexColorRegex.MatchString(color) {
		return errInvalidColor
	}
	if reminderTime := strings.TrimSpace(payload.ReminderTime); reminderTime != "" && !clockTimeRegex.MatchString(reminderTime) {
		return errInvalidReminderTime
	}
	return nil
}

func completionsFromPayload(entries []recordHabitEntry) ([]models.HabitCompletion, error) {
	if len(entries) == 0 {
		return nil, errCompletionsRequired
	}

	completions := make([]models.HabitCompletion, 0, len(entries))
	seen := make(map[uint]bool, len(entries))
	for _, entry := range entries {
		if entry.ID == 0 {
			return nil, errHabitIDRequired
		}
		if entry.Completed == nil {
			return nil, errCompletedRequired
		}
		if seen[entry.ID] {
			return nil, errDuplicateHabitID
		}
		seen[entry.ID] = true
		completions = append(completions, models.HabitCompletion{
			HabitID:   entry.ID,
			Completed: *entry.Completed,
		})
	}
	return completions, nil
}
