package services

import (
	"errors"
	"strings"

	"github.com/taskaroo/taskaroo/internal/models"
)

var (
	ErrHabitNameTaken    = errors.New("a habit with this name already exists")
	ErrHabitNotFound     = errors.New("habit not found")
	ErrHabitNameRequired = errors.New("habit name is required")
)

type HabitInput struct {
	Name         string
	Description  string
	Color        string
	Frequency    string
	TimeOfDay    string
	Reminder     bool
	ReminderTime string
}

type HabitRegistryRepository interface {
	ListByUser(userID uint) ([]models.Habit, error)
	ExistsByUserAndName(userID uint, name string) (bool, error)
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	Delete(habit *models.Habit) error
}

type HabitService struct {
	habits HabitRegistryRepository
}

func NewHabitService(habits HabitRegistryRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) List(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

func (service *HabitService) Create(userID uint, input HabitInput) (models.Habit, error) {
	input = normalizeHabitInput(input)
	if input.Name == "" {
		return models.Habit{}, ErrHabitNameRequired
	}

	taken, err := service.habits.ExistsByUserAndName(userID, input.Name)
	if err != nil {
		return models.Habit{}, err
	}
	if taken {
		return models.Habit{}, ErrHabitNameTaken
	}

	habit := models.Habit{
		UserID:       userID,
		Name:         input.Name,
		Description:  input.Description,
		Color:        input.Color,
		Frequency:    input.Frequency,
		TimeOfDay:    input.TimeOfDay,
		Reminder:     input.Reminder,
		ReminderTime: input.ReminderTime,
	}
	if err := service.habits.Create(&habit); err != nil {
		// the (user_id, name) unique index backstops a concurrent create
		return models.Habit{}, ErrHabitNameTaken
	}
	return habit, nil
}

func (service *HabitService) Update(userID uint, habitID uint, input HabitInput) (models.Habit, error) {
	input = normalizeHabitInput(input)
	if input.Name == "" {
		return models.Habit{}, ErrHabitNameRequired
	}

	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}

	if input.Name != habit.Name {
		taken, err := service.habits.ExistsByUserAndName(userID, input.Name)
		if err != nil {
			return models.Habit{}, err
		}
		if taken {
			return models.Habit{}, ErrHabitNameTaken
		}
	}

	habit.Name = input.Name
	habit.Description = input.Description
	habit.Color = input.Color
	habit.Frequency = input.Frequency
	habit.TimeOfDay = input.TimeOfDay
	habit.Reminder = input.Reminder
	habit.ReminderTime = input.ReminderTime
	if err := service.habits.Save(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Delete removes the habit when owned by userID. Daily records keep any
// completion entries that reference the deleted habit.
func (service *HabitService) Delete(userID uint, habitID uint) error {
	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrHabitNotFound
	}
	return service.habits.Delete(&habit)
}

func normalizeHabitInput(input HabitInput) HabitInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Color = strings.TrimSpace(input.Color)
	if input.Color == "" {
		input.Color = models.DefaultHabitColor
	}
	input.Frequency = strings.ToLower(strings.TrimSpace(input.Frequency))
	if input.Frequency == "" {
		input.Frequency = models.FrequencyDaily
	}
	input.TimeOfDay = strings.ToLower(strings.TrimSpace(input.TimeOfDay))
	if input.TimeOfDay == "" {
		input.TimeOfDay = models.TimeOfDayMorning
	}
	input.ReminderTime = strings.TrimSpace(input.ReminderTime)
	return input
}
