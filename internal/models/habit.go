package models

import "time"

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

const DefaultHabitColor = "#FF7601"

type Habit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_user_habit_name" json:"user_id"`
	Name         string    `gorm:"not null;uniqueIndex:uidx_user_habit_name" json:"name"`
	Description  string    `json:"description"`
	Color        string    `gorm:"not null;default:#FF7601" json:"color"`
	Frequency    string    `gorm:"not null;default:daily" json:"frequency"`
	TimeOfDay    string    `gorm:"not null;default:morning" json:"time_of_day"`
	Reminder     bool      `gorm:"not null;default:false" json:"reminder"`
	ReminderTime string    `json:"reminder_time"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

func ValidTimeOfDay(timeOfDay string) bool {
	switch timeOfDay {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening:
		return true
	}
	return false
}
