package models

import "time"

// HabitCompletion is one habit's done flag inside a day's record. The habit id
// is a plain reference into the habit registry; rows survive habit deletion.
type HabitCompletion struct {
	HabitID   uint `json:"habit_id"`
	Completed bool `json:"completed"`
}

// DailyRecord aggregates one user's habit completions for one calendar day.
// Score is derived from Completions on every write and never set by callers.
type DailyRecord struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"not null;uniqueIndex:uidx_user_record_date" json:"user_id"`
	Date        time.Time         `gorm:"type:date;not null;uniqueIndex:uidx_user_record_date" json:"date"`
	Completions []HabitCompletion `gorm:"serializer:json" json:"completions"`
	Score       float64           `gorm:"not null;default:0" json:"score"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
