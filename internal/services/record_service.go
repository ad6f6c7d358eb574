package services

import (
	"errors"
	"time"

	"github.com/taskaroo/taskaroo/internal/models"
)

var (
	ErrRecordLoadFailed   = errors.New("load daily record failed")
	ErrRecordUpsertFailed = errors.New("upsert daily record failed")
	ErrNoCompletions      = errors.New("completions must not be empty")
	ErrDuplicateHabit     = errors.New("duplicate habit in completions")
)

type DailyRecordRepository interface {
	ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.DailyRecord, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyRecord, bool, error)
	Upsert(record *models.DailyRecord) error
}

type HabitLookupRepository interface {
	ListByUserAndIDs(userID uint, ids []uint) ([]models.Habit, error)
}

// CompletionView is a completion entry with its habit reference resolved to
// display data. Habit is nil when the referenced habit has been deleted.
type CompletionView struct {
	HabitID   uint          `json:"habit_id"`
	Completed bool          `json:"completed"`
	Habit     *models.Habit `json:"habit"`
}

type RecordView struct {
	ID          uint             `json:"id"`
	UserID      uint             `json:"user_id"`
	Date        time.Time        `json:"date"`
	Completions []CompletionView `json:"completions"`
	Score       float64          `json:"score"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type RecordService struct {
	records DailyRecordRepository
	habits  HabitLookupRepository
}

func NewRecordService(records DailyRecordRepository, habits HabitLookupRepository) *RecordService {
	return &RecordService{records: records, habits: habits}
}

// Score derives the day's completion fraction. The stored value is always
// recomputed from the completion set; client-supplied scores are ignored.
func Score(completions []models.HabitCompletion) float64 {
	if len(completions) == 0 {
		return 0
	}
	completed := 0
	for _, completion := range completions {
		if completion.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(completions))
}

func (service *RecordService) ListMonth(userID uint, year int, monthIndex int, location *time.Location) ([]RecordView, error) {
	monthStart, monthEnd := MonthRange(year, monthIndex, location)
	records, err := service.records.ListByUserRange(userID, monthStart, monthEnd)
	if err != nil {
		return nil, ErrRecordLoadFailed
	}
	return service.resolveHabits(userID, records)
}

// UpsertDay replaces the day's completion set wholesale and recomputes the
// score. The repository upsert is atomic on (user_id, date), so a concurrent
// submit for the same day cannot split into two rows; the later replace wins.
func (service *RecordService) UpsertDay(userID uint, day time.Time, completions []models.HabitCompletion, location *time.Location) (RecordView, error) {
	if len(completions) == 0 {
		return RecordView{}, ErrNoCompletions
	}
	seen := make(map[uint]bool, len(completions))
	for _, completion := range completions {
		if seen[completion.HabitID] {
			return RecordView{}, ErrDuplicateHabit
		}
		seen[completion.HabitID] = true
	}

	dayStart, dayEnd := DayRange(day, location)
	record := models.DailyRecord{
		UserID:      userID,
		Date:        dayStart,
		Completions: completions,
		Score:       Score(completions),
	}
	if err := service.records.Upsert(&record); err != nil {
		return RecordView{}, ErrRecordUpsertFailed
	}

	// re-read so the conflict-update path still returns the stored row
	stored, found, err := service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil || !found {
		return RecordView{}, ErrRecordLoadFailed
	}

	views, err := service.resolveHabits(userID, []models.DailyRecord{stored})
	if err != nil {
		return RecordView{}, err
	}
	return views[0], nil
}

// resolveHabits performs the read-side join from completion entries to habit
// display data. Deleted habits stay in the record with a nil habit.
func (service *RecordService) resolveHabits(userID uint, records []models.DailyRecord) ([]RecordView, error) {
	ids := make([]uint, 0)
	seen := make(map[uint]bool)
	for _, record := range records {
		for _, completion := range record.Completions {
			if !seen[completion.HabitID] {
				seen[completion.HabitID] = true
				ids = append(ids, completion.HabitID)
			}
		}
	}

	habits, err := service.habits.ListByUserAndIDs(userID, ids)
	if err != nil {
		return nil, ErrRecordLoadFailed
	}
	habitsByID := make(map[uint]models.Habit, len(habits))
	for _, habit := range habits {
		habitsByID[habit.ID] = habit
	}

	views := make([]RecordView, 0, len(records))
	for _, record := range records {
		view := RecordView{
			ID:          record.ID,
			UserID:      record.UserID,
			Date:        record.Date,
			Completions: make([]CompletionView, 0, len(record.Completions)),
			Score:       record.Score,
			CreatedAt:   record.CreatedAt,
			UpdatedAt:   record.UpdatedAt,
		}
		for _, completion := range record.Completions {
			resolved := CompletionView{
				HabitID:   completion.HabitID,
				Completed: completion.Completed,
			}
			if habit, ok := habitsByID[completion.HabitID]; ok {
				habitCopy := habit
				resolved.Habit = &habitCopy
			}
			view.Completions = append(view.Completions, resolved)
		}
		views = append(views, view)
	}
	return views, nil
}
