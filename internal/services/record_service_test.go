package services

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/taskaroo/taskaroo/internal/models"
)

type dailyRecordRepositoryStub struct {
	records map[string]models.DailyRecord
	nextID  uint
}

func newDailyRecordRepositoryStub() *dailyRecordRepositoryStub {
	return &dailyRecordRepositoryStub{records: make(map[string]models.DailyRecord), nextID: 1}
}

func recordKey(userID uint, day time.Time) string {
	return fmt.Sprintf("%d|%s", userID, day.Format("2006-01-02"))
}

func (stub *dailyRecordRepositoryStub) ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.DailyRecord, error) {
	listed := make([]models.DailyRecord, 0)
	for _, record := range stub.records {
		if record.UserID != userID {
			continue
		}
		if record.Date.Before(rangeStart) || !record.Date.Before(rangeEnd) {
			continue
		}
		listed = append(listed, record)
	}
	return listed, nil
}

func (stub *dailyRecordRepositoryStub) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyRecord, bool, error) {
	record, ok := stub.records[recordKey(userID, dayStart)]
	if !ok {
		return models.DailyRecord{}, false, nil
	}
	return record, true, nil
}

func (stub *dailyRecordRepositoryStub) Upsert(record *models.DailyRecord) error {
	key := recordKey(record.UserID, record.Date)
	if existing, ok := stub.records[key]; ok {
		existing.Completions = record.Completions
		existing.Score = record.Score
		stub.records[key] = existing
		return nil
	}
	record.ID = stub.nextID
	stub.nextID++
	stub.records[key] = *record
	return nil
}

func newRecordServiceWithHabits(habits ...models.Habit) (*RecordService, *dailyRecordRepositoryStub) {
	habitStub := newHabitRepositoryStub()
	for _, habit := range habits {
		habitCopy := habit
		_ = habitStub.Create(&habitCopy)
	}
	recordStub := newDailyRecordRepositoryStub()
	return NewRecordService(recordStub, habitStub), recordStub
}

func TestUpsertDayDerivesScore(t *testing.T) {
	service, _ := newRecordServiceWithHabits(
		models.Habit{UserID: 1, Name: "Meditate"},
		models.Habit{UserID: 1, Name: "Run"},
	)

	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	record, err := service.UpsertDay(1, day, []models.HabitCompletion{
		{HabitID: 1, Completed: true},
		{HabitID: 2, Completed: false},
	}, time.UTC)
	if err != nil {
		t.Fatalf("UpsertDay: %v", err)
	}
	if record.Score != 0.5 {
		t.Fatalf("score = %v, want 0.5", record.Score)
	}
}

func TestUpsertDayReplacesCompletionsWholesale(t *testing.T) {
	service, stub := newRecordServiceWithHabits(
		models.Habit{UserID: 1, Name: "Meditate"},
		models.Habit{UserID: 1, Name: "Run"},
		models.Habit{UserID: 1, Name: "Read"},
	)

	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	first := []models.HabitCompletion{
		{HabitID: 1, Completed: true},
		{HabitID: 2, Completed: true},
	}
	if _, err := service.UpsertDay(1, day, first, time.UTC); err != nil {
		t.Fatalf("first UpsertDay: %v", err)
	}

	second := []models.HabitCompletion{{HabitID: 3, Completed: false}}
	record, err := service.UpsertDay(1, day, second, time.UTC)
	if err != nil {
		t.Fatalf("second UpsertDay: %v", err)
	}

	if len(record.Completions) != 1 || record.Completions[0].HabitID != 3 {
		t.Fatalf("expected replacement, not merge: %+v", record.Completions)
	}
	if record.Score != 0 {
		t.Fatalf("score = %v, want 0", record.Score)
	}
	if len(stub.records) != 1 {
		t.Fatalf("expected one stored record, got %d", len(stub.records))
	}
}

func TestUpsertDayIsIdempotent(t *testing.T) {
	service, stub := newRecordServiceWithHabits(
		models.Habit{UserID: 1, Name: "Meditate"},
	)

	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	completions := []models.HabitCompletion{{HabitID: 1, Completed: true}}

	if _, err := service.UpsertDay(1, day, completions, time.UTC); err != nil {
		t.Fatalf("first UpsertDay: %v", err)
	}
	snapshot := make(map[string]models.DailyRecord, len(stub.records))
	for key, record := range stub.records {
		snapshot[key] = record
	}

	if _, err := service.UpsertDay(1, day, completions, time.UTC); err != nil {
		t.Fatalf("second UpsertDay: %v", err)
	}
	if !reflect.DeepEqual(snapshot, stub.records) {
		t.Fatalf("repeated upsert changed storage:\nbefore: %+v\nafter: %+v", snapshot, stub.records)
	}
}

func TestUpsertDayRejectsEmptyAndDuplicateCompletions(t *testing.T) {
	service, _ := newRecordServiceWithHabits()

	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	if _, err := service.UpsertDay(1, day, nil, time.UTC); !errors.Is(err, ErrNoCompletions) {
		t.Fatalf("expected ErrNoCompletions, got %v", err)
	}

	duplicated := []models.HabitCompletion{
		{HabitID: 7, Completed: true},
		{HabitID: 7, Completed: false},
	}
	if _, err := service.UpsertDay(1, day, duplicated, time.UTC); !errors.Is(err, ErrDuplicateHabit) {
		t.Fatalf("expected ErrDuplicateHabit, got %v", err)
	}
}

func TestListMonthResolvesHabitsAndKeepsOrphans(t *testing.T) {
	service, _ := newRecordServiceWithHabits(
		models.Habit{UserID: 1, Name: "Meditate", Color: "#FF7601"},
	)

	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	if _, err := service.UpsertDay(1, day, []models.HabitCompletion{
		{HabitID: 1, Completed: true},
		{HabitID: 99, Completed: false}, // habit deleted since
	}, time.UTC); err != nil {
		t.Fatalf("UpsertDay: %v", err)
	}

	records, err := service.ListMonth(1, 2024, 3, time.UTC)
	if err != nil {
		t.Fatalf("ListMonth: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}

	completions := records[0].Completions
	if len(completions) != 2 {
		t.Fatalf("expected two completions, got %d", len(completions))
	}
	if completions[0].Habit == nil || completions[0].Habit.Name != "Meditate" {
		t.Fatalf("expected resolved habit, got %+v", completions[0].Habit)
	}
	if completions[1].Habit != nil {
		t.Fatalf("expected nil habit for orphaned reference, got %+v", completions[1].Habit)
	}
}

func TestListMonthScopesToOwnerAndMonth(t *testing.T) {
	service, _ := newRecordServiceWithHabits(
		models.Habit{UserID: 1, Name: "Meditate"},
	)

	inApril := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	inMay := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	completions := []models.HabitCompletion{{HabitID: 1, Completed: true}}

	if _, err := service.UpsertDay(1, inApril, completions, time.UTC); err != nil {
		t.Fatalf("upsert april: %v", err)
	}
	if _, err := service.UpsertDay(1, inMay, completions, time.UTC); err != nil {
		t.Fatalf("upsert may: %v", err)
	}
	if _, err := service.UpsertDay(2, inApril, completions, time.UTC); err != nil {
		t.Fatalf("upsert other owner: %v", err)
	}

	records, err := service.ListMonth(1, 2024, 3, time.UTC)
	if err != nil {
		t.Fatalf("ListMonth: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected only owner's April record, got %d", len(records))
	}
	if !records[0].Date.Equal(inApril) {
		t.Fatalf("unexpected record date %s", records[0].Date)
	}
}
