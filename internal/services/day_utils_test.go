package services

import (
	"testing"
	"time"
)

func TestDayRangeNormalizesToLocationMidnight(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	raw := time.Date(2024, 4, 5, 19, 35, 10, 0, time.UTC)
	start, end := DayRange(raw, location)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight start, got %s", start.Format(time.RFC3339))
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next day end, got %s", end.Format(time.RFC3339))
	}
}

func TestMonthRangeUsesZeroBasedIndex(t *testing.T) {
	start, end := MonthRange(2024, 3, time.UTC)

	wantStart := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("MonthRange start = %s, want %s", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Fatalf("MonthRange end = %s, want %s", end, wantEnd)
	}
}

func TestMonthRangeDecemberRollsIntoNextYear(t *testing.T) {
	start, end := MonthRange(2024, 11, time.UTC)

	if start.Month() != time.December || start.Year() != 2024 {
		t.Fatalf("MonthRange start = %s, want December 2024", start)
	}
	if end.Month() != time.January || end.Year() != 2025 {
		t.Fatalf("MonthRange end = %s, want January 2025", end)
	}
}
