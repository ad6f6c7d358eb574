package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// MonthRange returns the half-open [start, end) range for a zero-based month
// index, matching the month numbering the calendar client submits.
func MonthRange(year int, monthIndex int, location *time.Location) (time.Time, time.Time) {
	if location == nil {
		location = time.UTC
	}
	start := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, location)
	return start, start.AddDate(0, 1, 0)
}
