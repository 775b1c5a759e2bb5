package utils

import (
	"math"
	"time"
)

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func TruncateToTwoDecimals(value float64) float64 {
	return math.Floor(value*100) / 100
}

// DayRange returns the inclusive bounds of the calendar day containing t.
// AttendanceDay collapses a timestamp to the UTC midnight of its calendar
// day. Every attendance writer keys records on this instant so the unique
// (labour, date) index holds no matter which entry path wrote the record.
func AttendanceDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// MonthRange returns the inclusive bounds of a calendar month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
