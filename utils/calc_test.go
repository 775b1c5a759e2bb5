package utils

import (
	"testing"
	"time"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.14159, 3.14},
		{1.236, 1.24},
		{-2.344, -2.34},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncateToTwoDecimals(t *testing.T) {
	if got := TruncateToTwoDecimals(3.999); got != 3.99 {
		t.Errorf("TruncateToTwoDecimals(3.999) = %v, want 3.99", got)
	}
}

func TestAttendanceDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	morning := time.Date(2024, time.June, 15, 8, 0, 0, 0, ist)
	utc := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	got := AttendanceDay(morning)
	if !got.Equal(AttendanceDay(utc)) {
		t.Errorf("AttendanceDay keys differ across zones: %v vs %v", got, AttendanceDay(utc))
	}
	want := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AttendanceDay(%v) = %v, want %v", morning, got, want)
	}
}

func TestDayRange(t *testing.T) {
	at := time.Date(2024, time.June, 15, 13, 45, 30, 0, time.UTC)
	start, end := DayRange(at)

	if start.Hour() != 0 || start.Minute() != 0 || start.Day() != 15 {
		t.Errorf("start = %v, want midnight of the 15th", start)
	}
	if !end.After(at) || end.Day() != 15 {
		t.Errorf("end = %v, want end of the 15th", end)
	}
	if !start.Before(at) {
		t.Errorf("start %v not before %v", start, at)
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February)

	if start != time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("start = %v", start)
	}
	if end.Day() != 29 || end.Month() != time.February {
		t.Errorf("end = %v, want last instant of Feb 29", end)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
