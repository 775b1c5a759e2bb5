package controllers

import (
	"time"

	"quarrybackend/utils"
)

// parseDateRange turns ?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD into an
// inclusive window. Both parameters are required for the filter to apply.
func parseDateRange(startStr, endStr string) (time.Time, time.Time, bool) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	_, endOfDay := utils.DayRange(end)
	return start, endOfDay, true
}

// parseDay turns ?date=YYYY-MM-DD into that day's inclusive bounds.
func parseDay(dateStr string) (time.Time, time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, time.Time{}, false
	}
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	start, end := utils.DayRange(day)
	return start, end, true
}
