package planner

import (
	"time"

	"lunch-planner/internal/weekly"
)

// CurrentWeekStart returns the Monday of the ISO week containing now.
func CurrentWeekStart(now time.Time) weekly.Date {
	return weekly.DateOf(now).WeekStart()
}

// GetNextMonday returns the first Monday strictly after now's date.
func GetNextMonday(now time.Time) weekly.Date {
	return CurrentWeekStart(now).AddDays(7)
}

// Range returns the dates covering weeks ISO weeks starting with the current one.
func Range(now time.Time, weeks int) (from, to weekly.Date) {
	return weekly.WeeksFrom(now, weeks)
}
