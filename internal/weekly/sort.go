package weekly

import (
	"slices"
	"strings"
)

// CompareOptions orders options within a day: selectable before non-selectable,
// then by category, description and id. Strings compare byte-wise, so the
// order is case-sensitive.
func CompareOptions(a, b Option) int {
	if a.IsSelectable != b.IsSelectable {
		if a.IsSelectable {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	if c := strings.Compare(a.Description, b.Description); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// SortOptions sorts options in place with CompareOptions.
func SortOptions(options []Option) {
	slices.SortStableFunc(options, CompareOptions)
}

// SortDays sorts days chronologically in place.
func SortDays(days []DayGroup) {
	slices.SortStableFunc(days, func(a, b DayGroup) int { return a.Date.Compare(b.Date) })
}

// SortWeeks sorts weeks chronologically in place.
func SortWeeks(weeks []WeekGroup) {
	slices.SortStableFunc(weeks, func(a, b WeekGroup) int { return a.WeekStart.Compare(b.WeekStart) })
}
