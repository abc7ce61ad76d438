package weekly

// Group partitions options by calendar day and the days by ISO week.
// Options inside a day follow CompareOptions; days and weeks are chronological.
func Group(options []Option) []WeekGroup {
	sorted := make([]Option, len(options))
	copy(sorted, options)
	SortOptions(sorted)

	// 1. By day
	dayIndex := make(map[Date]int)
	var days []DayGroup
	for _, o := range sorted {
		i, ok := dayIndex[o.Date]
		if !ok {
			i = len(days)
			dayIndex[o.Date] = i
			days = append(days, DayGroup{Date: o.Date})
		}
		days[i].Options = append(days[i].Options, o)
	}
	SortDays(days)

	// 2. By week
	weekIndex := make(map[Date]int)
	var weeks []WeekGroup
	for _, d := range days {
		start := d.Date.WeekStart()
		i, ok := weekIndex[start]
		if !ok {
			i = len(weeks)
			weekIndex[start] = i
			weeks = append(weeks, WeekGroup{WeekStart: start})
		}
		weeks[i].Days = append(weeks[i].Days, d)
	}
	SortWeeks(weeks)

	return weeks
}
