package weekly

import "slices"

// Fill returns a copy of weeks in which every week shows Monday through Friday.
// Missing weekdays get an empty placeholder day; days already present,
// weekend days included, are kept as they are. Filling twice changes nothing.
func Fill(weeks []WeekGroup) []WeekGroup {
	filled := make([]WeekGroup, len(weeks))
	for i, w := range weeks {
		present := make(map[Date]bool, len(w.Days))
		days := make([]DayGroup, len(w.Days), len(w.Days)+BusinessDays)
		for j, d := range w.Days {
			days[j] = DayGroup{Date: d.Date, Options: slices.Clone(d.Options)}
			present[d.Date] = true
		}

		added := false
		for _, date := range BusinessWeek(w.WeekStart) {
			if present[date] {
				continue
			}
			days = append(days, DayGroup{Date: date, Options: []Option{}})
			added = true
		}
		if added {
			SortDays(days)
		}
		filled[i] = WeekGroup{WeekStart: w.WeekStart, Days: days}
	}
	return filled
}

// BusinessWeek returns the Monday-Friday dates of the ISO week containing d.
func BusinessWeek(d Date) []Date {
	monday := d.WeekStart()
	dates := make([]Date, BusinessDays)
	for i := range dates {
		dates[i] = monday.AddDays(i)
	}
	return dates
}
