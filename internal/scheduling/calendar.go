package scheduling

import "time"

// WeekStart returns the Monday of the week containing day
func WeekStart(day time.Time) time.Time {
	d := DayStart(day, nil)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}

// WeekDates returns the Monday..Sunday dates of the week shifted by offset weeks from today
func WeekDates(today time.Time, offset int) []time.Time {
	start := WeekStart(today).AddDate(0, 0, 7*offset)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// BookableWeekDates is WeekDates without the days before today
func BookableWeekDates(today time.Time, offset int) []time.Time {
	floor := DayStart(today, nil)
	dates := make([]time.Time, 0, 7)
	for _, d := range WeekDates(today, offset) {
		if !d.Before(floor) {
			dates = append(dates, d)
		}
	}
	return dates
}

// GridDay one cell of a month grid
type GridDay struct {
	Date    time.Time
	InMonth bool
}

// MonthGrid returns a Sunday-start grid: padding days of the previous month followed
// by every day of month
func MonthGrid(month time.Time) []GridDay {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	padding := int(first.Weekday())
	next := first.AddDate(0, 1, 0)

	days := make([]GridDay, 0, 42)
	for i := padding; i > 0; i-- {
		days = append(days, GridDay{Date: first.AddDate(0, 0, -i)})
	}
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, GridDay{Date: d, InMonth: true})
	}
	return days
}
