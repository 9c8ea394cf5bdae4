package scheduling

import (
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// Day availability and reservations of one mentoring date
type Day struct {
	Date      time.Time // local midnight
	Available []domain.ClockRange
	Booked    []domain.BookedRange
	Report    DeriveReport
}

// BuildDay derives the open and booked ranges of a lesson on date
func BuildDay(lesson *domain.Lesson, date time.Time, loc *time.Location) Day {
	available, report := DeriveAvailability(lesson.OpenRanges, lesson.Weekly, date, loc)
	return Day{
		Date:      DayStart(date, loc),
		Available: available,
		Booked:    BookedRanges(lesson.Booked, date, loc),
		Report:    report,
	}
}

// ParseDate parses a YYYY-MM-DD date as local midnight in loc
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(domain.DateFormat, date, loc)
}
