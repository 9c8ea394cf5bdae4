package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/pkg/types"
)

// ErrInvalidClockRange возвращается, когда метка диапазона не соответствует формату HH:MM-HH:MM
var ErrInvalidClockRange = errors.New("invalid clock range")

// DeriveReport diagnostics of one derivation
type DeriveReport struct {
	InvalidRanges int  // dated ranges skipped because start >= end
	InvalidLabels int  // weekly labels that failed to parse
	UsedWeekly    bool // lesson has no dated ranges, weekly table used
}

// DeriveAvailability returns the bookable clock ranges of date, sorted by start.
//
// Dated ranges intersecting the local calendar day are clipped to it, so a range
// running past midnight contributes [start, 1440) to its first day and [0, end)
// to the next one. The weekly table is consulted only when the lesson has no
// dated ranges at all; a date the dated ranges miss stays empty.
func DeriveAvailability(
	ranges []domain.TimeRange,
	weekly domain.WeeklyTable,
	date time.Time,
	loc *time.Location,
) ([]domain.ClockRange, DeriveReport) {
	var report DeriveReport

	result, invalid := clipToDay(ranges, date, loc)
	report.InvalidRanges = invalid

	if len(ranges) == 0 && len(weekly) > 0 {
		report.UsedWeekly = true
		for _, label := range weekly[DayStart(date, loc).Weekday()] {
			r, err := ParseClockRange(label)
			if err != nil {
				report.InvalidLabels++
				continue
			}
			result = append(result, r)
		}
	}

	sortRanges(result)
	return result, report
}

// BookedRanges projects absolute reserved windows onto date
func BookedRanges(booked []domain.TimeRange, date time.Time, loc *time.Location) []domain.BookedRange {
	day := DayStart(date, loc)
	clipped, _ := clipToDay(booked, date, loc)
	sortRanges(clipped)

	result := make([]domain.BookedRange, 0, len(clipped))
	for _, r := range clipped {
		result = append(result, domain.BookedRange{Date: day, Range: r})
	}
	return result
}

// ParseClockRange parses an "HH:MM-HH:MM" label; the end may be "24:00"
func ParseClockRange(label string) (domain.ClockRange, error) {
	parts := strings.Split(strings.TrimSpace(label), "-")
	if len(parts) != 2 {
		return domain.ClockRange{}, fmt.Errorf("%w: %q", ErrInvalidClockRange, label)
	}

	start, err := types.ToMinuteOfDay(strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.ClockRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidClockRange, label, err)
	}
	end, err := types.ToEndMinute(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.ClockRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidClockRange, label, err)
	}

	r := domain.ClockRange{Start: start, End: end}
	if !r.IsValid() {
		return domain.ClockRange{}, fmt.Errorf("%w: %q: start must be before end", ErrInvalidClockRange, label)
	}
	return r, nil
}

// FormatClockRange renders a range as "HH:MM-HH:MM"
func FormatClockRange(r domain.ClockRange) (string, error) {
	if !r.IsValid() {
		return "", fmt.Errorf("%w: [%d, %d)", ErrInvalidClockRange, r.Start, r.End)
	}
	start, err := types.NewTimeStringFromMinutes(r.Start)
	if err != nil {
		return "", err
	}
	end, err := types.ToEndLabel(r.End)
	if err != nil {
		return "", err
	}
	return start.String() + "-" + end, nil
}

// DayStart returns local midnight of the calendar day of date.
// The calendar fields of date are taken as-is; loc defaults to date's location.
func DayStart(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = date.Location()
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// clipToDay intersects each valid range with the day of date and converts the
// overlap to minutes of day. Returns the number of skipped invalid ranges.
func clipToDay(ranges []domain.TimeRange, date time.Time, loc *time.Location) ([]domain.ClockRange, int) {
	start := DayStart(date, loc)
	end := start.AddDate(0, 0, 1)

	result := make([]domain.ClockRange, 0)
	invalid := 0

	for _, r := range ranges {
		if !r.IsValid() {
			invalid++
			continue
		}
		// [r.Start, r.End) пересекается с [start, end)
		if !r.Start.Before(end) || !r.End.After(start) {
			continue
		}

		from := 0
		if r.Start.After(start) {
			from = minuteOfDay(r.Start.In(start.Location()))
		}
		to := domain.MinutesPerDay
		if r.End.Before(end) {
			to = minuteOfDay(r.End.In(start.Location()))
		}

		cr := domain.ClockRange{Start: from, End: to, SourceID: r.SourceID}
		if !cr.IsValid() {
			// sub-minute range or a DST fold; nothing bookable
			continue
		}
		result = append(result, cr)
	}

	return result, invalid
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func sortRanges(ranges []domain.ClockRange) {
	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})
}
