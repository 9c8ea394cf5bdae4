package lessonservice

import (
	"fmt"
	"sort"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/pkg/types"
)

// форматы времени без смещения, которые отдаёт бэкенд
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type mapReport struct {
	InvalidOptions int
	InvalidTimes   int
}

func (r mapReport) skipped() bool {
	return r.InvalidOptions > 0 || r.InvalidTimes > 0
}

func toDomainLesson(detail *LessonDetail, loc *time.Location, weeklyFallback bool) (*domain.Lesson, mapReport, error) {
	var report mapReport

	lessonType, err := domain.ParseLessonType(detail.Lesson.LessonType)
	if err != nil {
		return nil, report, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	lesson := &domain.Lesson{
		ID:             detail.Lesson.LessonID,
		Title:          detail.Lesson.Title,
		Description:    detail.Lesson.Description,
		Type:           lessonType,
		ThumbnailImage: detail.Lesson.ThumbnailImage,
		CategoryID:     detail.Lesson.CategoryID,
		Price:          detail.Lesson.Price,
		Seats:          detail.Lesson.Seats,
		RemainSeats:    detail.Lesson.RemainSeats,
		Mentor: domain.Mentor{
			ID:           detail.Mentor.MentorID,
			Nickname:     detail.Mentor.Nickname,
			ProfileImage: detail.Mentor.ProfileImage,
			Introduction: detail.Mentor.Introduction,
		},
		Options: make([]domain.ServiceOption, 0, len(detail.Options)),
	}

	for _, o := range detail.Options {
		option := domain.ServiceOption{ID: o.OptionID, Name: o.Name, DurationMinutes: o.Minute, Price: o.Price}
		if !option.IsValid() {
			report.InvalidOptions++
			continue
		}
		lesson.Options = append(lesson.Options, option)
	}

	ranges := make([]domain.TimeRange, 0, len(detail.AvailableTimes))
	slots := make([]AvailableTime, 0, len(detail.AvailableTimes))
	for _, at := range detail.AvailableTimes {
		r, err := parseRange(at.AvailableTimeID, at.StartTime, at.EndTime, loc)
		if err != nil {
			report.InvalidTimes++
			continue
		}
		ranges = append(ranges, r)
		slots = append(slots, at)
	}

	if lessonType.HasFixedSessions() {
		lesson.Sessions = toSessions(lesson, slots, ranges, loc)
	} else {
		lesson.OpenRanges = ranges
		if weeklyFallback {
			lesson.Weekly = weeklyTable(ranges, loc)
		}
	}

	lesson.Booked = make([]domain.TimeRange, 0, len(detail.BookedTimes))
	for _, bt := range detail.BookedTimes {
		r, err := parseRange("", bt.StartTime, bt.EndTime, loc)
		if err != nil {
			report.InvalidTimes++
			continue
		}
		lesson.Booked = append(lesson.Booked, r)
	}

	return lesson, report, nil
}

func toSessions(lesson *domain.Lesson, slots []AvailableTime, ranges []domain.TimeRange, loc *time.Location) []domain.FixedSession {
	sessions := make([]domain.FixedSession, 0, len(slots))

	for i, at := range slots {
		r := ranges[i]
		start := r.Start.In(loc)
		end := r.End.In(loc)

		capacity := derefOr(at.Seats, derefOr(lesson.Seats, 0))
		remaining := derefOr(at.RemainSeats, derefOr(lesson.RemainSeats, 0))
		price := at.Price
		if price == 0 {
			price = lesson.Price
		}

		sessions = append(sessions, domain.FixedSession{
			SourceID:       at.AvailableTimeID,
			SessionIndex:   i + 1,
			Date:           start.Format(domain.DateFormat),
			TimeLabel:      types.NewTimeString(start).String() + "-" + endLabel(start, end),
			StartAt:        start,
			RemainingSeats: remaining,
			CapacitySeats:  capacity,
			Price:          price,
		})
	}

	return sessions
}

// weeklyTable groups open ranges by local weekday as "HH:MM-HH:MM" labels.
// Ranges crossing midnight are left to the dated path.
func weeklyTable(ranges []domain.TimeRange, loc *time.Location) domain.WeeklyTable {
	table := make(domain.WeeklyTable)
	seen := make(map[time.Weekday]map[string]bool)

	for _, r := range ranges {
		start := r.Start.In(loc)
		end := r.End.In(loc)
		if start.Format(domain.DateFormat) != end.Format(domain.DateFormat) && !isNextMidnight(start, end) {
			continue
		}

		label := types.NewTimeString(start).String() + "-" + endLabel(start, end)
		day := start.Weekday()
		if seen[day] == nil {
			seen[day] = make(map[string]bool)
		}
		if seen[day][label] {
			continue
		}
		seen[day][label] = true
		table[day] = append(table[day], label)
	}

	for day := range table {
		sort.Strings(table[day])
	}
	return table
}

func parseRange(id, startRaw, endRaw string, loc *time.Location) (domain.TimeRange, error) {
	start, err := parseTime(startRaw, loc)
	if err != nil {
		return domain.TimeRange{}, err
	}
	end, err := parseTime(endRaw, loc)
	if err != nil {
		return domain.TimeRange{}, err
	}
	r := domain.TimeRange{SourceID: id, Start: start, End: end}
	if !r.IsValid() {
		return domain.TimeRange{}, fmt.Errorf("%w: range %s..%s", ErrInvalidResponse, startRaw, endRaw)
	}
	return r, nil
}

// parseTime принимает RFC 3339 либо локальное время без смещения в часовом поясе loc
func parseTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidResponse, raw)
}

func endLabel(start, end time.Time) string {
	if isNextMidnight(start, end) {
		label, _ := types.ToEndLabel(domain.MinutesPerDay)
		return label
	}
	return types.NewTimeString(end).String()
}

func isNextMidnight(start, end time.Time) bool {
	next := time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, start.Location())
	return end.Equal(next)
}

func derefOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func toScheduleRequest(s *domain.BookingSubmission) *ScheduleCreateRequest {
	req := &ScheduleCreateRequest{
		LessonID:        s.LessonID,
		OptionID:        s.OptionID,
		AvailableTimeID: s.AvailableTimeID,
		Message:         s.Message,
	}
	if s.StartAt != nil {
		startTime := s.StartAt.Format(time.RFC3339)
		req.StartTime = &startTime
	}
	return req
}
