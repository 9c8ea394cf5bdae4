package scheduling

import (
	"sort"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// GroupByDate groups sessions by exact date string. Sessions of one date keep their
// input order; Dates lists dates in first-seen order. The result is rebuilt from
// scratch on every call.
func GroupByDate(sessions []domain.FixedSession) domain.SessionsByDate {
	grouped := domain.SessionsByDate{
		Dates:    make([]string, 0),
		Sessions: make(map[string][]domain.FixedSession),
	}

	for _, s := range sessions {
		if _, seen := grouped.Sessions[s.Date]; !seen {
			grouped.Dates = append(grouped.Dates, s.Date)
		}
		grouped.Sessions[s.Date] = append(grouped.Sessions[s.Date], s)
	}

	return grouped
}

// CalendarState calendar-cell selection for one-day and study lessons.
// The zero value is NoSelection.
type CalendarState struct {
	Date string // YYYY-MM-DD, empty = NoSelection
}

// HasSelection returns true in the DateSelected state
func (s CalendarState) HasSelection() bool {
	return s.Date != ""
}

// DatePolicy eligibility rules shared by one-day and study calendars
type DatePolicy struct {
	Today              time.Time // local "now" of the lesson timezone
	AdvanceBookingDays int       // 0 = unlimited
}

// ResetCalendar returns the initial NoSelection state (service change, navigation away)
func ResetCalendar() CalendarState {
	return CalendarState{}
}

// SelectDate moves to DateSelected(date) if the date has sessions and is eligible.
// Past dates are never eligible, for one-day and study lessons alike.
// An ineligible date leaves the state unchanged.
func SelectDate(state CalendarState, date string, grouped domain.SessionsByDate, policy DatePolicy) (CalendarState, RejectReason) {
	if reason := DateEligibility(date, grouped, policy); reason.IsRejected() {
		return state, reason
	}
	return CalendarState{Date: date}, ReasonNone
}

// DateEligibility explains whether date can be selected
func DateEligibility(date string, grouped domain.SessionsByDate, policy DatePolicy) RejectReason {
	if !grouped.Has(date) {
		return ReasonNoSessions
	}
	return policy.Check(date)
}

// Check applies the past-date and advance-booking rules to a YYYY-MM-DD date
func (p DatePolicy) Check(date string) RejectReason {
	today := p.Today.Format(domain.DateFormat)
	// YYYY-MM-DD compares chronologically as a string
	if date < today {
		return ReasonPastDate
	}

	if p.AdvanceBookingDays > 0 {
		parsed, err := time.ParseInLocation(domain.DateFormat, date, p.Today.Location())
		if err != nil {
			return ReasonInvalidRange
		}
		cfg := domain.SchedulingConfig{AdvanceBookingDays: p.AdvanceBookingDays}
		if cfg.IsBeyondHorizon(parsed, p.Today) {
			return ReasonBeyondHorizon
		}
	}

	return ReasonNone
}

// CellPreview sessions rendered inside one calendar cell
type CellPreview struct {
	Sessions []domain.FixedSession
	Overflow int // sessions hidden behind "+N"
}

// PreviewCell keeps the first limit sessions and counts the rest
func PreviewCell(sessions []domain.FixedSession, limit int) CellPreview {
	if limit <= 0 || len(sessions) <= limit {
		return CellPreview{Sessions: sessions}
	}
	return CellPreview{
		Sessions: sessions[:limit],
		Overflow: len(sessions) - limit,
	}
}

// NumberStudySessions orders study sessions by start and assigns 1-based indexes.
// The input slice is not modified.
func NumberStudySessions(sessions []domain.FixedSession) []domain.FixedSession {
	numbered := make([]domain.FixedSession, len(sessions))
	copy(numbered, sessions)

	sort.SliceStable(numbered, func(i, j int) bool {
		return numbered[i].StartAt.Before(numbered[j].StartAt)
	})
	for i := range numbered {
		numbered[i].SessionIndex = i + 1
	}
	return numbered
}

// StudySummary course overview of a study lesson
type StudySummary struct {
	TotalSessions  int
	FirstDate      string
	LastDate       string
	RemainingSeats int
	CapacitySeats  int
}

// SummarizeStudy builds the overview from numbered sessions and course-level seats
func SummarizeStudy(numbered []domain.FixedSession, remaining, capacity int) StudySummary {
	summary := StudySummary{
		TotalSessions:  len(numbered),
		RemainingSeats: remaining,
		CapacitySeats:  capacity,
	}
	if len(numbered) > 0 {
		summary.FirstDate = numbered[0].Date
		summary.LastDate = numbered[len(numbered)-1].Date
	}
	return summary
}
