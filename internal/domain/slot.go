package domain

import "time"

// TimeRange mentor-declared open window in absolute time
type TimeRange struct {
	SourceID string // availableTimeId from the lesson backend
	Start    time.Time
	End      time.Time
}

// IsValid returns true if the range starts strictly before it ends
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// ClockRange half-open [Start, End) interval in minutes since local midnight
type ClockRange struct {
	Start    int
	End      int
	SourceID string // open range the window was derived from, empty for weekly fallback
}

// IsValid checks 0 <= Start < End <= 1440
func (r ClockRange) IsValid() bool {
	return r.Start >= 0 && r.Start < r.End && r.End <= MinutesPerDay
}

// Duration returns the length of the range in minutes
func (r ClockRange) Duration() int {
	return r.End - r.Start
}

// BookedRange clock range already reserved on a date
type BookedRange struct {
	Date  time.Time
	Range ClockRange
}

// CandidateSlot in-progress or confirmed mentoring selection
type CandidateSlot struct {
	Date     time.Time  // calendar date (midnight in the lesson timezone)
	Range    ClockRange // grid-aligned, duration-sized slot
	SourceID string     // open range containing the slot
	StartAt  time.Time  // absolute start instant
}

// DateKey returns the YYYY-MM-DD key of the slot date
func (s CandidateSlot) DateKey() string {
	return s.Date.Format(DateFormat)
}
