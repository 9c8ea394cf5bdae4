package domain

import "time"

// FixedSession pre-scheduled, capacity-limited meeting of a one-day class or a study
type FixedSession struct {
	SourceID       string // availableTimeId from the lesson backend
	SessionIndex   int    // 1-based order within the lesson
	Date           string // YYYY-MM-DD in the lesson timezone
	TimeLabel      string // "HH:MM-HH:MM"
	StartAt        time.Time
	RemainingSeats int
	CapacitySeats  int
	Price          int
}

// IsValid checks seat invariants
func (s FixedSession) IsValid() bool {
	return s.CapacitySeats > 0 && s.RemainingSeats >= 0 && s.RemainingSeats <= s.CapacitySeats
}

// IsFull returns true if no seats are left
func (s FixedSession) IsFull() bool {
	return s.RemainingSeats <= 0
}

// SessionsByDate sessions grouped by calendar date.
// Dates keeps first-seen order so iteration is deterministic.
type SessionsByDate struct {
	Dates    []string
	Sessions map[string][]FixedSession
}

// For returns the sessions of a date in input order
func (g SessionsByDate) For(date string) []FixedSession {
	return g.Sessions[date]
}

// Has returns true if the date has at least one session
func (g SessionsByDate) Has(date string) bool {
	return len(g.Sessions[date]) > 0
}

// Len returns the total number of grouped sessions
func (g SessionsByDate) Len() int {
	n := 0
	for _, s := range g.Sessions {
		n += len(s)
	}
	return n
}
