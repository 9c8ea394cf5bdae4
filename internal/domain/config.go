package domain

import "time"

// SchedulingConfig scheduling tunables of a lesson.
// Supports hierarchical configuration:
// 1. Lesson-specific (lesson_id)
// 2. Global (lesson_id IS NULL)
type SchedulingConfig struct {
	ID                 int64
	LessonID           *string // NULL = global config
	GridMinutes        int
	AdvanceBookingDays int // 0 = unlimited
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DefaultSchedulingConfig returns the built-in configuration used when nothing is stored
func DefaultSchedulingConfig() *SchedulingConfig {
	return &SchedulingConfig{
		GridMinutes:        DefaultGridMinutes,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
	}
}

// IsGlobalConfig returns true if this configuration applies to every lesson
func (c *SchedulingConfig) IsGlobalConfig() bool {
	return c.LessonID == nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *SchedulingConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// IsBeyondHorizon reports whether date lies past the advance-booking horizon counted from today
func (c *SchedulingConfig) IsBeyondHorizon(date, today time.Time) bool {
	if !c.HasAdvanceBookingLimit() {
		return false
	}
	limit := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).
		AddDate(0, 0, c.AdvanceBookingDays)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.After(limit)
}
