package domain

import "time"

// BookingSubmission request handed to the lesson backend, which performs the
// authoritative overlap and capacity check
type BookingSubmission struct {
	LessonID        string
	LessonType      LessonType
	OptionID        *string    // mentoring only
	AvailableTimeID *string    // open range (mentoring) or fixed session (oneday/study)
	StartAt         *time.Time // mentoring slot start
	Date            *time.Time
	Message         string
}

// BookingResult outcome of an accepted submission
type BookingResult struct {
	ScheduleID string
}
