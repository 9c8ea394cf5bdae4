package domain

import (
	"fmt"
	"strings"
	"time"
)

// LessonType shape of a lesson
type LessonType string

const (
	LessonTypeMentoring LessonType = "mentoring" // 1:1, slots derived from open ranges
	LessonTypeOneDay    LessonType = "oneday"    // 1:N, single fixed session
	LessonTypeStudy     LessonType = "study"     // 1:N, ordered series of fixed sessions
)

// ParseLessonType maps backend values such as "MENTORING" to a LessonType
func ParseLessonType(s string) (LessonType, error) {
	switch LessonType(strings.ToLower(strings.TrimSpace(s))) {
	case LessonTypeMentoring:
		return LessonTypeMentoring, nil
	case LessonTypeOneDay:
		return LessonTypeOneDay, nil
	case LessonTypeStudy:
		return LessonTypeStudy, nil
	default:
		return "", fmt.Errorf("unknown lesson type %q", s)
	}
}

// HasFixedSessions returns true for lesson types booked by picking a pre-defined session
func (t LessonType) HasFixedSessions() bool {
	return t == LessonTypeOneDay || t == LessonTypeStudy
}

// ServiceOption mentoring option; its duration fixes the slot length
type ServiceOption struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           int
}

// IsValid checks option invariants
func (o ServiceOption) IsValid() bool {
	return o.ID != "" && o.DurationMinutes > 0 && o.Price >= 0
}

// DurationLabel renders the duration as "45m", "1h" or "1h 30m"
func (o ServiceOption) DurationLabel() string {
	if o.DurationMinutes < 60 {
		return fmt.Sprintf("%dm", o.DurationMinutes)
	}
	hours, mins := o.DurationMinutes/60, o.DurationMinutes%60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// Mentor public mentor profile shown next to a lesson
type Mentor struct {
	ID           string
	Nickname     string
	ProfileImage string
	Introduction string
}

// WeeklyTable static weekday -> "HH:MM-HH:MM" labels, used when no dated ranges exist
type WeeklyTable map[time.Weekday][]string

// Lesson schedule snapshot of a lesson as fetched from the lesson backend
type Lesson struct {
	ID             string
	Title          string
	Description    string
	Type           LessonType
	ThumbnailImage string
	CategoryID     int64
	Price          int
	Seats          *int // study course capacity
	RemainSeats    *int
	Mentor         Mentor
	Options        []ServiceOption

	OpenRanges []TimeRange // mentoring open windows
	Weekly     WeeklyTable // mentoring fallback table
	Sessions   []FixedSession
	Booked     []TimeRange // already reserved windows
}

// FindOption returns the option with the given id
func (l *Lesson) FindOption(id string) (ServiceOption, bool) {
	for _, o := range l.Options {
		if o.ID == id {
			return o, true
		}
	}
	return ServiceOption{}, false
}

// FindSession returns the fixed session with the given source id
func (l *Lesson) FindSession(sourceID string) (FixedSession, bool) {
	for _, s := range l.Sessions {
		if s.SourceID == sourceID {
			return s, true
		}
	}
	return FixedSession{}, false
}
