package submit_booking

import (
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// Request модель заявки на бронирование
type Request struct {
	AuthHeader string // передается в бэкенд как есть
	UserID     string
	LessonID   string

	// mentoring
	OptionID    *string
	Date        *string // YYYY-MM-DD
	StartMinute *int

	// oneday
	SessionID *string

	Message string
}

// Response модель ответа
type Response struct {
	ScheduleID string
	LessonID   string
	Type       domain.LessonType
	StartAt    *time.Time
	SessionID  *string
}
