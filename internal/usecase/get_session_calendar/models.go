package get_session_calendar

import (
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
)

// Request модель запроса месячного календаря сессий
type Request struct {
	ViewerID string // область "последний запрос побеждает"
	LessonID string
	Month    string // YYYY-MM, пусто = текущий месяц
}

// Response модель ответа
type Response struct {
	LessonID string
	Title    string
	Type     domain.LessonType
	Mentor   domain.Mentor
	Month    time.Time // первое число месяца
	Cells    []Cell
	Study    *Study // только для study
}

// Cell ячейка календаря
type Cell struct {
	Date     string // YYYY-MM-DD
	InMonth  bool
	Eligible bool
	Reason   scheduling.RejectReason // почему дату нельзя выбрать
	Sessions []Session               // превью, не больше domain.CellPreviewLimit
	Overflow int                     // скрыто за "+N"
}

// Study обзор курса
type Study struct {
	Summary  scheduling.StudySummary
	Sessions []Session // все встречи по порядку
	Closed   bool      // первая встреча уже прошла
}

// Session представление фиксированной сессии
type Session struct {
	ID             string
	Index          int
	Date           string
	TimeLabel      string
	StartAt        time.Time
	RemainingSeats int
	CapacitySeats  int
	Price          int
	Full           bool
}

func toSession(s domain.FixedSession) Session {
	return Session{
		ID:             s.SourceID,
		Index:          s.SessionIndex,
		Date:           s.Date,
		TimeLabel:      s.TimeLabel,
		StartAt:        s.StartAt,
		RemainingSeats: s.RemainingSeats,
		CapacitySeats:  s.CapacitySeats,
		Price:          s.Price,
		Full:           s.IsFull(),
	}
}

func toSessions(sessions []domain.FixedSession) []Session {
	result := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, toSession(s))
	}
	return result
}
