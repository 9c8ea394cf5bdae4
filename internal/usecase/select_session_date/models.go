package select_session_date

import (
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
)

// Request модель запроса выбора даты в календаре
type Request struct {
	LessonID string
	Date     string // YYYY-MM-DD
	Current  string // текущая выбранная дата, пусто = ничего не выбрано
}

// Response результат выбора
type Response struct {
	Accepted     bool
	Reason       scheduling.RejectReason
	SelectedDate string    // состояние после операции
	Sessions     []Session // сессии выбранной даты
}

// Session представление фиксированной сессии
type Session struct {
	ID             string
	Index          int
	TimeLabel      string
	StartAt        time.Time
	RemainingSeats int
	CapacitySeats  int
	Price          int
	Full           bool
}

func toSessions(sessions []domain.FixedSession) []Session {
	result := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, Session{
			ID:             s.SourceID,
			Index:          s.SessionIndex,
			TimeLabel:      s.TimeLabel,
			StartAt:        s.StartAt,
			RemainingSeats: s.RemainingSeats,
			CapacitySeats:  s.CapacitySeats,
			Price:          s.Price,
			Full:           s.IsFull(),
		})
	}
	return result
}
