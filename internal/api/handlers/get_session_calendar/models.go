package get_session_calendar

import (
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	getSessionCalendar "github.com/fillinv/lesson-scheduler/internal/usecase/get_session_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	LessonID string         `json:"lessonId"`
	Title    string         `json:"title"`
	Type     string         `json:"type"`
	Month    string         `json:"month"` // "2025-06"
	Cells    []CellResponse `json:"cells"`
	Study    *StudyResponse `json:"study,omitempty"`
}

type CellResponse struct {
	Date     string            `json:"date"`
	InMonth  bool              `json:"inMonth"`
	Eligible bool              `json:"eligible"`
	Reason   string            `json:"reason,omitempty"`
	Sessions []SessionResponse `json:"sessions"`
	Overflow int               `json:"overflow,omitempty"`
}

type StudyResponse struct {
	TotalSessions  int               `json:"totalSessions"`
	FirstDate      string            `json:"firstDate,omitempty"`
	LastDate       string            `json:"lastDate,omitempty"`
	RemainingSeats int               `json:"remainingSeats"`
	CapacitySeats  int               `json:"capacitySeats"`
	Closed         bool              `json:"closed"`
	Sessions       []SessionResponse `json:"sessions"`
}

type SessionResponse struct {
	ID             string `json:"id"`
	Index          int    `json:"index,omitempty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	StartTime      string `json:"startTime"`
	RemainingSeats int    `json:"remainingSeats"`
	CapacitySeats  int    `json:"capacitySeats"`
	Price          int    `json:"price"`
	Full           bool   `json:"full"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *getSessionCalendar.Response) *CalendarResponse {
	resp := &CalendarResponse{
		LessonID: r.LessonID,
		Title:    r.Title,
		Type:     string(r.Type),
		Month:    r.Month.Format(domain.MonthFormat),
		Cells:    make([]CellResponse, 0, len(r.Cells)),
	}

	for _, c := range r.Cells {
		resp.Cells = append(resp.Cells, CellResponse{
			Date:     c.Date,
			InMonth:  c.InMonth,
			Eligible: c.Eligible,
			Reason:   c.Reason.String(),
			Sessions: fromSessions(c.Sessions),
			Overflow: c.Overflow,
		})
	}

	if r.Study != nil {
		resp.Study = &StudyResponse{
			TotalSessions:  r.Study.Summary.TotalSessions,
			FirstDate:      r.Study.Summary.FirstDate,
			LastDate:       r.Study.Summary.LastDate,
			RemainingSeats: r.Study.Summary.RemainingSeats,
			CapacitySeats:  r.Study.Summary.CapacitySeats,
			Closed:         r.Study.Closed,
			Sessions:       fromSessions(r.Study.Sessions),
		}
	}
	return resp
}

func fromSessions(sessions []getSessionCalendar.Session) []SessionResponse {
	result := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, SessionResponse{
			ID:             s.ID,
			Index:          s.Index,
			Date:           s.Date,
			Time:           s.TimeLabel,
			StartTime:      s.StartAt.Format(time.RFC3339),
			RemainingSeats: s.RemainingSeats,
			CapacitySeats:  s.CapacitySeats,
			Price:          s.Price,
			Full:           s.Full,
		})
	}
	return result
}
