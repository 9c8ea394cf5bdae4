package select_session_date

import (
	"time"

	selectSessionDate "github.com/fillinv/lesson-scheduler/internal/usecase/select_session_date"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date    string `json:"date"`              // "2025-06-10"
	Current string `json:"current,omitempty"` // выбранная ранее дата
}

// SelectDateResponse HTTP response model
type SelectDateResponse struct {
	Accepted     bool              `json:"accepted"`
	Reason       string            `json:"reason,omitempty"`
	SelectedDate string            `json:"selectedDate,omitempty"`
	Sessions     []SessionResponse `json:"sessions"`
}

type SessionResponse struct {
	ID             string `json:"id"`
	Index          int    `json:"index,omitempty"`
	Time           string `json:"time"`
	StartTime      string `json:"startTime"`
	RemainingSeats int    `json:"remainingSeats"`
	CapacitySeats  int    `json:"capacitySeats"`
	Price          int    `json:"price"`
	Full           bool   `json:"full"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDateRequest) ToUseCaseRequest(lessonID string) *selectSessionDate.Request {
	return &selectSessionDate.Request{
		LessonID: lessonID,
		Date:     r.Date,
		Current:  r.Current,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *selectSessionDate.Response) *SelectDateResponse {
	resp := &SelectDateResponse{
		Accepted:     r.Accepted,
		Reason:       r.Reason.String(),
		SelectedDate: r.SelectedDate,
		Sessions:     make([]SessionResponse, 0, len(r.Sessions)),
	}
	for _, s := range r.Sessions {
		resp.Sessions = append(resp.Sessions, SessionResponse{
			ID:             s.ID,
			Index:          s.Index,
			Time:           s.TimeLabel,
			StartTime:      s.StartAt.Format(time.RFC3339),
			RemainingSeats: s.RemainingSeats,
			CapacitySeats:  s.CapacitySeats,
			Price:          s.Price,
			Full:           s.Full,
		})
	}
	return resp
}
