package submit_booking

import (
	"time"

	submitBooking "github.com/fillinv/lesson-scheduler/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	LessonID    string  `json:"lessonId"`
	OptionID    *string `json:"optionId,omitempty"`    // mentoring
	Date        *string `json:"date,omitempty"`        // mentoring, "2025-06-04"
	StartMinute *int    `json:"startMinute,omitempty"` // mentoring
	SessionID   *string `json:"sessionId,omitempty"`   // oneday
	Message     string  `json:"message"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	ScheduleID string  `json:"scheduleId"`
	LessonID   string  `json:"lessonId"`
	Type       string  `json:"type"`
	StartTime  *string `json:"startTime,omitempty"`
	SessionID  *string `json:"sessionId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(userID, authHeader string) *submitBooking.Request {
	return &submitBooking.Request{
		AuthHeader:  authHeader,
		UserID:      userID,
		LessonID:    r.LessonID,
		OptionID:    r.OptionID,
		Date:        r.Date,
		StartMinute: r.StartMinute,
		SessionID:   r.SessionID,
		Message:     r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *submitBooking.Response) *SubmitBookingResponse {
	resp := &SubmitBookingResponse{
		ScheduleID: r.ScheduleID,
		LessonID:   r.LessonID,
		Type:       string(r.Type),
		SessionID:  r.SessionID,
	}
	if r.StartAt != nil {
		startTime := r.StartAt.Format(time.RFC3339)
		resp.StartTime = &startTime
	}
	return resp
}
